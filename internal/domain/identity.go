package domain

import (
	"fmt"
	"net/url"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleAdmin    Role = "admin"    // platform administrator
	RoleClient   Role = "client"   // gym owner running a gym
	RoleCustomer Role = "customer" // gym member using the customer portal
)

// Identity represents the authenticated user's role-bearing session record.
// Exactly one Identity is active at a time, or none (anonymous). It is the
// only record that survives a process restart.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Helper methods (Optional but can be useful)
func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func (i *Identity) IsClient() bool {
	return i.Role == RoleClient
}

func (i *Identity) IsCustomer() bool {
	return i.Role == RoleCustomer
}

// DefaultAvatarURL builds the placeholder avatar used when no image has
// been uploaded for the account.
func DefaultAvatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=0EA5E9&color=fff", url.QueryEscape(name))
}
