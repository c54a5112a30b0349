package domain

import "time"

// OwnerStatus type for the gym owner account lifecycle
type OwnerStatus string

const (
	OwnerActive   OwnerStatus = "active"
	OwnerInactive OwnerStatus = "inactive"
)

// SubscriptionStatus type for a gym owner's platform subscription
type SubscriptionStatus string

const (
	SubscriptionTrial   SubscriptionStatus = "trial"
	SubscriptionActive  SubscriptionStatus = "active"
	SubscriptionExpired SubscriptionStatus = "expired"
)

// GymOwner represents a gym owner account managed from the admin console.
type GymOwner struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	GymName            string             `json:"gymName"`
	Location           string             `json:"location"`
	JoinDate           time.Time          `json:"joinDate"`
	Status             OwnerStatus        `json:"status"`
	LastLogin          *time.Time         `json:"lastLogin,omitempty"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus"`
	Revenue            float64            `json:"revenue"`
}
