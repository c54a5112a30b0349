package domain

import "time"

// MemberStatus type for the member lifecycle
type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
	MemberPending  MemberStatus = "pending"
)

// Member represents a gym member on a gym owner's roster.
type Member struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar,omitempty"`

	// MembershipID is a soft reference to a Membership plan. Deleting the
	// referenced plan is not cascaded; every dereference must tolerate a
	// dangling id.
	MembershipID string `json:"membershipId"`

	// TrainerID, if set, references the Trainer this member is assigned to.
	// It is kept consistent with Trainer.AssignedMembers by the assign and
	// unassign operations only.
	TrainerID string `json:"trainerId,omitempty"`

	JoinDate   time.Time    `json:"joinDate"`
	Status     MemberStatus `json:"status"`
	MemberID   string       `json:"memberId"` // human-facing badge id, e.g. MEM001
	ExpiryDate *time.Time   `json:"expiryDate,omitempty"`
}

// Expired reports whether the membership expiry date has passed.
// Members without an expiry date never expire.
func (m *Member) Expired(now time.Time) bool {
	return m.ExpiryDate != nil && m.ExpiryDate.Before(now)
}

// ExpiringWithin reports whether the member expires within the given
// number of days from now (exclusive of already-expired members).
func (m *Member) ExpiringWithin(now time.Time, days int) bool {
	if m.ExpiryDate == nil || m.Expired(now) {
		return false
	}
	return m.ExpiryDate.Before(now.AddDate(0, 0, days))
}
