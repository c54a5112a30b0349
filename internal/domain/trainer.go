package domain

import "time"

// TrainerStatus type for the trainer lifecycle
type TrainerStatus string

const (
	TrainerActive   TrainerStatus = "active"
	TrainerInactive TrainerStatus = "inactive"
)

// Trainer represents a personal trainer employed by the gym.
type Trainer struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	Avatar         string        `json:"avatar,omitempty"`
	Specialization string        `json:"specialization"`
	Experience     string        `json:"experience"`
	JoinDate       time.Time     `json:"joinDate"`
	Status         TrainerStatus `json:"status"`
	TrainerID      string        `json:"trainerId"` // human-facing badge id, e.g. TR001

	// AssignedMembers holds the ids of Members assigned to this trainer.
	// It is the inverse view of Member.TrainerID and is mutated only
	// through the assign and unassign operations, never independently.
	AssignedMembers []string `json:"assignedMembers,omitempty"`
}

// HasMember reports whether the given member id is assigned to this trainer.
func (t *Trainer) HasMember(memberID string) bool {
	for _, id := range t.AssignedMembers {
		if id == memberID {
			return true
		}
	}
	return false
}
