package domain

import "time"

// Attendance is one entry in the check-in ledger. A nil CheckOut means the
// member is currently inside the gym; at most one open record may exist
// per member at any time.
type Attendance struct {
	ID         string     `json:"id"`
	MemberID   string     `json:"memberId"`
	MemberName string     `json:"memberName"` // denormalized for display
	CheckIn    time.Time  `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut"`
	Duration   int        `json:"duration,omitempty"` // whole minutes, set on check-out
}

// Open reports whether the record is still waiting for a check-out.
func (a *Attendance) Open() bool {
	return a.CheckOut == nil
}
