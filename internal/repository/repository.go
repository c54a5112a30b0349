package repository

import (
	"context"

	"zim/gym-app/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
	ErrConflict = RepositoryError("id already exists")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// MemberRepository defines the interface for the member collection.
// List returns the current snapshot in insertion order.
type MemberRepository interface {
	Insert(ctx context.Context, member *domain.Member) error
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
}

// TrainerRepository defines the interface for the trainer collection.
type TrainerRepository interface {
	Insert(ctx context.Context, trainer *domain.Trainer) error
	Update(ctx context.Context, trainer *domain.Trainer) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Trainer, error)
	List(ctx context.Context) ([]domain.Trainer, error)
}

// MembershipRepository defines the interface for the membership plan collection.
type MembershipRepository interface {
	Insert(ctx context.Context, plan *domain.Membership) error
	Update(ctx context.Context, plan *domain.Membership) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Membership, error)
	List(ctx context.Context) ([]domain.Membership, error)
}

// GymOwnerRepository defines the interface for the gym owner collection
// managed from the admin console.
type GymOwnerRepository interface {
	Insert(ctx context.Context, owner *domain.GymOwner) error
	Update(ctx context.Context, owner *domain.GymOwner) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.GymOwner, error)
	List(ctx context.Context) ([]domain.GymOwner, error)
}

// AttendanceRepository defines the interface for the attendance ledger.
type AttendanceRepository interface {
	Insert(ctx context.Context, record *domain.Attendance) error
	Update(ctx context.Context, record *domain.Attendance) error
	GetByID(ctx context.Context, id string) (*domain.Attendance, error)
	// GetOpenByMember returns the member's record with no check-out yet,
	// or ErrNotFound when the member is not currently checked in.
	GetOpenByMember(ctx context.Context, memberID string) (*domain.Attendance, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.Attendance, error)
	List(ctx context.Context) ([]domain.Attendance, error)
}

// SessionRepository persists the single durable Identity record that
// survives a process restart. Load returns ErrNotFound when no record
// is stored.
type SessionRepository interface {
	Save(ctx context.Context, identity *domain.Identity) error
	Load(ctx context.Context) (*domain.Identity, error)
	Clear(ctx context.Context) error
}
