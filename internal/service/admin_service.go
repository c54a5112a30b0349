package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/repository"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrOwnerNotFound = errors.New("gym owner not found")
)

// StatusCount is one slice of the owners-by-status breakdown.
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// MonthRevenue is one point of the revenue-by-month series.
type MonthRevenue struct {
	Month   string  `json:"month"` // e.g. "Jan 2026"
	Revenue float64 `json:"revenue"`
}

// AdminStats is the aggregate the admin dashboard renders.
type AdminStats struct {
	TotalGymOwners  int               `json:"totalGymOwners"`
	ActiveGymOwners int               `json:"activeGymOwners"`
	TotalRevenue    float64           `json:"totalRevenue"`
	MonthlyRevenue  float64           `json:"monthlyRevenue"`
	RecentGymOwners []domain.GymOwner `json:"recentGymOwners"`
	OwnersByStatus  []StatusCount     `json:"ownersByStatus"`
	RevenueByMonth  []MonthRevenue    `json:"revenueByMonth"`
}

// AdminService owns the gym owner collection behind the admin console.
type AdminService interface {
	AddOwner(ctx context.Context, owner domain.GymOwner) (*domain.GymOwner, error)
	UpdateOwner(ctx context.Context, owner domain.GymOwner) (*domain.GymOwner, error)
	DeleteOwner(ctx context.Context, id string) error
	GetOwner(ctx context.Context, id string) (*domain.GymOwner, error)
	ListOwners(ctx context.Context) ([]domain.GymOwner, error)
	Stats(ctx context.Context) (*AdminStats, error)
}

type adminService struct {
	ownerRepo repository.GymOwnerRepository
}

// NewAdminService creates a new instance of adminService.
func NewAdminService(ownerRepo repository.GymOwnerRepository) AdminService {
	return &adminService{ownerRepo: ownerRepo}
}

func (s *adminService) AddOwner(ctx context.Context, owner domain.GymOwner) (*domain.GymOwner, error) {
	if owner.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidationFailed)
	}
	if owner.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidationFailed)
	}
	if owner.GymName == "" {
		return nil, fmt.Errorf("%w: gymName is required", ErrValidationFailed)
	}

	if owner.ID == "" {
		owner.ID = uuid.NewString()
	}
	if owner.Status == "" {
		owner.Status = domain.OwnerActive
	}
	if owner.SubscriptionStatus == "" {
		owner.SubscriptionStatus = domain.SubscriptionTrial
	}
	if owner.JoinDate.IsZero() {
		owner.JoinDate = time.Now().UTC()
	}

	if err := s.ownerRepo.Insert(ctx, &owner); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrDuplicateID
		}
		return nil, err
	}
	return &owner, nil
}

func (s *adminService) UpdateOwner(ctx context.Context, owner domain.GymOwner) (*domain.GymOwner, error) {
	if owner.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidationFailed)
	}
	if owner.Name == "" || owner.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidationFailed)
	}

	if err := s.ownerRepo.Update(ctx, &owner); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	return &owner, nil
}

func (s *adminService) DeleteOwner(ctx context.Context, id string) error {
	if err := s.ownerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOwnerNotFound
		}
		return err
	}
	return nil
}

func (s *adminService) GetOwner(ctx context.Context, id string) (*domain.GymOwner, error) {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	return owner, nil
}

func (s *adminService) ListOwners(ctx context.Context) ([]domain.GymOwner, error) {
	return s.ownerRepo.List(ctx)
}

func (s *adminService) Stats(ctx context.Context) (*AdminStats, error) {
	owners, err := s.ownerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stats := &AdminStats{TotalGymOwners: len(owners)}
	byStatus := map[domain.SubscriptionStatus]int{}

	for _, owner := range owners {
		if owner.Status == domain.OwnerActive {
			stats.ActiveGymOwners++
		}
		stats.TotalRevenue += owner.Revenue
		byStatus[owner.SubscriptionStatus]++
	}

	for _, status := range []domain.SubscriptionStatus{
		domain.SubscriptionActive, domain.SubscriptionTrial, domain.SubscriptionExpired,
	} {
		stats.OwnersByStatus = append(stats.OwnersByStatus, StatusCount{
			Name:  string(status),
			Value: byStatus[status],
		})
	}

	// Revenue attributed to the join month, over the trailing six months.
	for offset := 5; offset >= 0; offset-- {
		month := monthBucket(now, offset)
		point := MonthRevenue{Month: month.Format("Jan 2006")}
		for _, owner := range owners {
			if owner.JoinDate.Year() == month.Year() && owner.JoinDate.Month() == month.Month() {
				point.Revenue += owner.Revenue
			}
		}
		if offset == 0 {
			stats.MonthlyRevenue = point.Revenue
		}
		stats.RevenueByMonth = append(stats.RevenueByMonth, point)
	}

	// Newest five owner accounts.
	for i := len(owners) - 1; i >= 0 && len(stats.RecentGymOwners) < 5; i-- {
		stats.RecentGymOwners = append(stats.RecentGymOwners, owners[i])
	}

	return stats, nil
}

// monthBucket returns the first day of the month offset months before
// now. Anchoring on day one avoids day-of-month normalization, which
// would otherwise skip or duplicate a month near month-end dates.
func monthBucket(now time.Time, offset int) time.Time {
	return time.Date(now.Year(), now.Month()-time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
}
