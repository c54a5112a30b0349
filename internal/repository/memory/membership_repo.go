package memory

import (
	"context"
	"sync"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/repository"
)

// membershipRepository implements repository.MembershipRepository with an
// in-memory ordered collection.
type membershipRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Membership
	ordered []string
}

// NewMembershipRepository creates an empty in-memory plan collection.
func NewMembershipRepository() repository.MembershipRepository {
	return &membershipRepository{
		byID: make(map[string]*domain.Membership),
	}
}

func clonePlan(plan *domain.Membership) *domain.Membership {
	copied := *plan
	if plan.Features != nil {
		copied.Features = append([]string(nil), plan.Features...)
	}
	return &copied
}

func (r *membershipRepository) Insert(_ context.Context, plan *domain.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[plan.ID]; exists {
		return repository.ErrConflict
	}

	r.byID[plan.ID] = clonePlan(plan)
	r.ordered = append(r.ordered, plan.ID)
	return nil
}

func (r *membershipRepository) Update(_ context.Context, plan *domain.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[plan.ID]; !exists {
		return repository.ErrNotFound
	}

	r.byID[plan.ID] = clonePlan(plan)
	return nil
}

func (r *membershipRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return repository.ErrNotFound
	}

	delete(r.byID, id)
	for i, existing := range r.ordered {
		if existing == id {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}
	return nil
}

func (r *membershipRepository) GetByID(_ context.Context, id string) (*domain.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, exists := r.byID[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return clonePlan(plan), nil
}

func (r *membershipRepository) List(_ context.Context) ([]domain.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plans := make([]domain.Membership, 0, len(r.ordered))
	for _, id := range r.ordered {
		plans = append(plans, *clonePlan(r.byID[id]))
	}
	return plans, nil
}
