package memory

import (
	"context"
	"sync"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/repository"
)

// gymOwnerRepository implements repository.GymOwnerRepository with an
// in-memory ordered collection.
type gymOwnerRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.GymOwner
	ordered []string
}

// NewGymOwnerRepository creates an empty in-memory gym owner collection.
func NewGymOwnerRepository() repository.GymOwnerRepository {
	return &gymOwnerRepository{
		byID: make(map[string]*domain.GymOwner),
	}
}

func (r *gymOwnerRepository) Insert(_ context.Context, owner *domain.GymOwner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[owner.ID]; exists {
		return repository.ErrConflict
	}

	stored := *owner
	r.byID[owner.ID] = &stored
	r.ordered = append(r.ordered, owner.ID)
	return nil
}

func (r *gymOwnerRepository) Update(_ context.Context, owner *domain.GymOwner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[owner.ID]; !exists {
		return repository.ErrNotFound
	}

	stored := *owner
	r.byID[owner.ID] = &stored
	return nil
}

func (r *gymOwnerRepository) Delete(_ context.Context, id string) error {
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

func (r *gymOwnerRepository) GetByID(_ context.Context, id string) (*domain.GymOwner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owner, exists := r.byID[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	copied := *owner
	return &copied, nil
}

func (r *gymOwnerRepository) List(_ context.Context) ([]domain.GymOwner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owners := make([]domain.GymOwner, 0, len(r.ordered))
	for _, id := range r.ordered {
		owners = append(owners, *r.byID[id])
	}
	return owners, nil
}
