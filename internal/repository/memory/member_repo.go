package memory

import (
	"context"
	"sync"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/repository"
)

// memberRepository implements repository.MemberRepository with an
// in-memory ordered collection. The collection is seeded at startup and
// resets on restart.
type memberRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Member
	ordered []string
}

// NewMemberRepository creates an empty in-memory member collection.
func NewMemberRepository() repository.MemberRepository {
	return &memberRepository{
		byID: make(map[string]*domain.Member),
	}
}

func (r *memberRepository) Insert(_ context.Context, member *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[member.ID]; exists {
		return repository.ErrConflict
	}

	stored := *member
	r.byID[member.ID] = &stored
	r.ordered = append(r.ordered, member.ID)
	return nil
}

func (r *memberRepository) Update(_ context.Context, member *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[member.ID]; !exists {
		return repository.ErrNotFound
	}

	stored := *member
	r.byID[member.ID] = &stored
	return nil
}

func (r *memberRepository) Delete(_ context.Context, id string) error {
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

func (r *memberRepository) GetByID(_ context.Context, id string) (*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	member, exists := r.byID[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	copied := *member
	return &copied, nil
}

func (r *memberRepository) List(_ context.Context) ([]domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]domain.Member, 0, len(r.ordered))
	for _, id := range r.ordered {
		members = append(members, *r.byID[id])
	}
	return members, nil
}
