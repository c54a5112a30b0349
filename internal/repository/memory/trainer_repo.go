package memory

import (
	"context"
	"sync"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/repository"
)

// trainerRepository implements repository.TrainerRepository with an
// in-memory ordered collection.
type trainerRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Trainer
	ordered []string
}

// NewTrainerRepository creates an empty in-memory trainer collection.
func NewTrainerRepository() repository.TrainerRepository {
	return &trainerRepository{
		byID: make(map[string]*domain.Trainer),
	}
}

// cloneTrainer copies a trainer including its assigned-member slice so
// callers can never mutate stored state through a returned pointer.
func cloneTrainer(trainer *domain.Trainer) *domain.Trainer {
	copied := *trainer
	if trainer.AssignedMembers != nil {
		copied.AssignedMembers = append([]string(nil), trainer.AssignedMembers...)
	}
	return &copied
}

func (r *trainerRepository) Insert(_ context.Context, trainer *domain.Trainer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[trainer.ID]; exists {
		return repository.ErrConflict
	}

	r.byID[trainer.ID] = cloneTrainer(trainer)
	r.ordered = append(r.ordered, trainer.ID)
	return nil
}

func (r *trainerRepository) Update(_ context.Context, trainer *domain.Trainer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[trainer.ID]; !exists {
		return repository.ErrNotFound
	}

	r.byID[trainer.ID] = cloneTrainer(trainer)
	return nil
}

func (r *trainerRepository) Delete(_ context.Context, id string) error {
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

func (r *trainerRepository) GetByID(_ context.Context, id string) (*domain.Trainer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trainer, exists := r.byID[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return cloneTrainer(trainer), nil
}

func (r *trainerRepository) List(_ context.Context) ([]domain.Trainer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trainers := make([]domain.Trainer, 0, len(r.ordered))
	for _, id := range r.ordered {
		trainers = append(trainers, *cloneTrainer(r.byID[id]))
	}
	return trainers, nil
}
