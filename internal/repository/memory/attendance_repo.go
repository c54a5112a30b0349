package memory

import (
	"context"
	"sync"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/repository"
)

// attendanceRepository implements repository.AttendanceRepository with an
// in-memory ordered ledger.
type attendanceRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Attendance
	ordered []string
}

// NewAttendanceRepository creates an empty in-memory attendance ledger.
func NewAttendanceRepository() repository.AttendanceRepository {
	return &attendanceRepository{
		byID: make(map[string]*domain.Attendance),
	}
}

func cloneRecord(record *domain.Attendance) *domain.Attendance {
	copied := *record
	if record.CheckOut != nil {
		checkOut := *record.CheckOut
		copied.CheckOut = &checkOut
	}
	return &copied
}

func (r *attendanceRepository) Insert(_ context.Context, record *domain.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[record.ID]; exists {
		return repository.ErrConflict
	}

	r.byID[record.ID] = cloneRecord(record)
	r.ordered = append(r.ordered, record.ID)
	return nil
}

func (r *attendanceRepository) Update(_ context.Context, record *domain.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[record.ID]; !exists {
		return repository.ErrNotFound
	}

	r.byID[record.ID] = cloneRecord(record)
	return nil
}

func (r *attendanceRepository) GetByID(_ context.Context, id string) (*domain.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.byID[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return cloneRecord(record), nil
}

func (r *attendanceRepository) GetOpenByMember(_ context.Context, memberID string) (*domain.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.ordered {
		record := r.byID[id]
		if record.MemberID == memberID && record.Open() {
			return cloneRecord(record), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *attendanceRepository) ListByMember(_ context.Context, memberID string) ([]domain.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []domain.Attendance
	for _, id := range r.ordered {
		if record := r.byID[id]; record.MemberID == memberID {
			records = append(records, *cloneRecord(record))
		}
	}
	return records, nil
}

func (r *attendanceRepository) List(_ context.Context) ([]domain.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]domain.Attendance, 0, len(r.ordered))
	for _, id := range r.ordered {
		records = append(records, *cloneRecord(r.byID[id]))
	}
	return records, nil
}
