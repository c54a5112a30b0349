package service

import (
	"context"
	"errors"
	"time"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/repository"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrAlreadyCheckedIn = errors.New("member is already checked in")
	ErrNotCheckedIn     = errors.New("member is not currently checked in")
)

// AttendanceService owns the check-in ledger. The invariant it enforces:
// at most one open record (no check-out yet) per member at a time.
type AttendanceService interface {
	CheckIn(ctx context.Context, memberID string) (*domain.Attendance, error)
	// CheckOut closes the member's open record and stamps the visit
	// duration in whole minutes.
	CheckOut(ctx context.Context, memberID string) (*domain.Attendance, error)
	List(ctx context.Context) ([]domain.Attendance, error)
	ListOpen(ctx context.Context) ([]domain.Attendance, error)
	History(ctx context.Context, memberID string) ([]domain.Attendance, error)
}

type attendanceService struct {
	memberRepo     repository.MemberRepository
	attendanceRepo repository.AttendanceRepository
}

// NewAttendanceService creates a new instance of attendanceService.
func NewAttendanceService(memberRepo repository.MemberRepository, attendanceRepo repository.AttendanceRepository) AttendanceService {
	return &attendanceService{
		memberRepo:     memberRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (s *attendanceService) CheckIn(ctx context.Context, memberID string) (*domain.Attendance, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	_, err = s.attendanceRepo.GetOpenByMember(ctx, memberID)
	if err == nil {
		return nil, ErrAlreadyCheckedIn
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	record := &domain.Attendance{
		ID:         uuid.NewString(),
		MemberID:   member.ID,
		MemberName: member.Name,
		CheckIn:    time.Now().UTC(),
	}
	if err := s.attendanceRepo.Insert(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, memberID string) (*domain.Attendance, error) {
	record, err := s.attendanceRepo.GetOpenByMember(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotCheckedIn
		}
		return nil, err
	}

	now := time.Now().UTC()
	record.CheckOut = &now
	record.Duration = int(now.Sub(record.CheckIn).Minutes())
	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *attendanceService) List(ctx context.Context) ([]domain.Attendance, error) {
	return s.attendanceRepo.List(ctx)
}

func (s *attendanceService) ListOpen(ctx context.Context) ([]domain.Attendance, error) {
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var open []domain.Attendance
	for _, record := range records {
		if record.Open() {
			open = append(open, record)
		}
	}
	return open, nil
}

func (s *attendanceService) History(ctx context.Context, memberID string) ([]domain.Attendance, error) {
	return s.attendanceRepo.ListByMember(ctx, memberID)
}
