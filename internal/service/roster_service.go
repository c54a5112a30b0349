package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/repository"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrMemberNotFound   = errors.New("member not found")
	ErrTrainerNotFound  = errors.New("trainer not found")
	ErrPlanNotFound     = errors.New("membership plan not found")
	ErrDuplicateID      = errors.New("an entity with this id already exists")
)

// MembershipStat is one slice of the per-plan member distribution.
type MembershipStat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DashboardSummary is the aggregate the gym owner dashboard renders.
type DashboardSummary struct {
	TotalMembers        int                 `json:"totalMembers"`
	ActiveMembers       int                 `json:"activeMembers"`
	NewMembersToday     int                 `json:"newMembersToday"`
	CheckedInToday      int                 `json:"checkedInToday"`
	ExpiredMembers      int                 `json:"expiredMembers"`
	ExpiringMembers     int                 `json:"expiringMembers"`
	MembershipStats     []MembershipStat    `json:"membershipStats"`
	RecentAttendance    []domain.Attendance `json:"recentAttendance"`
	ExpiredMembersList  []domain.Member     `json:"expiredMembersList"`
	ExpiringMembersList []domain.Member     `json:"expiringMembersList"`
}

// Members expiring within this many days count as "expiring soon".
const expiryWarningDays = 15

// RosterService owns the three roster collections (members, trainers,
// membership plans) and every structural mutation on them. It is the
// single source of truth the owner console reads.
type RosterService interface {
	AddMember(ctx context.Context, member domain.Member) (*domain.Member, error)
	UpdateMember(ctx context.Context, member domain.Member) (*domain.Member, error)
	DeleteMember(ctx context.Context, id string) error
	GetMember(ctx context.Context, id string) (*domain.Member, error)
	ListMembers(ctx context.Context) ([]domain.Member, error)
	// SearchMembers matches name, email, phone or badge id, case
	// insensitively. Queries shorter than two characters return nothing.
	SearchMembers(ctx context.Context, query string) ([]domain.Member, error)
	// PlanName resolves a member's plan name. The second result is false
	// when the plan id dangles; dangling references are legal and must
	// degrade gracefully.
	PlanName(ctx context.Context, membershipID string) (string, bool)

	AddTrainer(ctx context.Context, trainer domain.Trainer) (*domain.Trainer, error)
	UpdateTrainer(ctx context.Context, trainer domain.Trainer) (*domain.Trainer, error)
	DeleteTrainer(ctx context.Context, id string) error
	GetTrainer(ctx context.Context, id string) (*domain.Trainer, error)
	ListTrainers(ctx context.Context) ([]domain.Trainer, error)

	AddMembership(ctx context.Context, plan domain.Membership) (*domain.Membership, error)
	UpdateMembership(ctx context.Context, plan domain.Membership) (*domain.Membership, error)
	DeleteMembership(ctx context.Context, id string) error
	GetMembership(ctx context.Context, id string) (*domain.Membership, error)
	ListMemberships(ctx context.Context) ([]domain.Membership, error)

	// AssignTrainer updates Member.TrainerID and the trainer's
	// AssignedMembers as one logical transaction; UnassignTrainer is its
	// inverse. Neither side is ever mutated independently.
	AssignTrainer(ctx context.Context, memberID, trainerID string) error
	UnassignTrainer(ctx context.Context, memberID string) error

	DashboardSummary(ctx context.Context) (*DashboardSummary, error)
	// DueDates lists members that carry an expiry date, soonest first.
	DueDates(ctx context.Context) ([]domain.Member, error)
}

// --- Service Implementation ---

type rosterService struct {
	memberRepo     repository.MemberRepository
	trainerRepo    repository.TrainerRepository
	membershipRepo repository.MembershipRepository
	attendanceRepo repository.AttendanceRepository
}

// NewRosterService creates a new instance of rosterService.
func NewRosterService(
	memberRepo repository.MemberRepository,
	trainerRepo repository.TrainerRepository,
	membershipRepo repository.MembershipRepository,
	attendanceRepo repository.AttendanceRepository,
) RosterService {
	return &rosterService{
		memberRepo:     memberRepo,
		trainerRepo:    trainerRepo,
		membershipRepo: membershipRepo,
		attendanceRepo: attendanceRepo,
	}
}

// --- Members ---

func (s *rosterService) AddMember(ctx context.Context, member domain.Member) (*domain.Member, error) {
	if member.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidationFailed)
	}
	if member.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidationFailed)
	}
	if member.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrValidationFailed)
	}
	if member.MembershipID == "" {
		return nil, fmt.Errorf("%w: membershipId is required", ErrValidationFailed)
	}

	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	if member.Status == "" {
		member.Status = domain.MemberPending
	}
	if member.JoinDate.IsZero() {
		member.JoinDate = time.Now().UTC()
	}
	if member.MemberID == "" {
		existing, err := s.memberRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		member.MemberID = fmt.Sprintf("MEM%03d", len(existing)+1)
	}

	if err := s.memberRepo.Insert(ctx, &member); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrDuplicateID
		}
		return nil, err
	}
	return &member, nil
}

func (s *rosterService) UpdateMember(ctx context.Context, member domain.Member) (*domain.Member, error) {
	if member.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidationFailed)
	}
	if member.Name == "" || member.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidationFailed)
	}

	existing, err := s.memberRepo.GetByID(ctx, member.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	// The trainer link changes only through AssignTrainer and
	// UnassignTrainer; a full replacement keeps the stored link so the
	// two sides of the assignment cannot drift apart.
	member.TrainerID = existing.TrainerID

	if err := s.memberRepo.Update(ctx, &member); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (s *rosterService) DeleteMember(ctx context.Context, id string) error {
	// No cascade: attendance history and trainer assignment lists keep
	// whatever member ids they already hold.
	if err := s.memberRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	return nil
}

func (s *rosterService) GetMember(ctx context.Context, id string) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *rosterService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	return s.memberRepo.List(ctx)
}

func (s *rosterService) SearchMembers(ctx context.Context, query string) ([]domain.Member, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, nil
	}

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	var matched []domain.Member
	for _, member := range members {
		if strings.Contains(strings.ToLower(member.Name), needle) ||
			strings.Contains(strings.ToLower(member.Email), needle) ||
			strings.Contains(member.Phone, query) ||
			strings.Contains(strings.ToLower(member.MemberID), needle) {
			matched = append(matched, member)
		}
	}
	return matched, nil
}

func (s *rosterService) PlanName(ctx context.Context, membershipID string) (string, bool) {
	plan, err := s.membershipRepo.GetByID(ctx, membershipID)
	if err != nil {
		return "", false
	}
	return plan.Name, true
}

// --- Trainers ---

func (s *rosterService) AddTrainer(ctx context.Context, trainer domain.Trainer) (*domain.Trainer, error) {
	if trainer.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidationFailed)
	}
	if trainer.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidationFailed)
	}
	if trainer.Specialization == "" {
		return nil, fmt.Errorf("%w: specialization is required", ErrValidationFailed)
	}

	if trainer.ID == "" {
		trainer.ID = uuid.NewString()
	}
	if trainer.Status == "" {
		trainer.Status = domain.TrainerActive
	}
	if trainer.JoinDate.IsZero() {
		trainer.JoinDate = time.Now().UTC()
	}
	if trainer.TrainerID == "" {
		existing, err := s.trainerRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		trainer.TrainerID = fmt.Sprintf("TR%03d", len(existing)+1)
	}

	if err := s.trainerRepo.Insert(ctx, &trainer); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrDuplicateID
		}
		return nil, err
	}
	return &trainer, nil
}

func (s *rosterService) UpdateTrainer(ctx context.Context, trainer domain.Trainer) (*domain.Trainer, error) {
	if trainer.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidationFailed)
	}
	if trainer.Name == "" || trainer.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidationFailed)
	}

	if err := s.trainerRepo.Update(ctx, &trainer); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

func (s *rosterService) DeleteTrainer(ctx context.Context, id string) error {
	if err := s.trainerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return err
	}
	return nil
}

func (s *rosterService) GetTrainer(ctx context.Context, id string) (*domain.Trainer, error) {
	trainer, err := s.trainerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return trainer, nil
}

func (s *rosterService) ListTrainers(ctx context.Context) ([]domain.Trainer, error) {
	return s.trainerRepo.List(ctx)
}

// --- Membership plans ---

func (s *rosterService) AddMembership(ctx context.Context, plan domain.Membership) (*domain.Membership, error) {
	if plan.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidationFailed)
	}
	if plan.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrValidationFailed)
	}

	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}

	if err := s.membershipRepo.Insert(ctx, &plan); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrDuplicateID
		}
		return nil, err
	}
	return &plan, nil
}

func (s *rosterService) UpdateMembership(ctx context.Context, plan domain.Membership) (*domain.Membership, error) {
	if plan.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidationFailed)
	}
	if plan.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidationFailed)
	}

	if err := s.membershipRepo.Update(ctx, &plan); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (s *rosterService) DeleteMembership(ctx context.Context, id string) error {
	// Deliberately non-cascading: members referencing the plan keep their
	// membershipId and lookups through PlanName degrade to absent.
	if err := s.membershipRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}

func (s *rosterService) GetMembership(ctx context.Context, id string) (*domain.Membership, error) {
	plan, err := s.membershipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *rosterService) ListMemberships(ctx context.Context) ([]domain.Membership, error) {
	return s.membershipRepo.List(ctx)
}

// --- Trainer assignment ---

func (s *rosterService) AssignTrainer(ctx context.Context, memberID, trainerID string) error {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}

	trainer, err := s.trainerRepo.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return err
	}

	if member.TrainerID == trainerID {
		return nil
	}

	// Re-assignment releases the previous trainer first.
	if member.TrainerID != "" {
		if err := s.UnassignTrainer(ctx, memberID); err != nil {
			return err
		}
	}

	if !trainer.HasMember(memberID) {
		trainer.AssignedMembers = append(trainer.AssignedMembers, memberID)
	}
	if err := s.trainerRepo.Update(ctx, trainer); err != nil {
		return err
	}

	member.TrainerID = trainerID
	if err := s.memberRepo.Update(ctx, member); err != nil {
		// Roll back the trainer side so the two views stay consistent.
		trainer.AssignedMembers = removeID(trainer.AssignedMembers, memberID)
		if rbErr := s.trainerRepo.Update(ctx, trainer); rbErr != nil {
			return fmt.Errorf("assign rollback failed: %v (original: %w)", rbErr, err)
		}
		return err
	}
	return nil
}

func (s *rosterService) UnassignTrainer(ctx context.Context, memberID string) error {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}

	if member.TrainerID == "" {
		return nil
	}

	previousID := member.TrainerID
	member.TrainerID = ""
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return err
	}

	trainer, err := s.trainerRepo.GetByID(ctx, previousID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Dangling trainer reference; nothing left to release.
			return nil
		}
		member.TrainerID = previousID
		if rbErr := s.memberRepo.Update(ctx, member); rbErr != nil {
			return fmt.Errorf("unassign rollback failed: %v (original: %w)", rbErr, err)
		}
		return err
	}

	trainer.AssignedMembers = removeID(trainer.AssignedMembers, memberID)
	if err := s.trainerRepo.Update(ctx, trainer); err != nil {
		member.TrainerID = previousID
		if rbErr := s.memberRepo.Update(ctx, member); rbErr != nil {
			return fmt.Errorf("unassign rollback failed: %v (original: %w)", rbErr, err)
		}
		return err
	}
	return nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

// --- Reports ---

func (s *rosterService) DashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	plans, err := s.membershipRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	summary := &DashboardSummary{TotalMembers: len(members)}

	for _, member := range members {
		if member.Status == domain.MemberActive {
			summary.ActiveMembers++
		}
		if sameDay(member.JoinDate, now) {
			summary.NewMembersToday++
		}
		if member.Expired(now) {
			summary.ExpiredMembers++
			summary.ExpiredMembersList = append(summary.ExpiredMembersList, member)
		} else if member.ExpiringWithin(now, expiryWarningDays) {
			summary.ExpiringMembers++
			summary.ExpiringMembersList = append(summary.ExpiringMembersList, member)
		}
	}

	for _, plan := range plans {
		stat := MembershipStat{Name: plan.Name}
		for _, member := range members {
			if member.MembershipID == plan.ID {
				stat.Value++
			}
		}
		summary.MembershipStats = append(summary.MembershipStats, stat)
	}

	for _, record := range records {
		if sameDay(record.CheckIn, now) {
			summary.CheckedInToday++
		}
	}

	// Newest five ledger entries.
	for i := len(records) - 1; i >= 0 && len(summary.RecentAttendance) < 5; i-- {
		summary.RecentAttendance = append(summary.RecentAttendance, records[i])
	}

	return summary, nil
}

func (s *rosterService) DueDates(ctx context.Context) ([]domain.Member, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var due []domain.Member
	for _, member := range members {
		if member.ExpiryDate != nil {
			due = append(due, member)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].ExpiryDate.Before(*due[j].ExpiryDate)
	})
	return due, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
