package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/repository/memory"
)

func newTestRosterService() RosterService {
	return NewRosterService(
		memory.NewMemberRepository(),
		memory.NewTrainerRepository(),
		memory.NewMembershipRepository(),
		memory.NewAttendanceRepository(),
	)
}

func testMember(name string) domain.Member {
	return domain.Member{
		Name:         name,
		Email:        name + "@gym.com",
		Phone:        "555-0100",
		MembershipID: "plan-basic",
	}
}

func testTrainer(name string) domain.Trainer {
	return domain.Trainer{
		Name:           name,
		Email:          name + "@gym.com",
		Phone:          "555-0200",
		Specialization: "Strength",
	}
}

func TestAddMemberDefaults(t *testing.T) {
	svc := newTestRosterService()

	member, err := svc.AddMember(context.Background(), testMember("alice"))
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if member.ID == "" {
		t.Error("AddMember assigned no id")
	}
	if member.MemberID != "MEM001" {
		t.Errorf("badge id = %q, want MEM001", member.MemberID)
	}
	if member.Status != domain.MemberPending {
		t.Errorf("status = %q, want pending", member.Status)
	}
	if member.JoinDate.IsZero() {
		t.Error("join date not defaulted")
	}

	second, err := svc.AddMember(context.Background(), testMember("bob"))
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if second.MemberID != "MEM002" {
		t.Errorf("second badge id = %q, want MEM002", second.MemberID)
	}
}

func TestAddMemberValidation(t *testing.T) {
	svc := newTestRosterService()

	missing := testMember("alice")
	missing.Phone = ""
	if _, err := svc.AddMember(context.Background(), missing); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("missing phone: got %v, want ErrValidationFailed", err)
	}
}

func TestAddMemberDuplicateID(t *testing.T) {
	svc := newTestRosterService()

	member := testMember("alice")
	member.ID = "m1"
	if _, err := svc.AddMember(context.Background(), member); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if _, err := svc.AddMember(context.Background(), member); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate id: got %v, want ErrDuplicateID", err)
	}
}

func TestUpdateMemberAbsent(t *testing.T) {
	svc := newTestRosterService()

	absent := testMember("ghost")
	absent.ID = "no-such-member"
	if _, err := svc.UpdateMember(context.Background(), absent); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("update absent: got %v, want ErrMemberNotFound", err)
	}
}

func TestDeleteMemberTwice(t *testing.T) {
	svc := newTestRosterService()

	member, err := svc.AddMember(context.Background(), testMember("alice"))
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	if err := svc.DeleteMember(context.Background(), member.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	// The collection no longer contains the member, so a repeat delete
	// reports the absence explicitly.
	if err := svc.DeleteMember(context.Background(), member.ID); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("second delete: got %v, want ErrMemberNotFound", err)
	}

	members, err := svc.ListMembers(context.Background())
	if err != nil {
		t.Fatalf("ListMembers: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("collection has %d members after delete, want 0", len(members))
	}
}

func TestSearchMembers(t *testing.T) {
	svc := newTestRosterService()
	ctx := context.Background()

	alice := testMember("Alice")
	alice.Phone = "555-1234"
	if _, err := svc.AddMember(ctx, alice); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if _, err := svc.AddMember(ctx, testMember("Bob")); err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	if got, _ := svc.SearchMembers(ctx, "a"); got != nil {
		t.Errorf("one-char query returned %d results, want none", len(got))
	}
	if got, _ := svc.SearchMembers(ctx, "ALICE"); len(got) != 1 {
		t.Errorf("name search returned %d results, want 1", len(got))
	}
	if got, _ := svc.SearchMembers(ctx, "555-1234"); len(got) != 1 {
		t.Errorf("phone search returned %d results, want 1", len(got))
	}
	if got, _ := svc.SearchMembers(ctx, "bob@gym.com"); len(got) != 1 {
		t.Errorf("email search returned %d results, want 1", len(got))
	}
	if got, _ := svc.SearchMembers(ctx, "mem00"); len(got) != 2 {
		t.Errorf("badge search returned %d results, want 2", len(got))
	}
}

func TestPlanNameDanglingReference(t *testing.T) {
	svc := newTestRosterService()
	ctx := context.Background()

	plan, err := svc.AddMembership(ctx, domain.Membership{Name: "Basic", Duration: 30})
	if err != nil {
		t.Fatalf("AddMembership: %v", err)
	}

	member := testMember("alice")
	member.MembershipID = plan.ID
	added, err := svc.AddMember(ctx, member)
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	if name, ok := svc.PlanName(ctx, added.MembershipID); !ok || name != "Basic" {
		t.Fatalf("PlanName = %q, %v; want Basic, true", name, ok)
	}

	// Deleting the plan leaves the member's reference dangling; the member
	// itself stays intact and the lookup degrades gracefully.
	if err := svc.DeleteMembership(ctx, plan.ID); err != nil {
		t.Fatalf("DeleteMembership: %v", err)
	}
	if _, ok := svc.PlanName(ctx, added.MembershipID); ok {
		t.Error("PlanName resolved a deleted plan")
	}
	got, err := svc.GetMember(ctx, added.ID)
	if err != nil {
		t.Fatalf("GetMember after plan delete: %v", err)
	}
	if got.MembershipID != plan.ID {
		t.Errorf("membershipId = %q, want the dangling %q", got.MembershipID, plan.ID)
	}
}

func TestAssignTrainer(t *testing.T) {
	svc := newTestRosterService()
	ctx := context.Background()

	member, err := svc.AddMember(ctx, testMember("alice"))
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	trainer, err := svc.AddTrainer(ctx, testTrainer("mike"))
	if err != nil {
		t.Fatalf("AddTrainer: %v", err)
	}

	if err := svc.AssignTrainer(ctx, member.ID, trainer.ID); err != nil {
		t.Fatalf("AssignTrainer: %v", err)
	}

	gotMember, _ := svc.GetMember(ctx, member.ID)
	if gotMember.TrainerID != trainer.ID {
		t.Errorf("member.trainerId = %q, want %q", gotMember.TrainerID, trainer.ID)
	}
	gotTrainer, _ := svc.GetTrainer(ctx, trainer.ID)
	if !gotTrainer.HasMember(member.ID) {
		t.Error("trainer's assigned list is missing the member")
	}

	// Assigning again is a no-op, not a duplicate entry.
	if err := svc.AssignTrainer(ctx, member.ID, trainer.ID); err != nil {
		t.Fatalf("repeat AssignTrainer: %v", err)
	}
	gotTrainer, _ = svc.GetTrainer(ctx, trainer.ID)
	if len(gotTrainer.AssignedMembers) != 1 {
		t.Errorf("assigned list has %d entries, want 1", len(gotTrainer.AssignedMembers))
	}
}

func TestReassignTrainerReleasesPrevious(t *testing.T) {
	svc := newTestRosterService()
	ctx := context.Background()

	member, _ := svc.AddMember(ctx, testMember("alice"))
	first, _ := svc.AddTrainer(ctx, testTrainer("mike"))
	second, _ := svc.AddTrainer(ctx, testTrainer("sarah"))

	if err := svc.AssignTrainer(ctx, member.ID, first.ID); err != nil {
		t.Fatalf("assign first: %v", err)
	}
	if err := svc.AssignTrainer(ctx, member.ID, second.ID); err != nil {
		t.Fatalf("assign second: %v", err)
	}

	gotFirst, _ := svc.GetTrainer(ctx, first.ID)
	if gotFirst.HasMember(member.ID) {
		t.Error("previous trainer still lists the member")
	}
	gotSecond, _ := svc.GetTrainer(ctx, second.ID)
	if !gotSecond.HasMember(member.ID) {
		t.Error("new trainer does not list the member")
	}
	gotMember, _ := svc.GetMember(ctx, member.ID)
	if gotMember.TrainerID != second.ID {
		t.Errorf("member.trainerId = %q, want %q", gotMember.TrainerID, second.ID)
	}
}

// A plain member update must not touch the trainer link; only the
// assign and unassign operations move both sides together.
func TestUpdateMemberPreservesTrainerLink(t *testing.T) {
	svc := newTestRosterService()
	ctx := context.Background()

	member, _ := svc.AddMember(ctx, testMember("alice"))
	trainer, _ := svc.AddTrainer(ctx, testTrainer("mike"))

	if err := svc.AssignTrainer(ctx, member.ID, trainer.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	edited := *member
	edited.Name = "Alice W."
	edited.TrainerID = "" // link changes ride along full updates; must be ignored
	if _, err := svc.UpdateMember(ctx, edited); err != nil {
		t.Fatalf("UpdateMember: %v", err)
	}

	gotMember, _ := svc.GetMember(ctx, member.ID)
	if gotMember.Name != "Alice W." {
		t.Errorf("name = %q, update was not applied", gotMember.Name)
	}
	if gotMember.TrainerID != trainer.ID {
		t.Errorf("member.trainerId = %q, want %q kept", gotMember.TrainerID, trainer.ID)
	}
	gotTrainer, _ := svc.GetTrainer(ctx, trainer.ID)
	if !gotTrainer.HasMember(member.ID) {
		t.Error("trainer no longer lists the member after a plain update")
	}

	// The same holds for an update that smuggles in a different trainer.
	other, _ := svc.AddTrainer(ctx, testTrainer("sarah"))
	edited.TrainerID = other.ID
	if _, err := svc.UpdateMember(ctx, edited); err != nil {
		t.Fatalf("UpdateMember: %v", err)
	}
	gotMember, _ = svc.GetMember(ctx, member.ID)
	if gotMember.TrainerID != trainer.ID {
		t.Errorf("member.trainerId = %q, want %q kept", gotMember.TrainerID, trainer.ID)
	}
	gotOther, _ := svc.GetTrainer(ctx, other.ID)
	if gotOther.HasMember(member.ID) {
		t.Error("unassigned trainer picked up the member through a plain update")
	}
}

func TestUnassignTrainer(t *testing.T) {
	svc := newTestRosterService()
	ctx := context.Background()

	member, _ := svc.AddMember(ctx, testMember("alice"))
	trainer, _ := svc.AddTrainer(ctx, testTrainer("mike"))

	if err := svc.AssignTrainer(ctx, member.ID, trainer.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := svc.UnassignTrainer(ctx, member.ID); err != nil {
		t.Fatalf("unassign: %v", err)
	}

	gotMember, _ := svc.GetMember(ctx, member.ID)
	if gotMember.TrainerID != "" {
		t.Errorf("member.trainerId = %q, want empty", gotMember.TrainerID)
	}
	gotTrainer, _ := svc.GetTrainer(ctx, trainer.ID)
	if gotTrainer.HasMember(member.ID) {
		t.Error("trainer still lists the unassigned member")
	}

	// Unassigning a member with no trainer is a no-op.
	if err := svc.UnassignTrainer(ctx, member.ID); err != nil {
		t.Fatalf("repeat unassign: %v", err)
	}
}

func TestUnassignToleratesDanglingTrainer(t *testing.T) {
	svc := newTestRosterService()
	ctx := context.Background()

	member, _ := svc.AddMember(ctx, testMember("alice"))
	trainer, _ := svc.AddTrainer(ctx, testTrainer("mike"))

	if err := svc.AssignTrainer(ctx, member.ID, trainer.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	// Deleting the trainer does not cascade to the member's reference.
	if err := svc.DeleteTrainer(ctx, trainer.ID); err != nil {
		t.Fatalf("delete trainer: %v", err)
	}

	if err := svc.UnassignTrainer(ctx, member.ID); err != nil {
		t.Fatalf("unassign with dangling trainer: %v", err)
	}
	gotMember, _ := svc.GetMember(ctx, member.ID)
	if gotMember.TrainerID != "" {
		t.Errorf("member.trainerId = %q, want empty", gotMember.TrainerID)
	}
}

func TestAssignTrainerAbsentParties(t *testing.T) {
	svc := newTestRosterService()
	ctx := context.Background()

	member, _ := svc.AddMember(ctx, testMember("alice"))
	trainer, _ := svc.AddTrainer(ctx, testTrainer("mike"))

	if err := svc.AssignTrainer(ctx, "no-such-member", trainer.ID); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("absent member: got %v, want ErrMemberNotFound", err)
	}
	if err := svc.AssignTrainer(ctx, member.ID, "no-such-trainer"); !errors.Is(err, ErrTrainerNotFound) {
		t.Errorf("absent trainer: got %v, want ErrTrainerNotFound", err)
	}
}

func TestDashboardSummary(t *testing.T) {
	memberRepo := memory.NewMemberRepository()
	trainerRepo := memory.NewTrainerRepository()
	membershipRepo := memory.NewMembershipRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	svc := NewRosterService(memberRepo, trainerRepo, membershipRepo, attendanceRepo)
	ctx := context.Background()

	plan, err := svc.AddMembership(ctx, domain.Membership{Name: "Basic", Duration: 30})
	if err != nil {
		t.Fatalf("AddMembership: %v", err)
	}

	now := time.Now().UTC()
	expired := now.AddDate(0, 0, -3)
	expiring := now.AddDate(0, 0, 7)
	farOut := now.AddDate(0, 0, 60)

	add := func(name string, status domain.MemberStatus, expiry *time.Time) {
		t.Helper()
		member := testMember(name)
		member.Status = status
		member.MembershipID = plan.ID
		member.ExpiryDate = expiry
		if _, err := svc.AddMember(ctx, member); err != nil {
			t.Fatalf("AddMember(%s): %v", name, err)
		}
	}
	add("alice", domain.MemberActive, &expired)
	add("bob", domain.MemberActive, &expiring)
	add("carol", domain.MemberInactive, &farOut)

	summary, err := svc.DashboardSummary(ctx)
	if err != nil {
		t.Fatalf("DashboardSummary: %v", err)
	}

	if summary.TotalMembers != 3 {
		t.Errorf("totalMembers = %d, want 3", summary.TotalMembers)
	}
	if summary.ActiveMembers != 2 {
		t.Errorf("activeMembers = %d, want 2", summary.ActiveMembers)
	}
	if summary.NewMembersToday != 3 {
		t.Errorf("newMembersToday = %d, want 3", summary.NewMembersToday)
	}
	if summary.ExpiredMembers != 1 {
		t.Errorf("expiredMembers = %d, want 1", summary.ExpiredMembers)
	}
	if summary.ExpiringMembers != 1 {
		t.Errorf("expiringMembers = %d, want 1", summary.ExpiringMembers)
	}
	if len(summary.MembershipStats) != 1 || summary.MembershipStats[0].Value != 3 {
		t.Errorf("membershipStats = %+v, want one slice of 3", summary.MembershipStats)
	}
}

func TestDueDatesSortedSoonestFirst(t *testing.T) {
	svc := newTestRosterService()
	ctx := context.Background()

	now := time.Now().UTC()
	later := now.AddDate(0, 0, 30)
	sooner := now.AddDate(0, 0, 5)

	a := testMember("alice")
	a.ExpiryDate = &later
	b := testMember("bob")
	b.ExpiryDate = &sooner
	c := testMember("carol") // no expiry, excluded

	for _, m := range []domain.Member{a, b, c} {
		if _, err := svc.AddMember(ctx, m); err != nil {
			t.Fatalf("AddMember: %v", err)
		}
	}

	due, err := svc.DueDates(ctx)
	if err != nil {
		t.Fatalf("DueDates: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("DueDates returned %d members, want 2", len(due))
	}
	if due[0].Name != "bob" || due[1].Name != "alice" {
		t.Errorf("order = [%s, %s], want [bob, alice]", due[0].Name, due[1].Name)
	}
}
