package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/repository"
)

func TestAttendanceGetOpenByMember(t *testing.T) {
	repo := NewAttendanceRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	closedAt := now.Add(-time.Hour)
	records := []*domain.Attendance{
		{ID: "r1", MemberID: "m1", CheckIn: now.Add(-2 * time.Hour), CheckOut: &closedAt},
		{ID: "r2", MemberID: "m1", CheckIn: now.Add(-30 * time.Minute)},
		{ID: "r3", MemberID: "m2", CheckIn: now.Add(-10 * time.Minute)},
	}
	for _, record := range records {
		if err := repo.Insert(ctx, record); err != nil {
			t.Fatalf("Insert(%s): %v", record.ID, err)
		}
	}

	open, err := repo.GetOpenByMember(ctx, "m1")
	if err != nil {
		t.Fatalf("GetOpenByMember: %v", err)
	}
	if open.ID != "r2" {
		t.Errorf("open record = %s, want r2", open.ID)
	}

	if _, err := repo.GetOpenByMember(ctx, "m3"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("no visits: got %v, want ErrNotFound", err)
	}

	history, err := repo.ListByMember(ctx, "m1")
	if err != nil {
		t.Fatalf("ListByMember: %v", err)
	}
	if len(history) != 2 {
		t.Errorf("history has %d records, want 2", len(history))
	}
}

func TestAttendanceUpdateClosesRecord(t *testing.T) {
	repo := NewAttendanceRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	record := &domain.Attendance{ID: "r1", MemberID: "m1", CheckIn: now}
	if err := repo.Insert(ctx, record); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	checkOut := now.Add(45 * time.Minute)
	record.CheckOut = &checkOut
	record.Duration = 45
	if err := repo.Update(ctx, record); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if _, err := repo.GetOpenByMember(ctx, "m1"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("after close: got %v, want ErrNotFound", err)
	}
	got, err := repo.GetByID(ctx, "r1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.CheckOut == nil || got.Duration != 45 {
		t.Errorf("closed record = %+v, want checkOut set and duration 45", got)
	}
}
