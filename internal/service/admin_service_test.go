package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/repository/memory"
)

func testOwner(name string) domain.GymOwner {
	return domain.GymOwner{
		Name:    name,
		Email:   name + "@example.com",
		GymName: name + "'s Gym",
	}
}

func TestAddOwnerDefaults(t *testing.T) {
	svc := NewAdminService(memory.NewGymOwnerRepository())

	owner, err := svc.AddOwner(context.Background(), testOwner("john"))
	if err != nil {
		t.Fatalf("AddOwner: %v", err)
	}
	if owner.ID == "" {
		t.Error("AddOwner assigned no id")
	}
	if owner.Status != domain.OwnerActive {
		t.Errorf("status = %q, want active", owner.Status)
	}
	if owner.SubscriptionStatus != domain.SubscriptionTrial {
		t.Errorf("subscription = %q, want trial", owner.SubscriptionStatus)
	}

	missing := testOwner("jane")
	missing.GymName = ""
	if _, err := svc.AddOwner(context.Background(), missing); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("missing gymName: got %v, want ErrValidationFailed", err)
	}
}

func TestOwnerNotFound(t *testing.T) {
	svc := NewAdminService(memory.NewGymOwnerRepository())
	ctx := context.Background()

	if _, err := svc.GetOwner(ctx, "absent"); !errors.Is(err, ErrOwnerNotFound) {
		t.Errorf("get: got %v, want ErrOwnerNotFound", err)
	}
	if err := svc.DeleteOwner(ctx, "absent"); !errors.Is(err, ErrOwnerNotFound) {
		t.Errorf("delete: got %v, want ErrOwnerNotFound", err)
	}
	ghost := testOwner("ghost")
	ghost.ID = "absent"
	if _, err := svc.UpdateOwner(ctx, ghost); !errors.Is(err, ErrOwnerNotFound) {
		t.Errorf("update: got %v, want ErrOwnerNotFound", err)
	}
}

// Month buckets near month-end dates must stay one per calendar month;
// naive date arithmetic would turn Mar 31 minus one month into Mar 2.
func TestMonthBucketOnMonthEnd(t *testing.T) {
	now := time.Date(2026, time.March, 31, 23, 0, 0, 0, time.UTC)

	want := []string{"Oct 2025", "Nov 2025", "Dec 2025", "Jan 2026", "Feb 2026", "Mar 2026"}
	for i, offset := range []int{5, 4, 3, 2, 1, 0} {
		got := monthBucket(now, offset).Format("Jan 2006")
		if got != want[i] {
			t.Errorf("monthBucket(offset %d) = %q, want %q", offset, got, want[i])
		}
	}
}

func TestAdminStats(t *testing.T) {
	svc := NewAdminService(memory.NewGymOwnerRepository())
	ctx := context.Background()

	now := time.Now().UTC()

	add := func(name string, status domain.OwnerStatus, sub domain.SubscriptionStatus, revenue float64, joined time.Time) {
		t.Helper()
		owner := testOwner(name)
		owner.Status = status
		owner.SubscriptionStatus = sub
		owner.Revenue = revenue
		owner.JoinDate = joined
		if _, err := svc.AddOwner(ctx, owner); err != nil {
			t.Fatalf("AddOwner(%s): %v", name, err)
		}
	}
	add("john", domain.OwnerActive, domain.SubscriptionActive, 1200, now)
	add("jane", domain.OwnerActive, domain.SubscriptionTrial, 300, now.AddDate(0, -2, 0))
	add("jack", domain.OwnerInactive, domain.SubscriptionExpired, 0, now.AddDate(0, -4, 0))

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.TotalGymOwners != 3 {
		t.Errorf("totalGymOwners = %d, want 3", stats.TotalGymOwners)
	}
	if stats.ActiveGymOwners != 2 {
		t.Errorf("activeGymOwners = %d, want 2", stats.ActiveGymOwners)
	}
	if stats.TotalRevenue != 1500 {
		t.Errorf("totalRevenue = %v, want 1500", stats.TotalRevenue)
	}
	if stats.MonthlyRevenue != 1200 {
		t.Errorf("monthlyRevenue = %v, want 1200", stats.MonthlyRevenue)
	}
	if len(stats.RevenueByMonth) != 6 {
		t.Fatalf("revenueByMonth has %d points, want 6", len(stats.RevenueByMonth))
	}
	if last := stats.RevenueByMonth[5]; last.Revenue != 1200 {
		t.Errorf("current month revenue = %v, want 1200", last.Revenue)
	}

	wantStatus := map[string]int{"active": 1, "trial": 1, "expired": 1}
	for _, sc := range stats.OwnersByStatus {
		if sc.Value != wantStatus[sc.Name] {
			t.Errorf("ownersByStatus[%s] = %d, want %d", sc.Name, sc.Value, wantStatus[sc.Name])
		}
	}
	if len(stats.RecentGymOwners) != 3 {
		t.Fatalf("recentGymOwners has %d entries, want 3", len(stats.RecentGymOwners))
	}
	if stats.RecentGymOwners[0].Name != "jack" {
		t.Errorf("newest owner = %s, want jack", stats.RecentGymOwners[0].Name)
	}
}
