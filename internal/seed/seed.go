// Package seed loads the demo fixtures the application starts with. The
// collections are in-memory only, so the fixtures are applied on every
// boot; they are the "initial snapshot provider" the stores read once.
package seed

import (
	"context"
	"time"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/repository"
)

func daysAgo(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

func daysAhead(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, days)
}

func monthsAgo(now time.Time, months int) time.Time {
	return now.AddDate(0, -months, 0)
}

func at(t time.Time) *time.Time { return &t }

// Demo seeds every collection with the demo gym. Collections are assumed
// empty; a conflict means Demo ran twice and is returned as-is.
func Demo(
	ctx context.Context,
	members repository.MemberRepository,
	trainers repository.TrainerRepository,
	memberships repository.MembershipRepository,
	attendance repository.AttendanceRepository,
	owners repository.GymOwnerRepository,
) error {
	now := time.Now().UTC()

	for _, plan := range []domain.Membership{
		{
			ID: "1", Name: "Basic", Duration: 30, Price: 49.99,
			Description: "Access to basic facilities and classes",
			Features:    []string{"Gym access", "Basic equipment", "2 classes per week"},
			Color:       "bg-blue-500",
		},
		{
			ID: "2", Name: "Standard", Duration: 30, Price: 79.99,
			Description: "Full access to all facilities and classes",
			Features:    []string{"Gym access", "All equipment", "Unlimited classes", "Pool access"},
			Color:       "bg-green-500",
		},
		{
			ID: "3", Name: "Premium", Duration: 30, Price: 119.99,
			Description: "VIP access with personal training sessions",
			Features:    []string{"Gym access", "All equipment", "Unlimited classes", "Pool access", "Sauna access", "2 PT sessions per month"},
			Color:       "bg-purple-500",
		},
		{
			ID: "4", Name: "Annual", Duration: 365, Price: 599.99,
			Description: "Full year of standard membership at a discount",
			Features:    []string{"Gym access", "All equipment", "Unlimited classes", "Pool access", "15% off merchandise"},
			Color:       "bg-amber-500",
		},
	} {
		if err := memberships.Insert(ctx, &plan); err != nil {
			return err
		}
	}

	for _, trainer := range []domain.Trainer{
		{
			ID: "1", Name: "Alex Thompson", Email: "alex@example.com", Phone: "(555) 111-2233",
			Specialization: "Strength Training", Experience: "5 years",
			JoinDate: monthsAgo(now, 2), Status: domain.TrainerActive,
			TrainerID: "TR001", AssignedMembers: []string{"1", "2"},
		},
		{
			ID: "2", Name: "Sarah Martinez", Email: "sarah.m@example.com", Phone: "(555) 444-5566",
			Specialization: "Yoga & Pilates", Experience: "7 years",
			JoinDate: monthsAgo(now, 8), Status: domain.TrainerActive,
			TrainerID: "TR002", AssignedMembers: []string{"3"},
		},
		{
			ID: "3", Name: "David Kim", Email: "david.k@example.com", Phone: "(555) 777-8899",
			Specialization: "CrossFit", Experience: "4 years",
			JoinDate: monthsAgo(now, 1), Status: domain.TrainerActive,
			TrainerID: "TR003",
		},
	} {
		if err := trainers.Insert(ctx, &trainer); err != nil {
			return err
		}
	}

	for _, member := range []domain.Member{
		{
			ID: "1", Name: "Emma Wilson", Email: "emma@example.com", Phone: "(555) 123-4567",
			MembershipID: "3", TrainerID: "1", JoinDate: monthsAgo(now, 6),
			Status: domain.MemberActive, MemberID: "MEM001", ExpiryDate: at(daysAhead(now, 5)),
		},
		{
			ID: "2", Name: "James Rodriguez", Email: "james@example.com", Phone: "(555) 987-6543",
			MembershipID: "2", TrainerID: "1", JoinDate: monthsAgo(now, 2),
			Status: domain.MemberActive, MemberID: "MEM002", ExpiryDate: at(daysAgo(now, 2)),
		},
		{
			ID: "3", Name: "Olivia Chen", Email: "olivia@example.com", Phone: "(555) 456-7890",
			MembershipID: "4", TrainerID: "2", JoinDate: monthsAgo(now, 10),
			Status: domain.MemberActive, MemberID: "MEM003", ExpiryDate: at(daysAhead(now, 15)),
		},
		{
			ID: "4", Name: "Michael Johnson", Email: "michael@example.com", Phone: "(555) 234-5678",
			MembershipID: "1", JoinDate: daysAgo(now, 5),
			Status: domain.MemberPending, MemberID: "MEM004", ExpiryDate: at(daysAgo(now, 5)),
		},
		{
			ID: "5", Name: "Sophia Martinez", Email: "sophia@example.com", Phone: "(555) 345-6789",
			MembershipID: "2", JoinDate: monthsAgo(now, 1),
			Status: domain.MemberActive, MemberID: "MEM005", ExpiryDate: at(daysAgo(now, 1)),
		},
		{
			ID: "6", Name: "Daniel Kim", Email: "daniel@example.com", Phone: "(555) 876-5432",
			MembershipID: "1", JoinDate: daysAgo(now, 20),
			Status: domain.MemberInactive, MemberID: "MEM006", ExpiryDate: at(daysAhead(now, 10)),
		},
	} {
		if err := members.Insert(ctx, &member); err != nil {
			return err
		}
	}

	for _, record := range []domain.Attendance{
		{
			ID: "1", MemberID: "1", MemberName: "Emma Wilson",
			CheckIn: now.Add(-3 * time.Hour), CheckOut: at(now.Add(-1 * time.Hour)), Duration: 120,
		},
		{
			ID: "2", MemberID: "3", MemberName: "Olivia Chen",
			CheckIn: daysAgo(now, 1).Add(-2 * time.Hour), CheckOut: at(daysAgo(now, 1).Add(-30 * time.Minute)), Duration: 90,
		},
		{
			// Currently inside the gym.
			ID: "3", MemberID: "2", MemberName: "James Rodriguez",
			CheckIn: now.Add(-2 * time.Hour),
		},
	} {
		if err := attendance.Insert(ctx, &record); err != nil {
			return err
		}
	}

	for _, owner := range []domain.GymOwner{
		{
			ID: "1", Name: "John Smith", Email: "john@fitnesshub.com", Phone: "(555) 123-4567",
			GymName: "FitnessHub Elite", Location: "New York, NY",
			JoinDate: monthsAgo(now, 6), Status: domain.OwnerActive,
			LastLogin: at(daysAgo(now, 1)), SubscriptionStatus: domain.SubscriptionActive, Revenue: 2499.99,
		},
		{
			ID: "2", Name: "Sarah Johnson", Email: "sarah@powerzone.com", Phone: "(555) 234-5678",
			GymName: "PowerZone Fitness", Location: "Los Angeles, CA",
			JoinDate: monthsAgo(now, 3), Status: domain.OwnerActive,
			LastLogin: at(daysAgo(now, 2)), SubscriptionStatus: domain.SubscriptionActive, Revenue: 1899.99,
		},
		{
			ID: "3", Name: "Mike Williams", Email: "mike@strengthcore.com", Phone: "(555) 345-6789",
			GymName: "StrengthCore Gym", Location: "Chicago, IL",
			JoinDate: daysAgo(now, 15), Status: domain.OwnerActive,
			LastLogin: at(now), SubscriptionStatus: domain.SubscriptionTrial, Revenue: 0,
		},
		{
			ID: "4", Name: "Emily Davis", Email: "emily@fitlife.com", Phone: "(555) 456-7890",
			GymName: "FitLife Center", Location: "Miami, FL",
			JoinDate: monthsAgo(now, 9), Status: domain.OwnerInactive,
			SubscriptionStatus: domain.SubscriptionExpired, Revenue: 3299.99,
		},
	} {
		if err := owners.Insert(ctx, &owner); err != nil {
			return err
		}
	}

	return nil
}
