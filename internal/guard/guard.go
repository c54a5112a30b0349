// Package guard holds the navigation access-control policy. Given the
// session state and the requested view it decides whether the client may
// render the view, must be redirected, or has to wait for the session to
// finish restoring. It makes no mutation of its own; the API layer asks
// for a decision on every navigation.
package guard

import (
	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/service"
)

// View identifies a navigable view of the web client.
type View string

const (
	// Public views
	ViewLanding View = "landing"
	ViewSignIn  View = "signin"
	ViewSignUp  View = "signup"

	// Gym owner views
	ViewDashboard      View = "dashboard"
	ViewMembers        View = "members"
	ViewMemberDetails  View = "member-details"
	ViewAddMember      View = "add-member"
	ViewAddTrainer     View = "add-trainer"
	ViewTrainerDetails View = "trainer-details"
	ViewMemberships    View = "memberships"
	ViewCreatePlan     View = "create-plan"
	ViewAttendance     View = "attendance"
	ViewDueDates       View = "due-dates"

	// Admin console views
	ViewAdminHome   View = "admin-home"
	ViewGymOwners   View = "gym-owners"
	ViewAddGymOwner View = "add-gym-owner"

	// Customer portal views
	ViewCustomerHome       View = "customer-home"
	ViewCustomerAttendance View = "customer-attendance"
	ViewCustomerProfile    View = "customer-profile"
)

// Action is the kind of decision the guard makes.
type Action string

const (
	ActionAllow    Action = "allow"
	ActionRedirect Action = "redirect"
	ActionPending  Action = "pending"
)

// Decision is the guard's answer for one requested view. Target is set
// only when Action is ActionRedirect.
type Decision struct {
	Action Action `json:"action"`
	Target View   `json:"target,omitempty"`
}

var allow = Decision{Action: ActionAllow}

func redirectTo(view View) Decision {
	return Decision{Action: ActionRedirect, Target: view}
}

// Known reports whether the view is one the router serves.
func Known(view View) bool {
	switch view {
	case ViewLanding, ViewSignIn, ViewSignUp,
		ViewDashboard, ViewMembers, ViewMemberDetails, ViewAddMember,
		ViewAddTrainer, ViewTrainerDetails, ViewMemberships, ViewCreatePlan,
		ViewAttendance, ViewDueDates,
		ViewAdminHome, ViewGymOwners, ViewAddGymOwner,
		ViewCustomerHome, ViewCustomerAttendance, ViewCustomerProfile:
		return true
	}
	return false
}

// Public reports whether the view is reachable without authentication.
func Public(view View) bool {
	return view == ViewLanding || view == ViewSignIn || view == ViewSignUp
}

// OwnerArea reports whether the view belongs to the gym owner console.
func OwnerArea(view View) bool {
	switch view {
	case ViewDashboard, ViewMembers, ViewMemberDetails, ViewAddMember,
		ViewAddTrainer, ViewTrainerDetails, ViewMemberships, ViewCreatePlan,
		ViewAttendance, ViewDueDates:
		return true
	}
	return false
}

// AdminArea reports whether the view belongs to the admin console.
func AdminArea(view View) bool {
	return view == ViewAdminHome || view == ViewGymOwners || view == ViewAddGymOwner
}

// CustomerArea reports whether the view belongs to the customer portal.
func CustomerArea(view View) bool {
	return view == ViewCustomerHome || view == ViewCustomerAttendance || view == ViewCustomerProfile
}

// HomeView returns the view a role lands on after sign-in.
func HomeView(role domain.Role) View {
	switch role {
	case domain.RoleAdmin:
		return ViewAdminHome
	case domain.RoleCustomer:
		return ViewCustomerHome
	default:
		return ViewDashboard
	}
}

// Decide applies the navigation policy:
//
//  1. While the session is still restoring, no decision is made yet.
//  2. Unauthenticated requests for protected views go to sign-in.
//  3. Authenticated users never see sign-in/sign-up again; they are sent
//     to their role's home view.
//  4. Admins are kept out of the owner and customer areas, customers out
//     of everything but the customer portal, gym owners out of the
//     customer portal. The landing page stays reachable for everyone.
func Decide(state service.SessionState, role domain.Role, view View) Decision {
	if state == service.SessionPending {
		return Decision{Action: ActionPending}
	}

	if state != service.SessionAuthenticated {
		if Public(view) {
			return allow
		}
		return redirectTo(ViewSignIn)
	}

	if view == ViewSignIn || view == ViewSignUp {
		return redirectTo(HomeView(role))
	}

	switch role {
	case domain.RoleAdmin:
		if OwnerArea(view) || CustomerArea(view) {
			return redirectTo(ViewAdminHome)
		}
	case domain.RoleCustomer:
		if !CustomerArea(view) && view != ViewLanding {
			return redirectTo(ViewCustomerHome)
		}
	case domain.RoleClient:
		if CustomerArea(view) {
			return redirectTo(ViewDashboard)
		}
	}

	return allow
}
