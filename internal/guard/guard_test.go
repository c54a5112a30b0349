package guard

import (
	"testing"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/service"
)

func TestDecidePendingSession(t *testing.T) {
	for _, view := range []View{ViewLanding, ViewSignIn, ViewDashboard, ViewAdminHome} {
		got := Decide(service.SessionPending, "", view)
		if got.Action != ActionPending {
			t.Fatalf("Decide(pending, %q) = %+v, want pending", view, got)
		}
	}
}

func TestDecideUnauthenticated(t *testing.T) {
	cases := []struct {
		view View
		want Decision
	}{
		{ViewLanding, Decision{Action: ActionAllow}},
		{ViewSignIn, Decision{Action: ActionAllow}},
		{ViewSignUp, Decision{Action: ActionAllow}},
		{ViewDashboard, Decision{Action: ActionRedirect, Target: ViewSignIn}},
		{ViewMembers, Decision{Action: ActionRedirect, Target: ViewSignIn}},
		{ViewAdminHome, Decision{Action: ActionRedirect, Target: ViewSignIn}},
		{ViewCustomerHome, Decision{Action: ActionRedirect, Target: ViewSignIn}},
	}
	for _, tc := range cases {
		got := Decide(service.SessionUnauthenticated, "", tc.view)
		if got != tc.want {
			t.Errorf("Decide(unauthenticated, %q) = %+v, want %+v", tc.view, got, tc.want)
		}
	}
}

func TestDecideAuthRedirectsFromSignInViews(t *testing.T) {
	cases := []struct {
		role domain.Role
		want View
	}{
		{domain.RoleClient, ViewDashboard},
		{domain.RoleAdmin, ViewAdminHome},
		{domain.RoleCustomer, ViewCustomerHome},
	}
	for _, tc := range cases {
		for _, view := range []View{ViewSignIn, ViewSignUp} {
			got := Decide(service.SessionAuthenticated, tc.role, view)
			want := Decision{Action: ActionRedirect, Target: tc.want}
			if got != want {
				t.Errorf("Decide(authenticated, %s, %q) = %+v, want %+v", tc.role, view, got, want)
			}
		}
	}
}

func TestDecideRoleAreas(t *testing.T) {
	cases := []struct {
		name string
		role domain.Role
		view View
		want Decision
	}{
		{"owner reaches dashboard", domain.RoleClient, ViewDashboard, Decision{Action: ActionAllow}},
		{"owner reaches attendance", domain.RoleClient, ViewAttendance, Decision{Action: ActionAllow}},
		{"owner reaches landing", domain.RoleClient, ViewLanding, Decision{Action: ActionAllow}},
		{"owner kept out of portal", domain.RoleClient, ViewCustomerProfile, Decision{Action: ActionRedirect, Target: ViewDashboard}},

		{"admin reaches console", domain.RoleAdmin, ViewGymOwners, Decision{Action: ActionAllow}},
		{"admin reaches landing", domain.RoleAdmin, ViewLanding, Decision{Action: ActionAllow}},
		{"admin kept out of owner area", domain.RoleAdmin, ViewDashboard, Decision{Action: ActionRedirect, Target: ViewAdminHome}},
		{"admin kept out of portal", domain.RoleAdmin, ViewCustomerAttendance, Decision{Action: ActionRedirect, Target: ViewAdminHome}},

		{"customer reaches portal", domain.RoleCustomer, ViewCustomerAttendance, Decision{Action: ActionAllow}},
		{"customer reaches landing", domain.RoleCustomer, ViewLanding, Decision{Action: ActionAllow}},
		{"customer kept out of owner area", domain.RoleCustomer, ViewMembers, Decision{Action: ActionRedirect, Target: ViewCustomerHome}},
		{"customer kept out of admin console", domain.RoleCustomer, ViewAdminHome, Decision{Action: ActionRedirect, Target: ViewCustomerHome}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decide(service.SessionAuthenticated, tc.role, tc.view)
			if got != tc.want {
				t.Fatalf("Decide(authenticated, %s, %q) = %+v, want %+v", tc.role, tc.view, got, tc.want)
			}
		})
	}
}

func TestKnownViews(t *testing.T) {
	if Known(View("no-such-view")) {
		t.Error("Known accepted an unknown view")
	}
	if !Known(ViewDueDates) {
		t.Error("Known rejected due-dates")
	}
}
