package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/repository"
	"zim/gym-app/internal/repository/sqlite"
)

const testJWTSecret = "test-secret"

// memorySessionRepo is a minimal in-process session record.
type memorySessionRepo struct {
	stored *domain.Identity
}

func (r *memorySessionRepo) Save(_ context.Context, identity *domain.Identity) error {
	copied := *identity
	r.stored = &copied
	return nil
}

func (r *memorySessionRepo) Load(_ context.Context) (*domain.Identity, error) {
	if r.stored == nil {
		return nil, repository.ErrNotFound
	}
	copied := *r.stored
	return &copied, nil
}

func (r *memorySessionRepo) Clear(_ context.Context) error {
	r.stored = nil
	return nil
}

func newTestAuthService(repo repository.SessionRepository) AuthService {
	return NewAuthService(repo, testJWTSecret, 0, 0)
}

func TestLoginDerivesRoleFromEmail(t *testing.T) {
	cases := []struct {
		email string
		want  domain.Role
	}{
		{"admin@example.com", domain.RoleAdmin},
		{"customer@example.com", domain.RoleCustomer},
		{"owner@gym.com", domain.RoleClient},
		{"Admin@example.com", domain.RoleClient}, // exact match only
	}
	for _, tc := range cases {
		svc := newTestAuthService(&memorySessionRepo{})
		identity, err := svc.Login(context.Background(), tc.email, "password")
		if err != nil {
			t.Fatalf("Login(%q): %v", tc.email, err)
		}
		if identity.Role != tc.want {
			t.Errorf("Login(%q) role = %s, want %s", tc.email, identity.Role, tc.want)
		}
		if identity.Avatar == "" {
			t.Errorf("Login(%q) produced no avatar", tc.email)
		}
	}
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&memorySessionRepo{})

	if _, err := svc.Login(context.Background(), "", "password"); !errors.Is(err, ErrCredentialsRequired) {
		t.Errorf("empty email: got %v, want ErrCredentialsRequired", err)
	}
	if _, err := svc.Login(context.Background(), "a@b.com", ""); !errors.Is(err, ErrCredentialsRequired) {
		t.Errorf("empty password: got %v, want ErrCredentialsRequired", err)
	}
	if svc.State() == SessionAuthenticated {
		t.Error("rejected login left the session authenticated")
	}
}

func TestSignupCreatesGymOwner(t *testing.T) {
	svc := newTestAuthService(&memorySessionRepo{})

	identity, err := svc.Signup(context.Background(), "Jane", "jane@gym.com", "secret")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if identity.Role != domain.RoleClient {
		t.Errorf("signup role = %s, want %s", identity.Role, domain.RoleClient)
	}
	if identity.Name != "Jane" {
		t.Errorf("signup name = %q, want Jane", identity.Name)
	}

	if _, err := svc.Signup(context.Background(), "", "jane@gym.com", "secret"); !errors.Is(err, ErrNameRequired) {
		t.Errorf("empty name: got %v, want ErrNameRequired", err)
	}
}

func TestLoginReplacesPreviousSession(t *testing.T) {
	repo := &memorySessionRepo{}
	svc := newTestAuthService(repo)

	if _, err := svc.Login(context.Background(), "first@gym.com", "pw"); err != nil {
		t.Fatalf("first login: %v", err)
	}
	if _, err := svc.Login(context.Background(), "admin@example.com", "pw"); err != nil {
		t.Fatalf("second login: %v", err)
	}

	current := svc.Current()
	if current == nil || current.Email != "admin@example.com" {
		t.Fatalf("current = %+v, want the second login", current)
	}
	if repo.stored == nil || repo.stored.Email != "admin@example.com" {
		t.Fatalf("stored record = %+v, want the second login", repo.stored)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	repo := &memorySessionRepo{}
	svc := newTestAuthService(repo)

	if _, err := svc.Login(context.Background(), "owner@gym.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if svc.Current() != nil {
		t.Error("Current() is non-nil after logout")
	}
	if svc.State() != SessionUnauthenticated {
		t.Errorf("state = %s, want unauthenticated", svc.State())
	}
	if repo.stored != nil {
		t.Error("durable record survived logout")
	}
}

func TestRestoreWithoutRecord(t *testing.T) {
	svc := newTestAuthService(&memorySessionRepo{})

	identity, err := svc.Restore(context.Background())
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if identity != nil {
		t.Fatalf("Restore returned %+v, want nil", identity)
	}
	if svc.State() != SessionUnauthenticated {
		t.Errorf("state = %s, want unauthenticated", svc.State())
	}
}

// TestRestoreAcrossProcesses simulates a restart: a second service over
// the same SQLite file adopts the identity the first one persisted.
func TestRestoreAcrossProcesses(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "session.db")

	db, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	first := newTestAuthService(sqlite.NewSessionRepository(db))
	logged, err := first.Login(context.Background(), "owner@gym.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	db2, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer db2.Close()

	second := newTestAuthService(sqlite.NewSessionRepository(db2))
	if second.State() != SessionPending {
		t.Fatalf("fresh store state = %s, want pending", second.State())
	}

	restored, err := second.Restore(context.Background())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored == nil {
		t.Fatal("restore found no record")
	}
	if restored.ID != logged.ID || restored.Email != logged.Email || restored.Role != logged.Role {
		t.Errorf("restored = %+v, want %+v", restored, logged)
	}
	if second.State() != SessionAuthenticated {
		t.Errorf("state after restore = %s, want authenticated", second.State())
	}
}

func TestIssueTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&memorySessionRepo{})
	identity, err := svc.Login(context.Background(), "owner@gym.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	token, err := svc.IssueToken(identity)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if token == "" {
		t.Fatal("IssueToken returned an empty token")
	}
}
