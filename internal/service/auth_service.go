package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrCredentialsRequired = errors.New("email and password cannot be empty")
	ErrNameRequired        = errors.New("name cannot be empty")
	ErrTokenGeneration     = errors.New("failed to generate authentication token")
)

// SessionState describes the session store's lifecycle.
type SessionState string

const (
	// SessionPending is the startup state before Restore has run; route
	// decisions are deferred while in it.
	SessionPending         SessionState = "pending"
	SessionUnauthenticated SessionState = "unauthenticated"
	SessionAuthenticating  SessionState = "authenticating"
	SessionAuthenticated   SessionState = "authenticated"
)

// Well-known addresses used to derive the role at login. There is no
// credential verification: any non-empty email/password pair signs in.
const (
	adminEmail    = "admin@example.com"
	customerEmail = "customer@example.com"
)

// AuthService owns the single current Identity and the login, signup,
// logout and restore protocol. It is the sole authority for whether a
// user is authenticated and what role they have.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.Identity, error)
	Signup(ctx context.Context, name, email, password string) (*domain.Identity, error)
	Logout(ctx context.Context) error
	// Restore adopts the durable session record, if any, as the current
	// Identity. It is invoked once at process start and returns nil when
	// no record is stored.
	Restore(ctx context.Context) (*domain.Identity, error)
	Current() *domain.Identity
	State() SessionState
	// IssueToken signs a bearer token carrying the identity for the HTTP
	// collaborator.
	IssueToken(identity *domain.Identity) (string, error)
	GetJWTSecret() string
}

// --- Service Implementation ---

type authService struct {
	sessionRepo   repository.SessionRepository
	jwtSecret     string
	jwtExpiration time.Duration
	loginDelay    time.Duration // simulated network latency, may be zero

	mu      sync.RWMutex
	state   SessionState
	current *domain.Identity
}

// NewAuthService creates a session store in the pending state; callers
// run Restore before serving traffic.
func NewAuthService(sessionRepo repository.SessionRepository, jwtSecret string, jwtExpiration, loginDelay time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour * 1
	}
	return &authService{
		sessionRepo:   sessionRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		loginDelay:    loginDelay,
		state:         SessionPending,
	}
}

// deriveRole maps an email address to a role. Exact matches pick the
// admin and customer demo accounts; everyone else is a gym owner.
func deriveRole(email string) domain.Role {
	switch email {
	case adminEmail:
		return domain.RoleAdmin
	case customerEmail:
		return domain.RoleCustomer
	default:
		return domain.RoleClient
	}
}

func displayName(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return "Admin User"
	case domain.RoleCustomer:
		return "Customer User"
	default:
		return "Client User"
	}
}

// Login authenticates with the simulated protocol: any non-empty pair is
// accepted and the role is derived from the email alone. The resulting
// Identity replaces whatever session record existed before.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	if email == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	s.setState(SessionAuthenticating)

	if err := s.simulateLatency(ctx); err != nil {
		s.setState(SessionUnauthenticated)
		return nil, err
	}

	role := deriveRole(email)
	name := displayName(role)
	identity := &domain.Identity{
		ID:     uuid.NewString(),
		Name:   name,
		Email:  email,
		Role:   role,
		Avatar: domain.DefaultAvatarURL(name),
	}

	return s.adopt(ctx, identity)
}

// Signup creates a fresh gym owner account. There is no uniqueness check
// against existing accounts; it always succeeds for non-empty input.
func (s *authService) Signup(ctx context.Context, name, email, password string) (*domain.Identity, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if email == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	s.setState(SessionAuthenticating)

	if err := s.simulateLatency(ctx); err != nil {
		s.setState(SessionUnauthenticated)
		return nil, err
	}

	identity := &domain.Identity{
		ID:     uuid.NewString(),
		Name:   name,
		Email:  email,
		Role:   domain.RoleClient,
		Avatar: domain.DefaultAvatarURL(name),
	}

	return s.adopt(ctx, identity)
}

// adopt persists the identity as the durable record and makes it current.
// A persistence failure leaves the store unauthenticated.
func (s *authService) adopt(ctx context.Context, identity *domain.Identity) (*domain.Identity, error) {
	if err := s.sessionRepo.Save(ctx, identity); err != nil {
		s.setState(SessionUnauthenticated)
		return nil, err
	}

	s.mu.Lock()
	s.current = identity
	s.state = SessionAuthenticated
	s.mu.Unlock()

	copied := *identity
	return &copied, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessionRepo.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = nil
	s.state = SessionUnauthenticated
	s.mu.Unlock()
	return nil
}

func (s *authService) Restore(ctx context.Context) (*domain.Identity, error) {
	identity, err := s.sessionRepo.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.setState(SessionUnauthenticated)
			return nil, nil
		}
		return nil, err
	}

	// Adopted as-is, without re-validating credentials.
	s.mu.Lock()
	s.current = identity
	s.state = SessionAuthenticated
	s.mu.Unlock()

	copied := *identity
	return &copied, nil
}

func (s *authService) Current() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

func (s *authService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *authService) setState(state SessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// simulateLatency waits for the configured artificial delay, honoring
// context cancellation. A zero delay returns immediately.
func (s *authService) simulateLatency(ctx context.Context) error {
	if s.loginDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.loginDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// --- JWT Helper ---

// identityClaims is the token payload the API layer round-trips.
type identityClaims struct {
	UserID string      `json:"uid"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	Avatar string      `json:"avatar,omitempty"`
	jwt.RegisteredClaims
}

func (s *authService) IssueToken(identity *domain.Identity) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &identityClaims{
		UserID: identity.ID,
		Name:   identity.Name,
		Email:  identity.Email,
		Role:   identity.Role,
		Avatar: identity.Avatar,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "gym-app",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", ErrTokenGeneration
	}
	return signedToken, nil
}

// GetJWTSecret returns the JWT secret for middleware authentication
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
