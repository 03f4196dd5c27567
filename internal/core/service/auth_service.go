package service

import (
	"context"
	"errors"
	"time"

	"github.com/quynhnga171088/user-management/internal/core/domain"
	"github.com/quynhnga171088/user-management/internal/core/ports"
)

// AuthService implements registration and login. Each call is a single
// atomic sequence: no session state is held between calls, so concurrent
// requests for different subjects never interfere. The only shared state is
// the repository and the signing secret inside the token issuer.
type AuthService struct {
	repo    ports.UserRepository
	hasher  ports.PasswordHasher
	tokens  ports.TokenIssuer
	limiter ports.LoginLimiter
	now     func() time.Time
}

// NewAuthService wires the auth core. limiter may be nil to disable login
// throttling.
func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, limiter ports.LoginLimiter) *AuthService {
	return &AuthService{
		repo:    repo,
		hasher:  hasher,
		tokens:  tokens,
		limiter: limiter,
		now:     time.Now,
	}
}

// Register creates a new identity and returns a freshly minted token.
// The existence check and the insert are not atomic; the repository's
// uniqueness constraint is the backstop, and a duplicate rejected at write
// time surfaces as domain.ErrEmailExists all the same.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	email := domain.NormalizeEmail(in.Email)

	roles, err := domain.ParseRoles(in.Roles)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		roles = []domain.Role{domain.RoleUser}
	}

	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailExists
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Roles:        roles,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.mint(created)
}

// Login verifies an email/password pair and mints a token on success.
// Unknown email, wrong password and inactive account all yield the same
// domain.ErrInvalidCredentials so error responses cannot be used to
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = domain.NormalizeEmail(email)

	if s.limiter != nil {
		// Limiter failures don't block logins: a throttle outage must not
		// take authentication down with it.
		if blocked, err := s.limiter.TooMany(ctx, email); err == nil && blocked {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, s.failLogin(ctx, email)
		}
		return nil, err
	}

	if !user.Active || !s.hasher.Verify(password, user.PasswordHash) {
		return nil, s.failLogin(ctx, email)
	}

	if s.limiter != nil {
		_ = s.limiter.Reset(ctx, email)
	}

	return s.mint(user)
}

func (s *AuthService) failLogin(ctx context.Context, email string) error {
	if s.limiter != nil {
		_ = s.limiter.RecordFailure(ctx, email)
	}
	return domain.ErrInvalidCredentials
}

func (s *AuthService) mint(user *domain.User) (*ports.AuthResult, error) {
	token, err := s.tokens.Issue(user.Email, user.Roles, s.now().UTC())
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{
		Token: token,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.PrimaryRole()),
	}, nil
}
