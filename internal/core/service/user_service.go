package service

import (
	"context"
	"time"

	"github.com/quynhnga171088/user-management/internal/core/domain"
	"github.com/quynhnga171088/user-management/internal/core/ports"
)

// UserService implements the user CRUD operations exposed behind the
// role-gated endpoints. Access decisions are made upstream by the RBAC
// middleware; this service only enforces data rules.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	now    func() time.Time
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher) *UserService {
	return &UserService{repo: repo, hasher: hasher, now: time.Now}
}

func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create adds a user on behalf of an admin. Unlike self-registration it
// honours an explicit active flag, defaulting to true.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
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

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	now := s.now().UTC()
	return s.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Roles:        roles,
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Update applies a partial update: the password is re-hashed only when a
// new one is supplied, and roles/active are touched only when present.
// An email change to one already taken is rejected by the repository's
// uniqueness constraint.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = domain.NormalizeEmail(in.Email)
	}
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if in.Roles != nil {
		roles, err := domain.ParseRoles(in.Roles)
		if err != nil {
			return nil, err
		}
		user.Roles = roles
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = s.now().UTC()

	return s.repo.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrUserNotFound
	}
	return s.repo.DeleteByID(ctx, id)
}
