package ports

import (
	"context"

	"github.com/quynhnga171088/user-management/internal/core/domain"
)

// CreateUserInput is the admin-initiated user creation payload.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Roles    []string
	Active   *bool
}

// UpdateUserInput is a partial update: nil or empty fields keep the stored
// value. Password is re-hashed only when non-empty.
type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
	Roles    []string
	Active   *bool
}

// UserService implements the role-gated user CRUD operations.
type UserService interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
