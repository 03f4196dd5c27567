package ports

import (
	"context"

	"github.com/quynhnga171088/user-management/internal/core/domain"
)

// UserRepository defines the persistence contract for identities.
// Implementations must enforce email uniqueness at write time; a duplicate
// insert surfaces as domain.ErrEmailExists so concurrent registrations for
// the same email cannot both succeed.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteByID(ctx context.Context, id string) error
}
