package ports

import (
	"context"

	"github.com/ebuddy/user-api/internal/core/domain"
)

// UserRepository defines persistence operations for user records.
//
// FindByID and FindByEmail return (nil, nil) when no record matches;
// mutating operations report a missing record as domain.ErrUserNotFound.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}
