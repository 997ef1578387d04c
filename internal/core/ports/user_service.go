package ports

import (
	"context"

	"github.com/ebuddy/user-api/internal/core/domain"
)

// UpdateUserInput is a partial profile update. Nil fields are not touched.
// Password, when present, is the new plaintext secret and is hashed by the
// service before it reaches the repository.
type UpdateUserInput struct {
	Name           *string
	Email          *string
	Password       *string
	ProfilePicture *string
	Role           *string
	IsActive       *bool
}

// Empty reports whether the update carries no fields at all.
func (in UpdateUserInput) Empty() bool {
	return in.Name == nil && in.Email == nil && in.Password == nil &&
		in.ProfilePicture == nil && in.Role == nil && in.IsActive == nil
}

// UserService defines profile use cases behind the authenticated endpoints.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
