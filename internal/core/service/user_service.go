package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ebuddy/user-api/internal/core/domain"
	"github.com/ebuddy/user-api/internal/core/ports"
)

// ProfileCache abstracts the read-through cache for point lookups (Redis).
// Implementations are best-effort: an error from Get is treated as a miss
// and Set/Invalidate failures never fail the request.
type ProfileCache interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
	Invalidate(ctx context.Context, id string) error
}

// UserService implements profile retrieval and mutation.
type UserService struct {
	repo  ports.UserRepository
	cache ProfileCache
	log   zerolog.Logger
}

// NewUserService returns a UserService. cache may be nil, in which case
// every read goes to the repository.
func NewUserService(repo ports.UserRepository, cache ProfileCache, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, cache: cache, log: log}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user); err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("failed to cache profile")
		}
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Update merges only the supplied fields onto the existing record and
// refreshes its updated-at stamp. Changing the email re-checks uniqueness
// against the rest of the collection.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Empty() {
		return nil, domain.ErrEmptyUpdate
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrUserNotFound
	}

	if input.Email != nil && *input.Email != existing.Email {
		owner, err := s.repo.FindByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if owner != nil && owner.ID != id {
			return nil, domain.ErrEmailTaken
		}
	}

	patch := domain.UserPatch{
		Name:           input.Name,
		Email:          input.Email,
		ProfilePicture: input.ProfilePicture,
		Role:           input.Role,
		IsActive:       input.IsActive,
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.log.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrUserNotFound
	}

	s.invalidate(ctx, id)
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("failed to invalidate cached profile")
	}
}
