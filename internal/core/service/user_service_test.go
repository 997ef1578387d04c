package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ebuddy/user-api/internal/core/domain"
	"github.com/ebuddy/user-api/internal/core/ports"
)

type stubCache struct {
	entries     map[string]*domain.User
	invalidated []string
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]*domain.User)}
}

func (c *stubCache) Get(_ context.Context, id string) (*domain.User, error) {
	return cloneUser(c.entries[id]), nil
}

func (c *stubCache) Set(_ context.Context, user *domain.User) error {
	c.entries[user.ID] = cloneUser(user)
	return nil
}

func (c *stubCache) Invalidate(_ context.Context, id string) error {
	delete(c.entries, id)
	c.invalidated = append(c.invalidated, id)
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo, name, email, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func strPtr(s string) *string { return &s }

func TestUserService_Get_Found(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "Ann", "ann@x.com", "pw")
	svc := NewUserService(repo, nil, zerolog.Nop())

	user, err := svc.Get(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if user.Email != "ann@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), nil, zerolog.Nop())

	if _, err := svc.Get(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Get_PopulatesCache(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "Ann", "ann@x.com", "pw")
	cache := newStubCache()
	svc := NewUserService(repo, cache, zerolog.Nop())

	if _, err := svc.Get(context.Background(), seeded.ID); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if cache.entries[seeded.ID] == nil {
		t.Fatalf("expected profile to be cached after a miss")
	}
}

func TestUserService_Get_ServesFromCache(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubCache()
	cache.entries["cached-id"] = &domain.User{ID: "cached-id", Name: "Cached", Email: "cached@x.com"}
	svc := NewUserService(repo, cache, zerolog.Nop())

	user, err := svc.Get(context.Background(), "cached-id")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if user.Name != "Cached" {
		t.Fatalf("expected the cached profile, got %+v", user)
	}
}

func TestUserService_Update_MergesFields(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "Ann", "ann@x.com", "pw")
	svc := NewUserService(repo, nil, zerolog.Nop())

	time.Sleep(5 * time.Millisecond)

	updated, err := svc.Update(context.Background(), seeded.ID, ports.UpdateUserInput{Name: strPtr("Annie")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Annie" {
		t.Fatalf("expected name to change, got %q", updated.Name)
	}
	if updated.Email != "ann@x.com" {
		t.Fatalf("expected email to be untouched, got %q", updated.Email)
	}
	if !updated.UpdatedAt.After(seeded.UpdatedAt) {
		t.Fatalf("expected updated-at to advance")
	}
}

func TestUserService_Update_Empty(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), nil, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "any", ports.UpdateUserInput{}); err != domain.ErrEmptyUpdate {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), nil, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateUserInput{Name: strPtr("x")}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_EmailConflict(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "Ann", "ann@x.com", "pw")
	bob := seedUser(t, repo, "Bob", "bob@x.com", "pw")
	svc := NewUserService(repo, nil, zerolog.Nop())

	if _, err := svc.Update(context.Background(), bob.ID, ports.UpdateUserInput{Email: strPtr("ann@x.com")}); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Update_SameEmailAllowed(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "Ann", "ann@x.com", "pw")
	svc := NewUserService(repo, nil, zerolog.Nop())

	updated, err := svc.Update(context.Background(), seeded.ID, ports.UpdateUserInput{
		Name:  strPtr("Annie"),
		Email: strPtr("ann@x.com"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Annie" {
		t.Fatalf("expected name to change, got %q", updated.Name)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "Ann", "ann@x.com", "old-pw")
	svc := NewUserService(repo, nil, zerolog.Nop())

	updated, err := svc.Update(context.Background(), seeded.ID, ports.UpdateUserInput{Password: strPtr("new-pw")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.PasswordHash == "new-pw" {
		t.Fatalf("expected the new password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-pw")); err != nil {
		t.Fatalf("stored hash does not match the new password: %v", err)
	}
}

func TestUserService_Update_InvalidatesCache(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "Ann", "ann@x.com", "pw")
	cache := newStubCache()
	cache.entries[seeded.ID] = cloneUser(seeded)
	svc := NewUserService(repo, cache, zerolog.Nop())

	if _, err := svc.Update(context.Background(), seeded.ID, ports.UpdateUserInput{Name: strPtr("Annie")}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != seeded.ID {
		t.Fatalf("expected cache invalidation for %q, got %v", seeded.ID, cache.invalidated)
	}
}

func TestUserService_Delete_Success(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "Ann", "ann@x.com", "pw")
	cache := newStubCache()
	svc := NewUserService(repo, cache, zerolog.Nop())

	if err := svc.Delete(context.Background(), seeded.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if remaining, _ := repo.FindByID(context.Background(), seeded.ID); remaining != nil {
		t.Fatalf("expected the record to be gone")
	}
	if len(cache.invalidated) != 1 {
		t.Fatalf("expected cache invalidation, got %v", cache.invalidated)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), nil, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
