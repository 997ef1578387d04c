package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access forbidden")
	ErrEmptyUpdate        = errors.New("no update data provided")
)

// User models a registered account. The password hash is excluded from JSON
// so it can never leak into a response body or the cache.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Role           string    `json:"role,omitempty"`
	IsActive       *bool     `json:"isActive,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// EffectiveRole returns the role used for authorization decisions,
// defaulting to RoleUser when the record carries none.
func (u *User) EffectiveRole() string {
	if u.Role == "" {
		return RoleUser
	}
	return u.Role
}

// UserPatch is a partial update applied to an existing record.
// Nil fields are left untouched.
type UserPatch struct {
	Name           *string
	Email          *string
	PasswordHash   *string
	ProfilePicture *string
	Role           *string
	IsActive       *bool
}

// Empty reports whether the patch would change nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.PasswordHash == nil &&
		p.ProfilePicture == nil && p.Role == nil && p.IsActive == nil
}
