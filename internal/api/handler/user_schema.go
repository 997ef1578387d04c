package handler

import (
	"github.com/ebuddy/user-api/internal/core/domain"
	"github.com/ebuddy/user-api/internal/core/ports"
)

// apiResponse is the envelope every endpoint returns: successes carry the
// payload in data, failures carry a null data plus a stable error kind.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// --- Request types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	// Role is an open string set; unknown values are stored as-is.
	Role string `json:"role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	Name           *string `json:"name,omitempty"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Password       *string `json:"password,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	Role           *string `json:"role,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

// --- Response types ---

// authData is the payload returned by login and registration.
type authData struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// --- Mappers ---

func toUpdateInput(req updateUserRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
		Role:           req.Role,
		IsActive:       req.IsActive,
	}
}
