package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ebuddy/user-api/internal/core/domain"
	"github.com/ebuddy/user-api/internal/core/ports"
)

// UserHandler handles the authenticated profile endpoints.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns every user record.
//
// @Summary      Fetch all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      401  {object}  apiResponse
// @Router       /fetch-user-data [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respondOK(c, http.StatusOK, users, "Users fetched successfully")
}

// Get returns a single user by id.
//
// @Summary      Fetch a user by ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  apiResponse
// @Failure      401  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return respondError(c, http.StatusNotFound, "User not found", "not_found")
		}
		return err
	}
	return respondOK(c, http.StatusOK, user, "User fetched successfully")
}

// Update merges the supplied fields onto an existing user.
//
// @Summary      Update user data
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Failure      401   {object}  apiResponse
// @Failure      404   {object}  apiResponse
// @Failure      409   {object}  apiResponse
// @Router       /update-user-data/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload", "validation")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error(), "validation")
	}

	user, err := h.userService.Update(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyUpdate):
			return respondError(c, http.StatusBadRequest, "No update data provided", "validation")
		case errors.Is(err, domain.ErrUserNotFound):
			return respondError(c, http.StatusNotFound, "User not found", "not_found")
		case errors.Is(err, domain.ErrEmailTaken):
			return respondError(c, http.StatusConflict, "Email already in use by another user", "conflict")
		}
		return err
	}
	return respondOK(c, http.StatusOK, user, "User updated successfully")
}

// Delete removes a user record.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  apiResponse
// @Failure      401  {object}  apiResponse
// @Failure      403  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return respondError(c, http.StatusNotFound, "User not found", "not_found")
		}
		return err
	}
	return respondOK(c, http.StatusOK, nil, "User deleted successfully")
}
