package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saiketsystems/user-management-api/internal/core/domain"
	"github.com/saiketsystems/user-management-api/internal/core/ports"
)

// UserHandler serves the /api/users/me routes: the authenticated user's own
// profile, password, and account lifecycle.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type updateProfileRequest struct {
	FullName  string `json:"full_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Age       *int   `json:"age,omitempty"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type deleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    *domain.User `json:"data,omitempty"`
}

// GetProfile returns the authenticated user's own record.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/me [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	id, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetProfile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Success: true, Data: user})
}

// UpdateProfile updates the authenticated user's mutable profile fields.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/users/me [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.UpdateProfile(c.Request().Context(), id, ports.UpdateProfileInput{
		FullName:  req.FullName,
		Email:     req.Email,
		Age:       req.Age,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Success: true,
		Message: "Profile updated successfully",
		Data:    user,
	})
}

// ChangePassword replaces the authenticated user's password after
// re-verifying the current one.
//
// @Summary      Change own password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/users/me/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.users.ChangePassword(c.Request().Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Success: true,
		Message: "Password changed successfully",
	})
}

// DeleteAccount removes the authenticated user's own account. The current
// password must be re-entered as confirmation.
//
// @Summary      Delete own account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteAccountRequest  true  "Password confirmation"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/users/me [delete]
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	id, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req deleteAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.users.DeleteAccount(c.Request().Context(), id, req.Password); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Success: true,
		Message: "Account deleted successfully",
	})
}
