package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saiketsystems/user-management-api/internal/core/domain"
	"github.com/saiketsystems/user-management-api/internal/core/ports"
)

// AdminHandler serves the admin-only user management routes. All of them sit
// behind Auth plus RequireRole(admin) in the router.
type AdminHandler struct {
	users ports.UserService
}

func NewAdminHandler(users ports.UserService) *AdminHandler {
	return &AdminHandler{users: users}
}

type adminUpdateRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Age      *int   `json:"age,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type userListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Data    []*domain.User `json:"data"`
}

type statsResponse struct {
	Success bool              `json:"success"`
	Stats   *domain.UserStats `json:"stats"`
}

// ListUsers returns every user, newest first.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, userListResponse{
		Success: true,
		Count:   len(users),
		Data:    users,
	})
}

// GetUser returns a single user by id.
//
// @Summary      Get user by id
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [get]
func (h *AdminHandler) GetUser(c echo.Context) error {
	user, err := h.users.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Success: true, Data: user})
}

// UpdateUser updates any user's profile, role, and active flag.
//
// @Summary      Update user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "User id"
// @Param        body  body      adminUpdateRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var req adminUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.AdminUpdateUser(c.Request().Context(), c.Param("id"), ports.AdminUpdateInput{
		FullName: req.FullName,
		Email:    req.Email,
		Age:      req.Age,
		Bio:      req.Bio,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Success: true,
		Message: "User updated successfully",
		Data:    user,
	})
}

// DeleteUser removes another user's account. Deleting your own account
// through this route is rejected.
//
// @Summary      Delete user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.users.AdminDeleteUser(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Success: true,
		Message: "User deleted successfully",
		Data:    user,
	})
}

// Stats returns aggregate account figures.
//
// @Summary      Account statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.users.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statsResponse{Success: true, Stats: stats})
}
