package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Index serves GET /api — a machine-readable catalog of the API surface.
func Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": "User Management API",
		"version": "1.0.0",
		"endpoints": map[string]any{
			"public": map[string]string{
				"register": "POST /api/auth/register",
				"login":    "POST /api/auth/login",
				"logout":   "POST /api/auth/logout",
			},
			"protected": map[string]string{
				"getProfile":     "GET /api/users/me",
				"updateProfile":  "PUT /api/users/me",
				"changePassword": "PUT /api/users/me/password",
				"deleteAccount":  "DELETE /api/users/me",
				"getAllUsers":    "GET /api/users (admin only)",
				"getUserById":    "GET /api/users/:id (admin only)",
				"updateUser":     "PUT /api/users/:id (admin only)",
				"deleteUser":     "DELETE /api/users/:id (admin only)",
				"stats":          "GET /api/stats (admin only)",
			},
		},
	})
}
