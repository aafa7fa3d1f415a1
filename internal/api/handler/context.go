package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saiketsystems/user-management-api/internal/api/middleware"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. An empty id means the middleware did not run or the token
// carried no identity; either way the request cannot proceed.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.ContextUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
