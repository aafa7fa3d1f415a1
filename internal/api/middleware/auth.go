package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/saiketsystems/user-management-api/internal/api/metrics"
	"github.com/saiketsystems/user-management-api/internal/pkg/token"
)

// Echo context keys populated by Auth for downstream handlers.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"
)

// Auth extracts and verifies the bearer token, then injects the resolved
// claims into the request context. Missing, malformed, expired, or tampered
// tokens all yield 401.
func Auth(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verifyResult(err)).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUsername, claims.Username)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}
	}
}

func verifyResult(err error) string {
	switch {
	case errors.Is(err, token.ErrExpired):
		return "expired"
	case errors.Is(err, token.ErrInvalidSignature):
		return "invalid_signature"
	default:
		return "malformed"
	}
}
