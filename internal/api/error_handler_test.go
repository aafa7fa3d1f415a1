package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/saiketsystems/user-management-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrAccountDisabled, http.StatusForbidden},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrEmailExists, http.StatusConflict},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrSelfDeletion, http.StatusBadRequest},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{domain.NewValidationError("password must be at least 6 characters"), http.StatusBadRequest},
	}

	for _, tc := range cases {
		code, body := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if body["success"] != false {
			t.Fatalf("%v: expected success=false envelope, got %+v", tc.err, body)
		}
		if body["error"] == "" {
			t.Fatalf("%v: expected error message", tc.err)
		}
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, body := renderError(t, errors.New("mongo: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal details leaked: %+v", body)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if body["error"] != "missing authorization header" {
		t.Fatalf("unexpected message: %+v", body)
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("find user"), domain.ErrUserNotFound)
	code, _ := renderError(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped ErrUserNotFound, got %d", code)
	}
}
