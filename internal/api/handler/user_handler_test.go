package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/saiketsystems/user-management-api/internal/api/middleware"
	"github.com/saiketsystems/user-management-api/internal/core/domain"
	"github.com/saiketsystems/user-management-api/internal/core/ports"
)

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextUsername, "alice")
	c.Set(middleware.ContextRole, domain.RoleUser)
	return c
}

func TestUserHandler_GetProfile(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubUserService{
		getProfileFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "user-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.User{ID: id, Username: "alice", Email: "alice@x.com"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")

	if err := handler.GetProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_GetProfile_NoClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec) // no middleware claims

	err := handler.GetProfile(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubUserService{
		updateProfileFn: func(ctx context.Context, id string, input ports.UpdateProfileInput) (*domain.User, error) {
			if input.FullName != "Alice Cooper" || input.Bio != "Engineer" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: id, Username: "alice", FullName: input.FullName, Bio: input.Bio}, nil
		},
	})

	body := strings.NewReader(`{"full_name":"Alice Cooper","email":"alice@x.com","bio":"Engineer"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/users/me", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")

	if err := handler.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_UpdateProfile_MissingEmail(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubUserService{
		updateProfileFn: func(ctx context.Context, id string, input ports.UpdateProfileInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"full_name":"Alice"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/users/me", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")

	err := handler.UpdateProfile(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_ChangePassword(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubUserService{
		changePasswordFn: func(ctx context.Context, id, current, next string) error {
			if current != "secret1" || next != "newsecret" {
				t.Fatalf("unexpected passwords: %s %s", current, next)
			}
			return nil
		},
	})

	body := strings.NewReader(`{"currentPassword":"secret1","newPassword":"newsecret"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/users/me/password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")

	if err := handler.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_ChangePassword_WrongCurrent(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubUserService{
		changePasswordFn: func(ctx context.Context, id, current, next string) error {
			return domain.ErrInvalidCredentials
		},
	})

	body := strings.NewReader(`{"currentPassword":"wrong","newPassword":"newsecret"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/users/me/password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")

	if err := handler.ChangePassword(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserHandler_DeleteAccount(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubUserService{
		deleteAccountFn: func(ctx context.Context, id, password string) error {
			if password != "secret1" {
				t.Fatalf("unexpected password: %s", password)
			}
			return nil
		},
	})

	body := strings.NewReader(`{"password":"secret1"}`)
	req := httptest.NewRequest(http.MethodDelete, "/api/users/me", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")

	if err := handler.DeleteAccount(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminHandler_ListUsers_Empty(t *testing.T) {
	e := newTestEcho()
	handler := NewAdminHandler(&stubUserService{
		listUsersFn: func(ctx context.Context) ([]*domain.User, error) {
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "admin-1")

	if err := handler.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// An empty collection serializes as [], never null.
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestAdminHandler_DeleteUser_Self(t *testing.T) {
	e := newTestEcho()
	handler := NewAdminHandler(&stubUserService{
		adminDeleteFn: func(ctx context.Context, actorID, targetID string) (*domain.User, error) {
			if actorID != targetID {
				t.Fatalf("expected self-delete, got %s vs %s", actorID, targetID)
			}
			return nil, domain.ErrSelfDeletion
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/users/user-1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	if err := handler.DeleteUser(c); !errors.Is(err, domain.ErrSelfDeletion) {
		t.Fatalf("expected ErrSelfDeletion, got %v", err)
	}
}
