package ports

import (
	"context"

	"github.com/saiketsystems/user-management-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Age      *int
	Bio      string
}

// UpdateProfileInput carries the mutable profile fields a user may change
// on their own account.
type UpdateProfileInput struct {
	FullName  string
	Email     string
	Age       *int
	Bio       string
	AvatarURL string
}

// AdminUpdateInput extends profile updates with the admin-only fields.
type AdminUpdateInput struct {
	FullName string
	Email    string
	Age      *int
	Bio      string
	Role     string
	IsActive *bool
}

// UserService orchestrates registration, login, and account lifecycle.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
	GetProfile(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, id, password string) error

	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	AdminUpdateUser(ctx context.Context, id string, input AdminUpdateInput) (*domain.User, error)
	AdminDeleteUser(ctx context.Context, actorID, targetID string) (*domain.User, error)
	Stats(ctx context.Context) (*domain.UserStats, error)
}
