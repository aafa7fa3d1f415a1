package ports

import (
	"context"

	"github.com/saiketsystems/user-management-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// Uniqueness of username and email is enforced by the storage layer itself
// (unique indexes); a losing concurrent writer gets domain.ErrUserExists.
type UserRepository interface {
	// FindByIdentifier matches either the username or the email.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update writes the full account record, including role and is_active.
	// Reserved for admin operations.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateProfile writes only the self-service fields (full name, email,
	// age, bio, avatar). Role and is_active are never touched, so a profile
	// update cannot overwrite a concurrent admin change.
	UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.User, error)
	Stats(ctx context.Context) (*domain.UserStats, error)
}
