package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 50
	MinPasswordLen = 6
)

// User models a registered identity capable of authenticating.
// PasswordHash is never serialized outward.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Age          *int      `json:"age,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserStats aggregates account figures for the admin dashboard.
type UserStats struct {
	TotalUsers  int64    `json:"totalUsers"`
	TotalAdmins int64    `json:"totalAdmins"`
	ActiveUsers int64    `json:"activeUsers"`
	AverageAge  *float64 `json:"averageAge"`
}
