package domain

import "errors"

// Sentinel errors returned by the service layer. The transport layer maps
// each one to a fixed HTTP status code; anything else is a 500.
var (
	// ErrInvalidCredentials deliberately covers both an unknown identifier
	// and a wrong password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account is deactivated")
	ErrUserExists         = errors.New("username or email already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrSelfDeletion       = errors.New("cannot delete your own account")
	ErrTooManyAttempts    = errors.New("too many login attempts, try again later")
)

// ValidationError carries a field-level message safe to show to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}
