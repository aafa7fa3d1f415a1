package ports

import "context"

// LoginLimiter throttles repeated failed login attempts per identifier.
type LoginLimiter interface {
	// Blocked reports whether the identifier has exhausted its attempt budget.
	Blocked(ctx context.Context, identifier string) (bool, error)
	// RecordFailure counts one failed attempt against the identifier.
	RecordFailure(ctx context.Context, identifier string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, identifier string) error
}
