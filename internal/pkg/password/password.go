// Package password wraps bcrypt salted hashing behind a small Hasher whose
// work factor is fixed at construction from configuration.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher produces and verifies salted password hashes.
type Hasher struct {
	cost int
}

// NewHasher builds a Hasher with the given bcrypt cost. Costs outside the
// bcrypt range fall back to the library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted one-way hash of plaintext. Each call embeds a fresh
// random salt, so two hashes of the same plaintext differ.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed
// stored record is returned as an error; a plain mismatch is (false, nil).
func (h *Hasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch err {
	case nil:
		return true, nil
	case bcrypt.ErrMismatchedHashAndPassword:
		return false, nil
	default:
		return false, fmt.Errorf("verify password: %w", err)
	}
}
