// Package secrets provides password hashing and verification.
//
// Digests are bcrypt: salted, one-way, and compared in constant time by
// CompareHashAndPassword. A malformed digest verifies as a mismatch rather
// than surfacing a distinct error, so callers cannot leak format information.
package secrets

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	dErrors "doorman/pkg/domain-errors"
)

// Hasher hashes and verifies passwords with a configurable bcrypt cost.
type Hasher struct {
	cost int
}

// NewHasher constructs a Hasher. Costs outside bcrypt's valid range fall back
// to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash creates a bcrypt digest of the provided password.
// Each call embeds a fresh random salt, so equal inputs yield distinct digests.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", dErrors.New(dErrors.CodeValidation, "password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeValidation, "password is too long")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not hash password")
	}
	return string(hashed), nil
}

// Verify reports whether password matches digest. Any failure, including a
// malformed digest, yields false: the caller sees a single verification
// outcome regardless of cause.
func (h *Hasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// Cost returns the configured work factor.
func (h *Hasher) Cost() int {
	return h.cost
}
