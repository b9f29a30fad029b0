// Package sentinel defines shared sentinel errors used across store implementations.
package sentinel

import "errors"

// Store error contract: stores wrap these sentinels with context via fmt.Errorf
// and %w so callers can branch with errors.Is without depending on the backend.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a uniqueness constraint was violated.
	ErrDuplicate = errors.New("duplicate")
)
