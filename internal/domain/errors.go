package domain

import "errors"

// Sentinel errors for the error categories every layer maps into. Callers
// wrap these with context via fmt.Errorf("...: %w", Err...) and detect
// them with errors.Is.
var (
	// ErrValidation marks input that fails a domain invariant.
	ErrValidation = errors.New("validation failed")

	// ErrAuthentication marks a failed login or a missing session. The
	// message is deliberately generic so it leaks nothing about whether
	// the account exists.
	ErrAuthentication = errors.New("invalid email or password")

	// ErrAuthorization marks an operation the current account may not
	// perform.
	ErrAuthorization = errors.New("not authorized")

	// ErrNotFound marks a lookup that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a write that collides with existing state, such
	// as a duplicate account email.
	ErrConflict = errors.New("already exists")

	// ErrPersistence marks a storage write that failed after the
	// in-memory mutation was applied.
	ErrPersistence = errors.New("persistence failed")
)
