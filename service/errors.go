package service

import "errors"

// Failure classes the handlers translate into HTTP statuses. Anything that is
// not one of these is treated as a persistence failure.
var (
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so login failures never reveal which half was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound covers both a missing resource and one owned by another
	// user. The two cases must stay indistinguishable to callers.
	ErrNotFound = errors.New("not found")
)

// ValidationError marks caller-fixable input problems (missing or malformed
// fields).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func errValidation(reason string) error {
	return &ValidationError{Reason: reason}
}
