package model

import "errors"

// Sentinel errors for the credential store and authentication flow.
// Wrapped with fmt.Errorf("...: %w") at call sites and checked with errors.Is.
var (
	// ErrDuplicateUsername indicates the username is already registered.
	// User-facing; the register form re-renders with a message.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrUserNotFound indicates no user row matched the lookup.
	// Never shown to the user directly (see ErrInvalidCredentials).
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both unknown-username and wrong-password
	// so the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
