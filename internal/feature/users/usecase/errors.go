// Package usecase implements the business logic for the user management feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user exists with the given ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when a create or update would violate
	// the unique email constraint. Under concurrent writes the database index
	// guarantees exactly one winner; the loser surfaces this error.
	ErrEmailAlreadyExists = errors.New("email already exists")
)
