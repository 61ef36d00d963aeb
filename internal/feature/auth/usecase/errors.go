// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when the provided email or password is incorrect.
	// Login deliberately does not distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
