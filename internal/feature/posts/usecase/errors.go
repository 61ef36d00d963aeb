// Package usecase implements the business logic for the posts feature.
package usecase

import "errors"

var (
	// ErrPostNotFound is returned when no post exists with the given ID.
	ErrPostNotFound = errors.New("post not found")

	// ErrNotPostAuthor is returned when a user tries to modify a post they
	// did not author.
	ErrNotPostAuthor = errors.New("post belongs to another user")
)
