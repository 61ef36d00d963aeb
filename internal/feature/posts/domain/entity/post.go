// Package entity defines the domain entities for the posts feature.
package entity

import "time"

// Post represents a post authored by an authenticated user.
type Post struct {
	// ID is the unique identifier for the post.
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID is the ID of the authoring user.
	UserID uint `gorm:"index;not null" json:"user_id"`

	// Title is the post title.
	Title string `gorm:"size:255;not null" json:"title"`

	// Body is the post content.
	Body string `gorm:"type:text;not null" json:"body"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the post was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}
