// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

// Package post provides post and scrap CRUD on top of the identity
// subsystem.
package post

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrNotFound is returned when a post does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyScrapped is returned when scrapping a post twice.
var ErrAlreadyScrapped = errors.New("already scrapped")

// Post is a user-authored entry with optional image attachments.
type Post struct {
	ID        ulid.ULID
	Title     string
	Contents  string
	AuthorID  ulid.ULID
	Images    []Image
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Image is one attachment of a post.
type Image struct {
	ID       ulid.ULID
	PostID   ulid.ULID
	ImageURL string
}

// Repository manages post persistence.
type Repository interface {
	// Create stores a post and its images.
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a post with its images.
	GetByID(ctx context.Context, id ulid.ULID) (*Post, error)

	// Update replaces title, contents, and images of a post.
	Update(ctx context.Context, post *Post) error

	// Delete removes a post.
	Delete(ctx context.Context, id ulid.ULID) error

	// TitleExists reports whether any post already uses the title.
	TitleExists(ctx context.Context, title string) (bool, error)

	// Scrap bookmarks a post for an account. Returns ErrAlreadyScrapped on
	// a duplicate and ErrNotFound when the post does not exist.
	Scrap(ctx context.Context, accountID, postID ulid.ULID) error

	// Unscrap removes a bookmark. Returns ErrNotFound when it is absent.
	Unscrap(ctx context.Context, accountID, postID ulid.ULID) error

	// AdjustPostCount adds delta to an account's post counter.
	AdjustPostCount(ctx context.Context, accountID ulid.ULID, delta int64) error
}
