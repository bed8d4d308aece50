// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package post

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/seesaw/seesaw/internal/auth"
)

// Stable error codes for the post subsystem.
const (
	CodeNotFound        = "POST_NOT_FOUND"
	CodeTitleTaken      = "POST_TITLE_TAKEN"
	CodeForbidden       = "POST_FORBIDDEN"
	CodeAlreadyScrapped = "POST_ALREADY_SCRAPPED"
	CodeScrapMissing    = "POST_SCRAP_MISSING"
)

// CreateRequest carries the fields of a new post.
type CreateRequest struct {
	Title     string
	Contents  string
	AuthorID  ulid.ULID
	ImageURLs []string
}

// UpdateRequest carries the mutable fields of an existing post.
type UpdateRequest struct {
	ID        ulid.ULID
	Title     string
	Contents  string
	ImageURLs []string
}

// Service sequences post operations and keeps the author's post counter in
// step with post creation and deletion.
type Service struct {
	posts Repository
	tx    auth.Transactor
}

// NewService creates a Service.
func NewService(posts Repository, tx auth.Transactor) *Service {
	return &Service{posts: posts, tx: tx}
}

// Create stores a new post after checking the title is unused, and bumps the
// author's post counter in the same transaction.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Post, error) {
	taken, err := s.posts.TitleExists(ctx, req.Title)
	if err != nil {
		return nil, oops.Code("POST_CREATE_FAILED").
			With("operation", "check title").
			Wrap(err)
	}
	if taken {
		return nil, oops.Code(CodeTitleTaken).
			With("title", req.Title).
			Errorf("a post titled %q already exists", req.Title)
	}

	now := time.Now().UTC()
	post := &Post{
		ID:        ulid.Make(),
		Title:     req.Title,
		Contents:  req.Contents,
		AuthorID:  req.AuthorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, url := range req.ImageURLs {
		post.Images = append(post.Images, Image{
			ID:       ulid.Make(),
			PostID:   post.ID,
			ImageURL: url,
		})
	}

	err = s.tx.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.posts.Create(ctx, post); err != nil {
			return err
		}
		return s.posts.AdjustPostCount(ctx, req.AuthorID, 1)
	})
	if err != nil {
		return nil, oops.Code("POST_CREATE_FAILED").
			With("title", req.Title).
			Wrap(err)
	}
	return post, nil
}

// Get retrieves a post by ID.
func (s *Service) Get(ctx context.Context, id ulid.ULID) (*Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, oops.Code(CodeNotFound).
			With("post_id", id.String()).
			Errorf("post does not exist")
	}
	if err != nil {
		return nil, oops.Code("POST_GET_FAILED").
			With("post_id", id.String()).
			Wrap(err)
	}
	return post, nil
}

// Update replaces a post's content. Only the author may update.
func (s *Service) Update(ctx context.Context, actorID ulid.ULID, req UpdateRequest) error {
	existing, err := s.Get(ctx, req.ID)
	if err != nil {
		return err
	}
	if existing.AuthorID != actorID {
		return oops.Code(CodeForbidden).
			With("post_id", req.ID.String()).
			Errorf("only the author can update a post")
	}

	updated := &Post{
		ID:        req.ID,
		Title:     req.Title,
		Contents:  req.Contents,
		AuthorID:  existing.AuthorID,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}
	for _, url := range req.ImageURLs {
		updated.Images = append(updated.Images, Image{
			ID:       ulid.Make(),
			PostID:   req.ID,
			ImageURL: url,
		})
	}

	if err := s.posts.Update(ctx, updated); err != nil {
		return oops.Code("POST_UPDATE_FAILED").
			With("post_id", req.ID.String()).
			Wrap(err)
	}
	return nil
}

// Delete removes a post and decrements the author's counter in the same
// transaction. Only the author may delete.
func (s *Service) Delete(ctx context.Context, actorID, postID ulid.ULID) error {
	existing, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if existing.AuthorID != actorID {
		return oops.Code(CodeForbidden).
			With("post_id", postID.String()).
			Errorf("only the author can delete a post")
	}

	err = s.tx.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.posts.Delete(ctx, postID); err != nil {
			return err
		}
		return s.posts.AdjustPostCount(ctx, existing.AuthorID, -1)
	})
	if err != nil {
		return oops.Code("POST_DELETE_FAILED").
			With("post_id", postID.String()).
			Wrap(err)
	}
	return nil
}

// TitlePresent reports whether a post with the title already exists.
func (s *Service) TitlePresent(ctx context.Context, title string) (bool, error) {
	taken, err := s.posts.TitleExists(ctx, title)
	if err != nil {
		return false, oops.Code("POST_TITLE_CHECK_FAILED").
			With("title", title).
			Wrap(err)
	}
	return taken, nil
}

// Scrap bookmarks a post for an account.
func (s *Service) Scrap(ctx context.Context, accountID, postID ulid.ULID) error {
	err := s.posts.Scrap(ctx, accountID, postID)
	switch {
	case errors.Is(err, ErrAlreadyScrapped):
		return oops.Code(CodeAlreadyScrapped).
			With("post_id", postID.String()).
			Errorf("post is already scrapped")
	case errors.Is(err, ErrNotFound):
		return oops.Code(CodeNotFound).
			With("post_id", postID.String()).
			Errorf("post does not exist")
	case err != nil:
		return oops.Code("POST_SCRAP_FAILED").
			With("post_id", postID.String()).
			Wrap(err)
	}
	return nil
}

// Unscrap removes a bookmark.
func (s *Service) Unscrap(ctx context.Context, accountID, postID ulid.ULID) error {
	err := s.posts.Unscrap(ctx, accountID, postID)
	switch {
	case errors.Is(err, ErrNotFound):
		return oops.Code(CodeScrapMissing).
			With("post_id", postID.String()).
			Errorf("post is not scrapped")
	case err != nil:
		return oops.Code("POST_UNSCRAP_FAILED").
			With("post_id", postID.String()).
			Wrap(err)
	}
	return nil
}
