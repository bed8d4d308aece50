// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

// Package postgres implements the post repository using PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/seesaw/seesaw/internal/post"
	"github.com/seesaw/seesaw/internal/store"
)

// PostRepository implements post.Repository using PostgreSQL.
type PostRepository struct {
	pool store.Pool
}

// NewPostRepository creates a new PostRepository.
func NewPostRepository(pool store.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

// Create stores a post and its images.
func (r *PostRepository) Create(ctx context.Context, p *post.Post) error {
	q := store.Conn(ctx, r.pool)
	_, err := q.Exec(ctx, `
		INSERT INTO posts (id, title, contents, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		p.ID.String(),
		p.Title,
		p.Contents,
		p.AuthorID.String(),
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return oops.Code("POST_INSERT_FAILED").
			With("operation", "insert post").
			With("post_id", p.ID.String()).
			Wrap(err)
	}
	for _, img := range p.Images {
		if err := r.insertImage(ctx, q, img); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostRepository) insertImage(ctx context.Context, q store.Querier, img post.Image) error {
	_, err := q.Exec(ctx, `
		INSERT INTO post_images (id, post_id, image_url) VALUES ($1, $2, $3)
	`, img.ID.String(), img.PostID.String(), img.ImageURL)
	if err != nil {
		return oops.Code("POST_IMAGE_INSERT_FAILED").
			With("operation", "insert post image").
			With("post_id", img.PostID.String()).
			Wrap(err)
	}
	return nil
}

// GetByID retrieves a post with its images.
func (r *PostRepository) GetByID(ctx context.Context, id ulid.ULID) (*post.Post, error) {
	q := store.Conn(ctx, r.pool)

	var (
		idStr     string
		title     string
		contents  string
		authorStr string
		createdAt time.Time
		updatedAt time.Time
	)
	err := q.QueryRow(ctx, `
		SELECT id, title, contents, author_id, created_at, updated_at
		FROM posts WHERE id = $1
	`, id.String()).Scan(&idStr, &title, &contents, &authorStr, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.With("post_id", id.String()).Wrap(post.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("POST_GET_FAILED").
			With("operation", "get post by id").
			With("post_id", id.String()).
			Wrap(err)
	}

	authorID, err := ulid.Parse(authorStr)
	if err != nil {
		return nil, oops.Code("POST_INVALID_AUTHOR_ID").
			With("author_id", authorStr).
			Wrap(err)
	}

	p := &post.Post{
		ID:        id,
		Title:     title,
		Contents:  contents,
		AuthorID:  authorID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	images, err := r.listImages(ctx, q, id)
	if err != nil {
		return nil, err
	}
	p.Images = images
	return p, nil
}

func (r *PostRepository) listImages(ctx context.Context, q store.Querier, postID ulid.ULID) ([]post.Image, error) {
	rows, err := q.Query(ctx, `
		SELECT id, image_url FROM post_images WHERE post_id = $1 ORDER BY id
	`, postID.String())
	if err != nil {
		return nil, oops.Code("POST_IMAGES_FAILED").
			With("operation", "list post images").
			With("post_id", postID.String()).
			Wrap(err)
	}
	defer rows.Close()

	var images []post.Image
	for rows.Next() {
		var (
			idStr string
			url   string
		)
		if err := rows.Scan(&idStr, &url); err != nil {
			return nil, oops.Code("POST_IMAGES_FAILED").
				With("operation", "scan post image").
				Wrap(err)
		}
		id, err := ulid.Parse(idStr)
		if err != nil {
			return nil, oops.Code("POST_INVALID_IMAGE_ID").
				With("id", idStr).
				Wrap(err)
		}
		images = append(images, post.Image{ID: id, PostID: postID, ImageURL: url})
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("POST_IMAGES_FAILED").
			With("operation", "iterate post images").
			Wrap(err)
	}
	return images, nil
}

// Update replaces title, contents, and images of a post.
func (r *PostRepository) Update(ctx context.Context, p *post.Post) error {
	q := store.Conn(ctx, r.pool)

	result, err := q.Exec(ctx, `
		UPDATE posts SET title = $2, contents = $3, updated_at = $4 WHERE id = $1
	`, p.ID.String(), p.Title, p.Contents, p.UpdatedAt)
	if err != nil {
		return oops.Code("POST_UPDATE_FAILED").
			With("operation", "update post").
			With("post_id", p.ID.String()).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.With("post_id", p.ID.String()).Wrap(post.ErrNotFound)
	}

	if _, err := q.Exec(ctx, `DELETE FROM post_images WHERE post_id = $1`, p.ID.String()); err != nil {
		return oops.Code("POST_UPDATE_FAILED").
			With("operation", "clear post images").
			With("post_id", p.ID.String()).
			Wrap(err)
	}
	for _, img := range p.Images {
		if err := r.insertImage(ctx, q, img); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a post. Images and scraps cascade.
func (r *PostRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result, err := store.Conn(ctx, r.pool).Exec(ctx, `
		DELETE FROM posts WHERE id = $1
	`, id.String())
	if err != nil {
		return oops.Code("POST_DELETE_FAILED").
			With("operation", "delete post").
			With("post_id", id.String()).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.With("post_id", id.String()).Wrap(post.ErrNotFound)
	}
	return nil
}

// TitleExists reports whether any post already uses the title.
func (r *PostRepository) TitleExists(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := store.Conn(ctx, r.pool).QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM posts WHERE title = $1)
	`, title).Scan(&exists)
	if err != nil {
		return false, oops.Code("POST_TITLE_CHECK_FAILED").
			With("operation", "check title").
			With("title", title).
			Wrap(err)
	}
	return exists, nil
}

// Scrap bookmarks a post for an account.
func (r *PostRepository) Scrap(ctx context.Context, accountID, postID ulid.ULID) error {
	_, err := store.Conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO post_scraps (account_id, post_id) VALUES ($1, $2)
	`, accountID.String(), postID.String())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return oops.With("post_id", postID.String()).Wrap(post.ErrAlreadyScrapped)
			case pgerrcode.ForeignKeyViolation:
				return oops.With("post_id", postID.String()).Wrap(post.ErrNotFound)
			}
		}
		return oops.Code("SCRAP_INSERT_FAILED").
			With("operation", "insert scrap").
			With("post_id", postID.String()).
			Wrap(err)
	}
	return nil
}

// Unscrap removes a bookmark.
func (r *PostRepository) Unscrap(ctx context.Context, accountID, postID ulid.ULID) error {
	result, err := store.Conn(ctx, r.pool).Exec(ctx, `
		DELETE FROM post_scraps WHERE account_id = $1 AND post_id = $2
	`, accountID.String(), postID.String())
	if err != nil {
		return oops.Code("SCRAP_DELETE_FAILED").
			With("operation", "delete scrap").
			With("post_id", postID.String()).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.With("post_id", postID.String()).Wrap(post.ErrNotFound)
	}
	return nil
}

// AdjustPostCount adds delta to an account's post counter.
func (r *PostRepository) AdjustPostCount(ctx context.Context, accountID ulid.ULID, delta int64) error {
	result, err := store.Conn(ctx, r.pool).Exec(ctx, `
		UPDATE users SET post_count = post_count + $2 WHERE id = $1
	`, accountID.String(), delta)
	if err != nil {
		return oops.Code("POST_COUNT_FAILED").
			With("operation", "adjust post count").
			With("account_id", accountID.String()).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("POST_COUNT_FAILED").
			With("account_id", accountID.String()).
			Errorf("account does not exist")
	}
	return nil
}

// Compile-time interface check.
var _ post.Repository = (*PostRepository)(nil)
