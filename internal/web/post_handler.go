// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/seesaw/seesaw/internal/post"
)

// PostService is the post subsystem surface used by the HTTP layer.
type PostService interface {
	Create(ctx context.Context, req post.CreateRequest) (*post.Post, error)
	Get(ctx context.Context, id ulid.ULID) (*post.Post, error)
	Update(ctx context.Context, actorID ulid.ULID, req post.UpdateRequest) error
	Delete(ctx context.Context, actorID, postID ulid.ULID) error
	TitlePresent(ctx context.Context, title string) (bool, error)
	Scrap(ctx context.Context, accountID, postID ulid.ULID) error
	Unscrap(ctx context.Context, accountID, postID ulid.ULID) error
}

// PostHandler handles post HTTP requests. All routes require authentication.
type PostHandler struct {
	posts  PostService
	logger *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(posts PostService, logger *slog.Logger) *PostHandler {
	return &PostHandler{posts: posts, logger: logger}
}

// postRequest is the create/update wire shape.
type postRequest struct {
	Title     string   `json:"title"`
	Contents  string   `json:"contents"`
	ImageURLs []string `json:"imageUrls"`
}

// postResponse is the read wire shape.
type postResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Contents  string    `json:"contents"`
	AuthorID  string    `json:"authorId"`
	ImageURLs []string  `json:"imageUrls"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toPostResponse(p *post.Post) postResponse {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.ImageURL)
	}
	return postResponse{
		ID:        p.ID.String(),
		Title:     p.Title,
		Contents:  p.Contents,
		AuthorID:  p.AuthorID.String(),
		ImageURLs: urls,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (h *PostHandler) postID(c *gin.Context) (ulid.ULID, bool) {
	id, err := ulid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid post id")
		return ulid.ULID{}, false
	}
	return id, true
}

// Create handles POST /api/post.
func (h *PostHandler) Create(c *gin.Context) {
	account, ok := AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{
			Code:    "AUTH_UNAUTHENTICATED",
			Message: "authentication required",
		})
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	created, err := h.posts.Create(c.Request.Context(), post.CreateRequest{
		Title:     req.Title,
		Contents:  req.Contents,
		AuthorID:  account.ID,
		ImageURLs: req.ImageURLs,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toPostResponse(created))
}

// Get handles GET /api/post/:id.
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	p, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toPostResponse(p))
}

// Update handles PUT /api/post/:id.
func (h *PostHandler) Update(c *gin.Context) {
	account, ok := AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{
			Code:    "AUTH_UNAUTHENTICATED",
			Message: "authentication required",
		})
		return
	}
	id, ok := h.postID(c)
	if !ok {
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	err := h.posts.Update(c.Request.Context(), account.ID, post.UpdateRequest{
		ID:        id,
		Title:     req.Title,
		Contents:  req.Contents,
		ImageURLs: req.ImageURLs,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE /api/post/:id.
func (h *PostHandler) Delete(c *gin.Context) {
	account, ok := AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{
			Code:    "AUTH_UNAUTHENTICATED",
			Message: "authentication required",
		})
		return
	}
	id, ok := h.postID(c)
	if !ok {
		return
	}

	if err := h.posts.Delete(c.Request.Context(), account.ID, id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}

// TitlePresent handles GET /api/post/:id/present. The wildcard segment is
// the candidate title; gin allows only one wildcard name per position, so it
// shares the :id name with the other post routes.
func (h *PostHandler) TitlePresent(c *gin.Context) {
	title := c.Param("id")

	present, err := h.posts.TitlePresent(c.Request.Context(), title)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"present": present})
}

// Scrap handles POST /api/post/:id/scrap.
func (h *PostHandler) Scrap(c *gin.Context) {
	account, ok := AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{
			Code:    "AUTH_UNAUTHENTICATED",
			Message: "authentication required",
		})
		return
	}
	id, ok := h.postID(c)
	if !ok {
		return
	}

	if err := h.posts.Scrap(c.Request.Context(), account.ID, id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}

// Unscrap handles DELETE /api/post/:id/scrap.
func (h *PostHandler) Unscrap(c *gin.Context) {
	account, ok := AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{
			Code:    "AUTH_UNAUTHENTICATED",
			Message: "authentication required",
		})
		return
	}
	id, ok := h.postID(c)
	if !ok {
		return
	}

	if err := h.posts.Unscrap(c.Request.Context(), account.ID, id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}
