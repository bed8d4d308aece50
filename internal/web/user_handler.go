// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/seesaw/seesaw/internal/auth"
	"github.com/seesaw/seesaw/internal/observability"
	"github.com/seesaw/seesaw/pkg/errutil"
)

// Registrar performs registrations.
type Registrar interface {
	Register(ctx context.Context, req auth.RegisterRequest) error
}

// Authenticator verifies credentials and mints token pairs.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*auth.TokenPair, error)
}

// TokenRefresher reissues access tokens from refresh tokens.
type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// ProfileLister is the profile read path for an account.
type ProfileLister interface {
	ListByAccount(ctx context.Context, accountID ulid.ULID) ([]auth.ProfileView, error)
}

// CredentialChecker validates usernames and nicknames against the identity
// store without registering anything.
type CredentialChecker interface {
	ValidateUsername(ctx context.Context, username string) error
	ValidateNickname(ctx context.Context, nickname string) (string, error)
}

// UserHandler handles identity HTTP requests.
type UserHandler struct {
	register Registrar
	login    Authenticator
	refresh  TokenRefresher
	profiles ProfileLister
	checker  CredentialChecker
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewUserHandler creates a UserHandler. metrics may be nil.
func NewUserHandler(
	register Registrar,
	login Authenticator,
	refresh TokenRefresher,
	profiles ProfileLister,
	checker CredentialChecker,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		register: register,
		login:    login,
		refresh:  refresh,
		profiles: profiles,
		checker:  checker,
		metrics:  metrics,
		logger:   logger,
	}
}

// signupRequest is the registration wire shape. The profile selection is
// bound from "charIds"; a request without the field decodes to a nil slice,
// which the registration flow treats differently from an empty list.
type signupRequest struct {
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	PasswordConfirm string  `json:"passwordConfirmation"`
	Nickname        string  `json:"nickname"`
	Generation      string  `json:"generation"`
	Energy          *string `json:"energy"`
	Insight         *string `json:"insight"`
	Judgement       *string `json:"judgement"`
	LifePattern     *string `json:"lifePattern"`
	Admin           bool    `json:"isAdmin"`
	AdminToken      string  `json:"adminToken"`
	ProfileIDs      []int64 `json:"charIds"`
}

// Signup handles POST /api/user/signup.
func (h *UserHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	err := h.register.Register(c.Request.Context(), auth.RegisterRequest{
		Username:        req.Username,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		Nickname:        req.Nickname,
		Generation:      req.Generation,
		Traits: auth.TraitInput{
			Energy:      req.Energy,
			Insight:     req.Insight,
			Judgement:   req.Judgement,
			LifePattern: req.LifePattern,
		},
		Admin:      req.Admin,
		AdminToken: req.AdminToken,
		ProfileIDs: req.ProfileIDs,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if h.metrics != nil {
		role := auth.RoleUser
		if req.Admin {
			role = auth.RoleAdmin
		}
		h.metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()
	}
	c.Status(http.StatusOK)
}

// loginRequest carries login credentials.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/user/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	pair, err := h.login.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

// refreshRequest carries a refresh token.
type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh handles POST /api/user/refresh.
func (h *UserHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	access, err := h.refresh.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if h.metrics != nil {
		h.metrics.TokenRefreshesTotal.Inc()
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": access})
}

// checkRequest carries the signup pre-check fields.
type checkRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirmation"`
}

// Check handles POST /api/user/check: username and password validation
// without registering.
func (h *UserHandler) Check(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if err := h.checker.ValidateUsername(c.Request.Context(), req.Username); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := auth.ValidatePassword(req.Password, req.PasswordConfirm); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}

// NicknamePresent handles GET /api/user/nickname/:nickname/present. A taken
// nickname reports present; any other validation failure is an error.
func (h *UserHandler) NicknamePresent(c *gin.Context) {
	nickname := c.Param("nickname")

	_, err := h.checker.ValidateNickname(c.Request.Context(), nickname)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"present": false})
	case errutil.Code(err) == auth.CodeNicknameTaken:
		c.JSON(http.StatusOK, gin.H{"present": true})
	default:
		respondError(c, h.logger, err)
	}
}

// Info handles GET /api/user/info for the authenticated account.
func (h *UserHandler) Info(c *gin.Context) {
	account, ok := AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{
			Code:    "AUTH_UNAUTHENTICATED",
			Message: "authentication required",
		})
		return
	}

	profiles, err := h.profiles.ListByAccount(c.Request.Context(), account.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username": account.Username,
		"nickname": account.Nickname,
		"profiles": profiles,
	})
}

// Profiles handles GET /api/user/profiles for the authenticated account.
func (h *UserHandler) Profiles(c *gin.Context) {
	account, ok := AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{
			Code:    "AUTH_UNAUTHENTICATED",
			Message: "authentication required",
		})
		return
	}

	profiles, err := h.profiles.ListByAccount(c.Request.Context(), account.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}
