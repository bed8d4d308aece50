// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

// Package web is the gin HTTP surface over the identity and post
// subsystems. Handlers stay thin: bind, call a service, map the error code
// to a status.
package web

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/seesaw/seesaw/internal/auth"
	"github.com/seesaw/seesaw/internal/observability"
)

// RouterConfig bundles everything the HTTP surface depends on. Metrics may
// be nil; Logger defaults to slog.Default.
type RouterConfig struct {
	Logger  *slog.Logger
	Metrics *observability.Metrics

	Codec    auth.TokenCodec
	Accounts auth.AccountRepository

	Register Registrar
	Login    Authenticator
	Refresh  TokenRefresher
	Profiles ProfileLister
	Checker  CredentialChecker
	Posts    PostService
}

// NewRouter builds the API router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	if cfg.Metrics != nil {
		engine.Use(requestMetrics(cfg.Metrics))
	}

	users := NewUserHandler(cfg.Register, cfg.Login, cfg.Refresh, cfg.Profiles, cfg.Checker, cfg.Metrics, logger)
	posts := NewPostHandler(cfg.Posts, logger)
	authenticated := RequireAuth(cfg.Codec, cfg.Accounts)

	api := engine.Group("/api")

	user := api.Group("/user")
	{
		user.POST("/signup", users.Signup)
		user.POST("/login", users.Login)
		user.POST("/refresh", users.Refresh)
		user.POST("/check", users.Check)
		user.GET("/nickname/:nickname/present", users.NicknamePresent)
		user.GET("/info", authenticated, users.Info)
		user.GET("/profiles", authenticated, users.Profiles)
	}

	post := api.Group("/post")
	post.Use(authenticated)
	{
		post.POST("", posts.Create)
		post.GET("/:id", posts.Get)
		post.PUT("/:id", posts.Update)
		post.DELETE("/:id", posts.Delete)
		post.GET("/:id/present", posts.TitlePresent)
		post.POST("/:id/scrap", posts.Scrap)
		post.DELETE("/:id/scrap", posts.Unscrap)
	}

	return engine
}
