// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/seesaw/seesaw/internal/auth"
	authpg "github.com/seesaw/seesaw/internal/auth/postgres"
	"github.com/seesaw/seesaw/internal/config"
	"github.com/seesaw/seesaw/internal/logging"
	"github.com/seesaw/seesaw/internal/observability"
	"github.com/seesaw/seesaw/internal/post"
	postpg "github.com/seesaw/seesaw/internal/post/postgres"
	"github.com/seesaw/seesaw/internal/store"
	"github.com/seesaw/seesaw/internal/web"
)

// shutdownTimeout bounds graceful shutdown of the HTTP servers.
const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long: `Start the seesaw API server along with the observability server
(Prometheus metrics and health probes) on a separate listener.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServeWithDeps(cmd, nil)
		},
	}

	cmd.Flags().String("listen-addr", config.DefaultListenAddr, "API listen address")
	cmd.Flags().String("metrics-addr", config.DefaultMetricsAddr, "metrics/health HTTP address")
	cmd.Flags().String("log-format", config.DefaultLogFormat, "log format (json or text)")
	cmd.Flags().Bool("auto-migrate", false, "run pending migrations on startup")

	return cmd
}

// runServeWithDeps starts the server with injectable dependencies.
// If deps is nil, default implementations are used.
func runServeWithDeps(cmd *cobra.Command, deps *ServeDeps) error {
	if deps == nil {
		deps = &ServeDeps{}
	}
	if deps.OpenPool == nil {
		deps.OpenPool = store.Open
	}
	if deps.Migrate == nil {
		deps.Migrate = migrateUp
	}
	if deps.ObservabilityServerFactory == nil {
		deps.ObservabilityServerFactory = func(addr string, rc observability.ReadinessChecker) ObservabilityServer {
			return observability.NewServer(addr, rc)
		}
	}

	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.SetDefault("seesaw", version, cfg.LogFormat)
	logger := slog.Default()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AutoMigrate {
		logger.Info("running pending migrations")
		if err := deps.Migrate(cfg.DatabaseURL); err != nil {
			return oops.Code("MIGRATION_FAILED").With("operation", "auto-migrate").Wrap(err)
		}
	}

	pool, err := deps.OpenPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.Info("connected to database")

	obs := deps.ObservabilityServerFactory(cfg.MetricsAddr, func() bool {
		return pool.Ping(ctx) == nil
	})
	obsErrCh, err := obs.Start()
	if err != nil {
		return oops.Code("OBSERVABILITY_START_FAILED").With("addr", cfg.MetricsAddr).Wrap(err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if stopErr := obs.Stop(stopCtx); stopErr != nil {
			logger.Error("observability server shutdown failed", "error", stopErr)
		}
	}()

	// Persistence
	accounts := authpg.NewAccountRepository(pool)
	classifications := authpg.NewClassificationRepository(pool)
	profiles := authpg.NewProfileRepository(pool)
	posts := postpg.NewPostRepository(pool)
	tx := store.NewTransactor(pool)

	// Identity subsystem
	hasher := auth.NewArgon2idHasher()
	codec := auth.NewJWTCodec([]byte(cfg.JWTSecret), cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	validator := auth.NewValidator(accounts)
	classifier := auth.NewClassifier(classifications)
	provisioner := auth.NewProvisioner(profiles, profiles)
	registerSvc := auth.NewRegisterService(accounts, validator, classifier, provisioner, hasher, tx, cfg.AdminToken)
	refreshSvc := auth.NewRefreshService(accounts, codec)
	loginSvc := auth.NewLoginService(accounts, hasher, codec)
	profileSvc := auth.NewProfileService(profiles, profiles)

	// Post subsystem
	postSvc := post.NewService(posts, tx)

	router := web.NewRouter(web.RouterConfig{
		Logger:   logger,
		Metrics:  obs.Metrics(),
		Codec:    codec,
		Accounts: accounts,
		Register: registerSvc,
		Login:    loginSvc,
		Refresh:  refreshSvc,
		Profiles: profileSvc,
		Checker:  validator,
		Posts:    postSvc,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErrCh := make(chan error, 1)
	go func() {
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			srvErrCh <- serveErr
		}
		close(srvErrCh)
	}()

	logger.Info("api server started",
		"listen_addr", cfg.ListenAddr,
		"metrics_addr", obs.Addr(),
	)

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case serveErr := <-srvErrCh:
		if serveErr != nil {
			return oops.Code("SERVER_FAILED").With("addr", cfg.ListenAddr).Wrap(serveErr)
		}
	case obsErr := <-obsErrCh:
		if obsErr != nil {
			return oops.Code("OBSERVABILITY_FAILED").With("addr", cfg.MetricsAddr).Wrap(obsErr)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return oops.Code("SHUTDOWN_FAILED").Wrap(err)
	}

	logger.Info("api server stopped")
	return nil
}
