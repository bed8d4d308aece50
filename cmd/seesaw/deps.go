// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seesaw/seesaw/internal/observability"
	"github.com/seesaw/seesaw/internal/store"
)

// ServeDeps contains injectable dependencies for the serve command.
// All fields with nil values will use their default implementations.
type ServeDeps struct {
	// OpenPool opens the database pool.
	// Default: store.Open
	OpenPool func(ctx context.Context, databaseURL string) (*pgxpool.Pool, error)

	// Migrate runs all pending migrations for auto-migrate.
	// Default: migrateUp
	Migrate func(databaseURL string) error

	// ObservabilityServerFactory creates an observability server.
	// Default: observability.NewServer
	ObservabilityServerFactory func(addr string, readinessChecker observability.ReadinessChecker) ObservabilityServer
}

// ObservabilityServer interface wraps the methods used from observability.Server.
type ObservabilityServer interface {
	Start() (<-chan error, error)
	Stop(ctx context.Context) error
	Addr() string
	Metrics() *observability.Metrics
}

// migrateUp runs all pending migrations against the database.
func migrateUp(databaseURL string) error {
	m, err := store.NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()
	return m.Up()
}
