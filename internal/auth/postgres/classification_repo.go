// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"

	"github.com/seesaw/seesaw/internal/auth"
	"github.com/seesaw/seesaw/internal/store"
)

// ClassificationRepository implements auth.ClassificationTable using
// PostgreSQL. The classifications table is seeded once and read-only at
// runtime.
type ClassificationRepository struct {
	pool store.Pool
}

// NewClassificationRepository creates a new ClassificationRepository.
func NewClassificationRepository(pool store.Pool) *ClassificationRepository {
	return &ClassificationRepository{pool: pool}
}

// FindByCode returns the descriptor for a 4-letter code, or auth.ErrNotFound.
func (r *ClassificationRepository) FindByCode(ctx context.Context, code string) (string, error) {
	var detail string
	err := store.Conn(ctx, r.pool).QueryRow(ctx, `
		SELECT detail FROM classifications WHERE code = $1
	`, code).Scan(&detail)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", oops.Code("CLASSIFICATION_NOT_FOUND").
			With("code", code).
			Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return "", oops.Code("CLASSIFICATION_GET_FAILED").
			With("operation", "get classification by code").
			With("code", code).
			Wrap(err)
	}
	return detail, nil
}

// Compile-time interface check.
var _ auth.ClassificationTable = (*ClassificationRepository)(nil)
