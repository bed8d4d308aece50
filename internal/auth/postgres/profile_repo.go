// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/seesaw/seesaw/internal/auth"
	"github.com/seesaw/seesaw/internal/store"
)

// ProfileRepository implements both auth.ProfileCatalog and
// auth.ProfileAssignmentRepository using PostgreSQL.
type ProfileRepository struct {
	pool store.Pool
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(pool store.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// FindByID returns the profile definition for an ID, or auth.ErrNotFound.
func (r *ProfileRepository) FindByID(ctx context.Context, id int64) (*auth.ProfileDefinition, error) {
	var (
		category string
		imageURL string
	)
	err := store.Conn(ctx, r.pool).QueryRow(ctx, `
		SELECT category, image_url FROM profile_definitions WHERE id = $1
	`, id).Scan(&category, &imageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("PROFILE_NOT_FOUND").
			With("id", id).
			Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("PROFILE_GET_FAILED").
			With("operation", "get profile definition by id").
			With("id", id).
			Wrap(err)
	}
	return &auth.ProfileDefinition{
		ID:       id,
		Category: auth.ProfileCategory(category),
		ImageURL: imageURL,
	}, nil
}

// Create stores a new profile assignment.
func (r *ProfileRepository) Create(ctx context.Context, assignment *auth.ProfileAssignment) error {
	_, err := store.Conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO profile_assignments (id, account_id, profile_id, created_at)
		VALUES ($1, $2, $3, $4)
	`,
		assignment.ID.String(),
		assignment.AccountID.String(),
		assignment.ProfileID,
		assignment.CreatedAt,
	)
	if err != nil {
		return oops.Code("ASSIGNMENT_CREATE_FAILED").
			With("operation", "insert profile assignment").
			With("account_id", assignment.AccountID.String()).
			Wrap(err)
	}
	return nil
}

// ListByAccount returns all assignments for an account in creation order.
func (r *ProfileRepository) ListByAccount(ctx context.Context, accountID ulid.ULID) ([]auth.ProfileAssignment, error) {
	rows, err := store.Conn(ctx, r.pool).Query(ctx, `
		SELECT id, profile_id, created_at
		FROM profile_assignments
		WHERE account_id = $1
		ORDER BY id
	`, accountID.String())
	if err != nil {
		return nil, oops.Code("ASSIGNMENT_LIST_FAILED").
			With("operation", "list profile assignments").
			With("account_id", accountID.String()).
			Wrap(err)
	}
	defer rows.Close()

	var assignments []auth.ProfileAssignment
	for rows.Next() {
		var (
			idStr     string
			profileID int64
			createdAt time.Time
		)
		if err := rows.Scan(&idStr, &profileID, &createdAt); err != nil {
			return nil, oops.Code("ASSIGNMENT_SCAN_FAILED").
				With("operation", "scan profile assignment").
				Wrap(err)
		}
		id, err := ulid.Parse(idStr)
		if err != nil {
			return nil, oops.Code("ASSIGNMENT_INVALID_ID").
				With("operation", "parse assignment id").
				With("id", idStr).
				Wrap(err)
		}
		assignments = append(assignments, auth.ProfileAssignment{
			ID:        id,
			AccountID: accountID,
			ProfileID: profileID,
			CreatedAt: createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("ASSIGNMENT_LIST_FAILED").
			With("operation", "iterate profile assignments").
			With("account_id", accountID.String()).
			Wrap(err)
	}
	return assignments, nil
}

// Compile-time interface checks.
var (
	_ auth.ProfileCatalog              = (*ProfileRepository)(nil)
	_ auth.ProfileAssignmentRepository = (*ProfileRepository)(nil)
)
