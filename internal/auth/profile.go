// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package auth

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// ProfileCategory is the kind of a character-profile image.
type ProfileCategory string

// Known profile categories. The read path passes category values through
// unchanged, so new categories need no code changes here.
const (
	CategoryFace       ProfileCategory = "face"
	CategoryAccessory  ProfileCategory = "accessory"
	CategoryBackground ProfileCategory = "background"
)

// ProfileDefinition is an immutable catalog entry for a character-profile
// image.
type ProfileDefinition struct {
	ID       int64
	Category ProfileCategory
	ImageURL string
}

// ProfileAssignment links one account to one profile definition. Assignments
// are append-only; this subsystem never removes them.
type ProfileAssignment struct {
	ID        ulid.ULID
	AccountID ulid.ULID
	ProfileID int64
	CreatedAt time.Time
}

// ProfileView is one entry of the profile read path.
type ProfileView struct {
	Category ProfileCategory `json:"category"`
	ImageURL string          `json:"imageUrl"`
}

// ProfileCatalog resolves profile definitions by ID.
type ProfileCatalog interface {
	// FindByID returns the definition for an ID, or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*ProfileDefinition, error)
}

// ProfileAssignmentRepository manages account-to-profile links.
type ProfileAssignmentRepository interface {
	// Create stores a new assignment.
	Create(ctx context.Context, assignment *ProfileAssignment) error

	// ListByAccount returns all assignments for an account in creation order.
	ListByAccount(ctx context.Context, accountID ulid.ULID) ([]ProfileAssignment, error)
}
