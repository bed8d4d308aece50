// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package auth

import (
	"context"
	"errors"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// ProfileService is the read path for an account's character profiles.
type ProfileService struct {
	assignments ProfileAssignmentRepository
	catalog     ProfileCatalog
}

// NewProfileService creates a ProfileService.
func NewProfileService(assignments ProfileAssignmentRepository, catalog ProfileCatalog) *ProfileService {
	return &ProfileService{assignments: assignments, catalog: catalog}
}

// ListByAccount returns the account's (category, image) pairs in assignment
// order. An account with no assignments is a hard failure, not an empty
// result; categories are passed through without deduplication or filtering.
func (s *ProfileService) ListByAccount(ctx context.Context, accountID ulid.ULID) ([]ProfileView, error) {
	assignments, err := s.assignments.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, oops.Code("PROFILE_LIST_FAILED").
			With("account_id", accountID.String()).
			Wrap(err)
	}
	if len(assignments) == 0 {
		return nil, oops.Code(CodeProfileNoneFound).
			With("account_id", accountID.String()).
			Errorf("account has no profile assignments")
	}

	views := make([]ProfileView, 0, len(assignments))
	for _, assignment := range assignments {
		def, err := s.catalog.FindByID(ctx, assignment.ProfileID)
		if errors.Is(err, ErrNotFound) {
			return nil, oops.Code(CodeProfileUnresolved).
				With("profile_id", assignment.ProfileID).
				Errorf("assigned profile %d no longer exists", assignment.ProfileID)
		}
		if err != nil {
			return nil, oops.Code("PROFILE_LOOKUP_FAILED").
				With("profile_id", assignment.ProfileID).
				Wrap(err)
		}
		views = append(views, ProfileView{Category: def.Category, ImageURL: def.ImageURL})
	}
	return views, nil
}
