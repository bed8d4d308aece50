// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package auth

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Provisioner resolves a set of profile IDs and links them to an account.
type Provisioner struct {
	catalog     ProfileCatalog
	assignments ProfileAssignmentRepository
}

// NewProvisioner creates a Provisioner.
func NewProvisioner(catalog ProfileCatalog, assignments ProfileAssignmentRepository) *Provisioner {
	return &Provisioner{catalog: catalog, assignments: assignments}
}

// Provision resolves each profile ID in input order and creates one
// assignment per resolved definition. The first unresolvable ID aborts the
// whole call. Callers must run Provision inside a transaction so that a
// failure persists no assignments at all.
func (p *Provisioner) Provision(ctx context.Context, account *Account, profileIDs []int64) error {
	if len(profileIDs) == 0 {
		return oops.Code(CodeProfileSelectionEmpty).
			With("account_id", account.ID.String()).
			Errorf("at least one profile must be selected")
	}

	for _, id := range profileIDs {
		def, err := p.catalog.FindByID(ctx, id)
		if errors.Is(err, ErrNotFound) {
			return oops.Code(CodeProfileUnresolved).
				With("profile_id", id).
				Errorf("profile %d does not exist", id)
		}
		if err != nil {
			return oops.Code("PROFILE_LOOKUP_FAILED").
				With("profile_id", id).
				Wrap(err)
		}

		assignment := &ProfileAssignment{
			ID:        ulid.Make(),
			AccountID: account.ID,
			ProfileID: def.ID,
			CreatedAt: time.Now().UTC(),
		}
		if err := p.assignments.Create(ctx, assignment); err != nil {
			return oops.Code("PROFILE_ASSIGN_FAILED").
				With("profile_id", id).
				With("account_id", account.ID.String()).
				Wrap(err)
		}
	}
	return nil
}
