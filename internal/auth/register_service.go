// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/seesaw/seesaw/pkg/errutil"
)

// RegisterRequest carries all fields of a registration attempt. ProfileIDs
// distinguishes nil (no selection sent at all) from an empty list.
type RegisterRequest struct {
	Username        string
	Password        string
	PasswordConfirm string
	Nickname        string
	Generation      string
	Traits          TraitInput
	Admin           bool
	AdminToken      string
	ProfileIDs      []int64
}

// RegisterService sequences validation, classification, role gating,
// hashing, and the atomic account-plus-profiles write.
type RegisterService struct {
	accounts    AccountRepository
	validator   *Validator
	classifier  *Classifier
	provisioner *Provisioner
	hasher      PasswordHasher
	tx          Transactor
	adminToken  string
}

// NewRegisterService creates a RegisterService. adminToken is the shared
// secret that gates ADMIN-role registration; it comes from configuration,
// never from a code literal.
func NewRegisterService(
	accounts AccountRepository,
	validator *Validator,
	classifier *Classifier,
	provisioner *Provisioner,
	hasher PasswordHasher,
	tx Transactor,
	adminToken string,
) *RegisterService {
	return &RegisterService{
		accounts:    accounts,
		validator:   validator,
		classifier:  classifier,
		provisioner: provisioner,
		hasher:      hasher,
		tx:          tx,
		adminToken:  adminToken,
	}
}

// Register performs one all-or-nothing registration. Any validation or
// domain failure aborts before a single write; a provisioning failure rolls
// the account insert back with it.
func (s *RegisterService) Register(ctx context.Context, req RegisterRequest) error {
	if err := s.validator.ValidateUsername(ctx, req.Username); err != nil {
		return err
	}
	if _, err := s.validator.ValidateNickname(ctx, req.Nickname); err != nil {
		return err
	}
	if err := ValidatePassword(req.Password, req.PasswordConfirm); err != nil {
		return err
	}

	classification, err := s.classifier.Resolve(ctx, req.Traits)
	if err != nil {
		return err
	}

	role := RoleUser
	if req.Admin {
		if subtle.ConstantTimeCompare([]byte(req.AdminToken), []byte(s.adminToken)) != 1 {
			return oops.Code(CodeAdminTokenMismatch).Errorf("admin token does not match")
		}
		role = RoleAdmin
	}

	if req.ProfileIDs == nil {
		return oops.Code(CodeProfileSelectionMissing).Errorf("profile selection is missing")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return oops.Code("AUTH_HASH_FAILED").Wrap(err)
	}

	account := &Account{
		ID:             ulid.Make(),
		Username:       req.Username,
		PasswordHash:   hash,
		Nickname:       req.Nickname,
		Generation:     req.Generation,
		PostCount:      0,
		Classification: classification,
		Role:           role,
		CreatedAt:      time.Now().UTC(),
	}

	err = s.tx.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.accounts.Create(ctx, account); err != nil {
			return err
		}
		return s.provisioner.Provision(ctx, account, req.ProfileIDs)
	})
	if err != nil {
		// A concurrent registration can slip past the fast-path uniqueness
		// check; the store's unique constraints are authoritative.
		switch {
		case errors.Is(err, ErrUsernameTaken):
			return oops.Code(CodeUsernameTaken).
				With("username", req.Username).
				Errorf("username %q is already registered", req.Username)
		case errors.Is(err, ErrNicknameTaken):
			return oops.Code(CodeNicknameTaken).
				With("nickname", req.Nickname).
				Errorf("nickname %q is already in use", req.Nickname)
		}
		if errutil.Code(err) != "" {
			return err
		}
		return oops.Code("AUTH_REGISTER_FAILED").
			With("username", req.Username).
			Wrap(err)
	}
	return nil
}
