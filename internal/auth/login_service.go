// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package auth

import (
	"context"
	"errors"

	"github.com/samber/oops"
)

// dummyPasswordHash is used when a user doesn't exist to prevent timing
// attacks: password verification still runs so response time stays
// consistent. It is a fake hash that can never match any password.
//
//nolint:gosec // G101: intentionally fake hash for timing attack prevention, not a credential.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// TokenPair bundles a short-lived access token with a long-lived refresh
// token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// LoginService authenticates credentials and mints token pairs.
type LoginService struct {
	accounts AccountRepository
	hasher   PasswordHasher
	codec    TokenCodec
}

// NewLoginService creates a LoginService.
func NewLoginService(accounts AccountRepository, hasher PasswordHasher, codec TokenCodec) *LoginService {
	return &LoginService{accounts: accounts, hasher: hasher, codec: codec}
}

// Login verifies the password for the given username and returns a fresh
// token pair. Unknown users and wrong passwords produce the same error.
func (s *LoginService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	account, lookupErr := s.accounts.GetByUsername(ctx, username)

	targetHash := dummyPasswordHash
	accountExists := false
	switch {
	case lookupErr == nil:
		targetHash = account.PasswordHash
		accountExists = true
	case !errors.Is(lookupErr, ErrNotFound):
		return nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "get account by username").
			Wrap(lookupErr)
	}

	// Always verify so missing accounts cost the same as wrong passwords.
	valid, verifyErr := s.hasher.Verify(password, targetHash)
	if verifyErr != nil && accountExists {
		return nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "verify password").
			Wrap(verifyErr)
	}
	if !accountExists || !valid {
		return nil, oops.Code(CodeInvalidCredentials).Errorf("invalid username or password")
	}

	access, err := s.codec.IssueAccessToken(account)
	if err != nil {
		return nil, oops.Code("AUTH_TOKEN_ISSUE_FAILED").
			With("operation", "issue access token").
			Wrap(err)
	}
	refresh, err := s.codec.IssueRefreshToken(account)
	if err != nil {
		return nil, oops.Code("AUTH_TOKEN_ISSUE_FAILED").
			With("operation", "issue refresh token").
			Wrap(err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
