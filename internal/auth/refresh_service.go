// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package auth

import (
	"context"
	"errors"

	"github.com/samber/oops"
)

// RefreshService reissues access tokens from valid refresh tokens.
type RefreshService struct {
	accounts AccountRepository
	codec    TokenCodec
}

// NewRefreshService creates a RefreshService.
func NewRefreshService(accounts AccountRepository, codec TokenCodec) *RefreshService {
	return &RefreshService{accounts: accounts, codec: codec}
}

// Refresh decodes the refresh token, looks the account up, and issues a new
// access token scoped to that account's identity and role.
func (s *RefreshService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	username, err := s.codec.DecodeUsername(refreshToken)
	if err != nil {
		return "", oops.Code(CodeRefreshInvalid).
			With("operation", "decode refresh token").
			Wrap(err)
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return "", oops.Code(CodeUserUnknown).
			With("username", username).
			Errorf("no account for refresh token")
	}
	if err != nil {
		return "", oops.Code("AUTH_LOOKUP_FAILED").
			With("operation", "get account by username").
			Wrap(err)
	}

	token, err := s.codec.IssueAccessToken(account)
	if err != nil {
		return "", oops.Code("AUTH_TOKEN_ISSUE_FAILED").
			With("username", username).
			Wrap(err)
	}
	return token, nil
}
