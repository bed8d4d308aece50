// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"

	"github.com/seesaw/seesaw/internal/auth"
	"github.com/seesaw/seesaw/internal/auth/mocks"
	"github.com/seesaw/seesaw/pkg/errutil"
)

func TestRefreshService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh token yields new access token", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository(t)
		codec := mocks.NewMockTokenCodec(t)

		account := &auth.Account{ID: ulid.Make(), Username: "user@example.com", Role: auth.RoleUser}
		codec.On("DecodeUsername", "refresh-token").Return("user@example.com", nil)
		accounts.On("GetByUsername", ctx, "user@example.com").Return(account, nil)
		codec.On("IssueAccessToken", account).Return("new-access-token", nil)

		svc := auth.NewRefreshService(accounts, codec)
		token, err := svc.Refresh(ctx, "refresh-token")
		require.NoError(t, err)
		require.Equal(t, "new-access-token", token)
	})

	t.Run("undecodable token", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository(t)
		codec := mocks.NewMockTokenCodec(t)
		codec.On("DecodeUsername", "garbage").Return("", errors.New("signature invalid"))

		svc := auth.NewRefreshService(accounts, codec)
		_, err := svc.Refresh(ctx, "garbage")
		errutil.AssertErrorCode(t, err, "AUTH_REFRESH_INVALID")
	})

	t.Run("token for deleted account", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository(t)
		codec := mocks.NewMockTokenCodec(t)
		codec.On("DecodeUsername", "refresh-token").Return("gone@example.com", nil)
		accounts.On("GetByUsername", ctx, "gone@example.com").Return(nil, auth.ErrNotFound)

		svc := auth.NewRefreshService(accounts, codec)
		_, err := svc.Refresh(ctx, "refresh-token")
		errutil.AssertErrorCode(t, err, "AUTH_USER_UNKNOWN")
	})

	t.Run("store failure", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository(t)
		codec := mocks.NewMockTokenCodec(t)
		codec.On("DecodeUsername", "refresh-token").Return("user@example.com", nil)
		accounts.On("GetByUsername", ctx, "user@example.com").Return(nil, errors.New("connection reset"))

		svc := auth.NewRefreshService(accounts, codec)
		_, err := svc.Refresh(ctx, "refresh-token")
		errutil.AssertErrorCode(t, err, "AUTH_LOOKUP_FAILED")
	})

	t.Run("issue failure", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository(t)
		codec := mocks.NewMockTokenCodec(t)

		account := &auth.Account{ID: ulid.Make(), Username: "user@example.com"}
		codec.On("DecodeUsername", "refresh-token").Return("user@example.com", nil)
		accounts.On("GetByUsername", ctx, "user@example.com").Return(account, nil)
		codec.On("IssueAccessToken", account).Return("", errors.New("signing failed"))

		svc := auth.NewRefreshService(accounts, codec)
		_, err := svc.Refresh(ctx, "refresh-token")
		errutil.AssertErrorCode(t, err, "AUTH_TOKEN_ISSUE_FAILED")
	})
}
