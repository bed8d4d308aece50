// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seesaw/seesaw/internal/auth"
	"github.com/seesaw/seesaw/internal/auth/mocks"
	"github.com/seesaw/seesaw/pkg/errutil"
)

func TestValidator_ValidateUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts well-formed unused username", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		repo.On("GetByUsername", ctx, "user@example.com").Return(nil, auth.ErrNotFound)

		v := auth.NewValidator(repo)
		require.NoError(t, v.ValidateUsername(ctx, "user@example.com"))
	})

	t.Run("accepts two-level domain suffix", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		repo.On("GetByUsername", ctx, "user@example.co.kr").Return(nil, auth.ErrNotFound)

		v := auth.NewValidator(repo)
		require.NoError(t, v.ValidateUsername(ctx, "user@example.co.kr"))
	})

	t.Run("taken username reports duplicate", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		repo.On("GetByUsername", ctx, "user@example.com").
			Return(&auth.Account{Username: "user@example.com"}, nil)

		v := auth.NewValidator(repo)
		err := v.ValidateUsername(ctx, "user@example.com")
		errutil.AssertErrorCode(t, err, "AUTH_USERNAME_TAKEN")
	})

	t.Run("uniqueness is checked before the pattern", func(t *testing.T) {
		// A candidate that is both taken and malformed reports the duplicate.
		repo := mocks.NewMockAccountRepository(t)
		repo.On("GetByUsername", ctx, "not-an-email").
			Return(&auth.Account{Username: "not-an-email"}, nil)

		v := auth.NewValidator(repo)
		err := v.ValidateUsername(ctx, "not-an-email")
		errutil.AssertErrorCode(t, err, "AUTH_USERNAME_TAKEN")
	})

	t.Run("blank is checked before the pattern", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		repo.On("GetByUsername", ctx, "").Return(nil, auth.ErrNotFound)

		v := auth.NewValidator(repo)
		err := v.ValidateUsername(ctx, "")
		errutil.AssertErrorCode(t, err, "AUTH_USERNAME_BLANK")
	})

	t.Run("malformed usernames are rejected", func(t *testing.T) {
		bad := []string{
			"plainaddress",
			"user@example",
			"user@@example.com",
			"user@example.com.org.net",
			"us er@example.com",
		}
		for _, username := range bad {
			repo := mocks.NewMockAccountRepository(t)
			repo.On("GetByUsername", ctx, username).Return(nil, auth.ErrNotFound)

			v := auth.NewValidator(repo)
			err := v.ValidateUsername(ctx, username)
			errutil.AssertErrorCode(t, err, "AUTH_USERNAME_PATTERN")
		}
	})

	t.Run("store failure is not reported as available", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		repo.On("GetByUsername", ctx, "user@example.com").
			Return(nil, errors.New("connection reset"))

		v := auth.NewValidator(repo)
		err := v.ValidateUsername(ctx, "user@example.com")
		errutil.AssertErrorCode(t, err, "AUTH_LOOKUP_FAILED")
	})
}

func TestValidator_ValidateNickname(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts valid nickname", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		repo.On("GetByNickname", ctx, "seesaw").Return(nil, auth.ErrNotFound)

		v := auth.NewValidator(repo)
		nickname, err := v.ValidateNickname(ctx, "seesaw")
		require.NoError(t, err)
		require.Equal(t, "seesaw", nickname)
	})

	t.Run("taken nickname reports duplicate before pattern", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		repo.On("GetByNickname", ctx, "x").
			Return(&auth.Account{Nickname: "x"}, nil)

		v := auth.NewValidator(repo)
		_, err := v.ValidateNickname(ctx, "x")
		errutil.AssertErrorCode(t, err, "AUTH_NICKNAME_TAKEN")
	})

	t.Run("blank nickname", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		repo.On("GetByNickname", ctx, "").Return(nil, auth.ErrNotFound)

		v := auth.NewValidator(repo)
		_, err := v.ValidateNickname(ctx, "")
		errutil.AssertErrorCode(t, err, "AUTH_NICKNAME_BLANK")
	})

	t.Run("length and whitespace rules", func(t *testing.T) {
		tests := []struct {
			nickname string
			wantCode string
		}{
			{"x", "AUTH_NICKNAME_PATTERN"},
			{"toolongnickname", "AUTH_NICKNAME_PATTERN"},
			{"has space", "AUTH_NICKNAME_PATTERN"},
			{"ab", ""},
			{"12345678", ""},
		}
		for _, tt := range tests {
			repo := mocks.NewMockAccountRepository(t)
			repo.On("GetByNickname", ctx, tt.nickname).Return(nil, auth.ErrNotFound)

			v := auth.NewValidator(repo)
			_, err := v.ValidateNickname(ctx, tt.nickname)
			if tt.wantCode == "" {
				require.NoError(t, err, "nickname %q", tt.nickname)
			} else {
				errutil.AssertErrorCode(t, err, tt.wantCode)
			}
		}
	})
}

func TestValidatePassword(t *testing.T) {
	t.Run("valid password with confirmation", func(t *testing.T) {
		require.NoError(t, auth.ValidatePassword("Passw0rd!", "Passw0rd!"))
	})

	t.Run("space counts as a symbol", func(t *testing.T) {
		require.NoError(t, auth.ValidatePassword("Pass w0rd", "Pass w0rd"))
	})

	t.Run("blank password", func(t *testing.T) {
		err := auth.ValidatePassword("", "whatever")
		errutil.AssertErrorCode(t, err, "AUTH_PASSWORD_BLANK")
	})

	t.Run("pattern violations", func(t *testing.T) {
		bad := []string{
			"Sh0rt!a",               // 7 chars
			"Toolongpassword0!plus", // 21 chars
			"alllower0!",            // no uppercase
			"ALLUPPER0!",            // no lowercase
			"NoDigits!!",            // no digit
			"NoSymbol00",            // no symbol
			"BadSym0l~~",            // symbol outside the allowed set
		}
		for _, password := range bad {
			err := auth.ValidatePassword(password, password)
			errutil.AssertErrorCode(t, err, "AUTH_PASSWORD_PATTERN")
		}
	})

	t.Run("pattern is checked before confirmation", func(t *testing.T) {
		err := auth.ValidatePassword("weak", "")
		errutil.AssertErrorCode(t, err, "AUTH_PASSWORD_PATTERN")
	})

	t.Run("blank confirmation", func(t *testing.T) {
		err := auth.ValidatePassword("Passw0rd!", "")
		errutil.AssertErrorCode(t, err, "AUTH_PASSWORD_CONFIRM_BLANK")
	})

	t.Run("mismatched confirmation", func(t *testing.T) {
		err := auth.ValidatePassword("Passw0rd!", "Passw0rd?")
		errutil.AssertErrorCode(t, err, "AUTH_PASSWORD_MISMATCH")
	})
}
