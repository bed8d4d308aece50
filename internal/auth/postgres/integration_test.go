// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seesaw/seesaw/internal/auth"
	"github.com/seesaw/seesaw/internal/auth/postgres"
	"github.com/seesaw/seesaw/internal/store"
)

func newAccount(username, nickname string) *auth.Account {
	return &auth.Account{
		ID:             ulid.Make(),
		Username:       username,
		PasswordHash:   "$argon2id$hash",
		Nickname:       nickname,
		Generation:     "3",
		Classification: "the logistician",
		Role:           auth.RoleUser,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}

func cleanupAccount(t *testing.T, id ulid.ULID) {
	t.Cleanup(func() {
		_, _ = testPool.Exec(context.Background(),
			`DELETE FROM users WHERE id = $1`, id.String())
	})
}

func TestAccountRepository_Integration(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewAccountRepository(testPool)

	t.Run("create and read back", func(t *testing.T) {
		account := newAccount("it_create@example.com", "itcreate")
		require.NoError(t, repo.Create(ctx, account))
		cleanupAccount(t, account.ID)

		stored, err := repo.GetByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, account.Username, stored.Username)
		assert.Equal(t, account.Nickname, stored.Nickname)
		assert.Equal(t, account.Classification, stored.Classification)
		assert.Equal(t, auth.RoleUser, stored.Role)

		byUsername, err := repo.GetByUsername(ctx, account.Username)
		require.NoError(t, err)
		assert.Equal(t, account.ID, byUsername.ID)

		byNickname, err := repo.GetByNickname(ctx, account.Nickname)
		require.NoError(t, err)
		assert.Equal(t, account.ID, byNickname.ID)
	})

	t.Run("missing account wraps ErrNotFound", func(t *testing.T) {
		_, err := repo.GetByUsername(ctx, "missing@example.com")
		assert.ErrorIs(t, err, auth.ErrNotFound)
	})

	t.Run("duplicate username maps to sentinel", func(t *testing.T) {
		first := newAccount("it_dup@example.com", "itdupone")
		require.NoError(t, repo.Create(ctx, first))
		cleanupAccount(t, first.ID)

		second := newAccount("it_dup@example.com", "itduptwo")
		err := repo.Create(ctx, second)
		assert.ErrorIs(t, err, auth.ErrUsernameTaken)
	})

	t.Run("duplicate nickname maps to sentinel", func(t *testing.T) {
		first := newAccount("it_nick1@example.com", "itnick")
		require.NoError(t, repo.Create(ctx, first))
		cleanupAccount(t, first.ID)

		second := newAccount("it_nick2@example.com", "itnick")
		err := repo.Create(ctx, second)
		assert.ErrorIs(t, err, auth.ErrNicknameTaken)
	})
}

func TestTransactor_Integration(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewAccountRepository(testPool)
	profiles := postgres.NewProfileRepository(testPool)
	tr := store.NewTransactor(testPool)

	seedProfile := func(t *testing.T, id int64) {
		_, err := testPool.Exec(ctx,
			`INSERT INTO profile_definitions (id, category, image_url)
			 VALUES ($1, 'face', 'face.png') ON CONFLICT (id) DO NOTHING`, id)
		require.NoError(t, err)
		t.Cleanup(func() {
			_, _ = testPool.Exec(ctx, `DELETE FROM profile_definitions WHERE id = $1`, id)
		})
	}

	t.Run("commit persists account and assignment together", func(t *testing.T) {
		seedProfile(t, 9001)
		account := newAccount("it_tx_ok@example.com", "ittxok")
		cleanupAccount(t, account.ID)

		err := tr.InTransaction(ctx, func(txCtx context.Context) error {
			if err := repo.Create(txCtx, account); err != nil {
				return err
			}
			return profiles.Create(txCtx, &auth.ProfileAssignment{
				ID:        ulid.Make(),
				AccountID: account.ID,
				ProfileID: 9001,
				CreatedAt: time.Now().UTC(),
			})
		})
		require.NoError(t, err)

		assignments, err := profiles.ListByAccount(ctx, account.ID)
		require.NoError(t, err)
		assert.Len(t, assignments, 1)
	})

	t.Run("rollback leaves no account behind", func(t *testing.T) {
		account := newAccount("it_tx_rb@example.com", "ittxrb")

		err := tr.InTransaction(ctx, func(txCtx context.Context) error {
			if err := repo.Create(txCtx, account); err != nil {
				return err
			}
			return errors.New("force rollback")
		})
		require.Error(t, err)

		_, err = repo.GetByID(ctx, account.ID)
		assert.ErrorIs(t, err, auth.ErrNotFound)
	})
}

func TestClassificationRepository_Integration(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewClassificationRepository(testPool)

	_, err := testPool.Exec(ctx,
		`INSERT INTO classifications (code, detail) VALUES ('ISTJ', 'the logistician')
		 ON CONFLICT (code) DO NOTHING`)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = testPool.Exec(ctx, `DELETE FROM classifications WHERE code = 'ISTJ'`)
	})

	detail, err := repo.FindByCode(ctx, "ISTJ")
	require.NoError(t, err)
	assert.Equal(t, "the logistician", detail)

	_, err = repo.FindByCode(ctx, "XXXX")
	assert.ErrorIs(t, err, auth.ErrNotFound)
}
