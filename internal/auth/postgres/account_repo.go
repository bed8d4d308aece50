// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/seesaw/seesaw/internal/auth"
	"github.com/seesaw/seesaw/internal/store"
)

// Unique constraint names from the users table. Create maps violations of
// these to the matching sentinel so the registration orchestrator can remap
// races that slipped past the fast-path uniqueness check.
const (
	usernameConstraint = "users_username_key"
	nicknameConstraint = "users_nickname_key"
)

// AccountRepository implements auth.AccountRepository using PostgreSQL.
type AccountRepository struct {
	pool store.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool store.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create stores a new account.
func (r *AccountRepository) Create(ctx context.Context, account *auth.Account) error {
	_, err := store.Conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO users (
			id, username, password_hash, nickname, generation,
			post_count, classification, role, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		account.ID.String(),
		account.Username,
		account.PasswordHash,
		account.Nickname,
		account.Generation,
		account.PostCount,
		account.Classification,
		string(account.Role),
		account.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			switch pgErr.ConstraintName {
			case usernameConstraint:
				return oops.With("username", account.Username).Wrap(auth.ErrUsernameTaken)
			case nicknameConstraint:
				return oops.With("nickname", account.Nickname).Wrap(auth.ErrNicknameTaken)
			}
		}
		return oops.Code("ACCOUNT_CREATE_FAILED").
			With("operation", "insert account").
			With("username", account.Username).
			Wrap(err)
	}
	return nil
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id ulid.ULID) (*auth.Account, error) {
	row := store.Conn(ctx, r.pool).QueryRow(ctx, `
		SELECT id, username, password_hash, nickname, generation,
		       post_count, classification, role, created_at
		FROM users
		WHERE id = $1
	`, id.String())

	account, err := r.scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ACCOUNT_NOT_FOUND").
			With("id", id.String()).
			Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("ACCOUNT_GET_BY_ID_FAILED").
			With("operation", "get account by id").
			With("id", id.String()).
			Wrap(err)
	}
	return account, nil
}

// GetByUsername retrieves an account by username.
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*auth.Account, error) {
	row := store.Conn(ctx, r.pool).QueryRow(ctx, `
		SELECT id, username, password_hash, nickname, generation,
		       post_count, classification, role, created_at
		FROM users
		WHERE username = $1
	`, username)

	account, err := r.scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ACCOUNT_NOT_FOUND").
			With("username", username).
			Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("ACCOUNT_GET_BY_USERNAME_FAILED").
			With("operation", "get account by username").
			With("username", username).
			Wrap(err)
	}
	return account, nil
}

// GetByNickname retrieves an account by nickname.
func (r *AccountRepository) GetByNickname(ctx context.Context, nickname string) (*auth.Account, error) {
	row := store.Conn(ctx, r.pool).QueryRow(ctx, `
		SELECT id, username, password_hash, nickname, generation,
		       post_count, classification, role, created_at
		FROM users
		WHERE nickname = $1
	`, nickname)

	account, err := r.scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ACCOUNT_NOT_FOUND").
			With("nickname", nickname).
			Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("ACCOUNT_GET_BY_NICKNAME_FAILED").
			With("operation", "get account by nickname").
			With("nickname", nickname).
			Wrap(err)
	}
	return account, nil
}

// scanAccount scans a single row into an Account.
// Callers are responsible for handling pgx.ErrNoRows.
func (r *AccountRepository) scanAccount(row pgx.Row) (*auth.Account, error) {
	var (
		idStr          string
		username       string
		passwordHash   string
		nickname       string
		generation     string
		postCount      int64
		classification string
		role           string
		createdAt      time.Time
	)

	err := row.Scan(
		&idStr,
		&username,
		&passwordHash,
		&nickname,
		&generation,
		&postCount,
		&classification,
		&role,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err //nolint:wrapcheck // Callers wrap with context-specific info
		}
		return nil, oops.Code("ACCOUNT_SCAN_FAILED").
			With("operation", "scan account").
			Wrap(err)
	}

	id, err := ulid.Parse(idStr)
	if err != nil {
		return nil, oops.Code("ACCOUNT_INVALID_ID").
			With("operation", "parse account id").
			With("id", idStr).
			Wrap(err)
	}

	return &auth.Account{
		ID:             id,
		Username:       username,
		PasswordHash:   passwordHash,
		Nickname:       nickname,
		Generation:     generation,
		PostCount:      postCount,
		Classification: classification,
		Role:           auth.Role(role),
		CreatedAt:      createdAt,
	}, nil
}

// Compile-time interface check.
var _ auth.AccountRepository = (*AccountRepository)(nil)
