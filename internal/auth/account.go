// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package auth

import (
	"context"
	"regexp"
	"time"

	"github.com/oklog/ulid/v2"
)

// Role is the privilege level of an account.
type Role string

// Account roles. RoleAdmin is only granted when the registration request
// presents the configured admin token.
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Account is a registered user identity.
type Account struct {
	ID           ulid.ULID
	Username     string
	PasswordHash string
	Nickname     string
	Generation   string
	PostCount    int64
	// Classification holds the resolved descriptor text, not the raw
	// 4-letter code.
	Classification string
	Role           Role
	CreatedAt      time.Time
}

// usernameRegex matches email-shaped usernames: local@domain.tld with an
// optional extra suffix (e.g. user@example.co.kr).
var usernameRegex = regexp.MustCompile(`^\w+@\w+\.\w+(\.\w+)?$`)

// nicknameRegex matches 2-8 non-whitespace characters.
var nicknameRegex = regexp.MustCompile(`^\S{2,8}$`)

// AccountRepository manages account persistence. Create must enforce the
// username and nickname unique constraints and surface violations as
// ErrUsernameTaken / ErrNicknameTaken; uniqueness pre-checks in the
// validation engine are a fast path only.
type AccountRepository interface {
	// Create stores a new account.
	Create(ctx context.Context, account *Account) error

	// GetByID retrieves an account by ID.
	GetByID(ctx context.Context, id ulid.ULID) (*Account, error)

	// GetByUsername retrieves an account by username.
	GetByUsername(ctx context.Context, username string) (*Account, error)

	// GetByNickname retrieves an account by nickname.
	GetByNickname(ctx context.Context, nickname string) (*Account, error)
}
