// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package auth

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/samber/oops"
)

// passwordSymbols is the allowed symbol set for passwords; at least one is
// required. The set includes a space.
const passwordSymbols = "#?!@$ %^&*-"

// Password length bounds.
const (
	minPasswordLength = 8
	maxPasswordLength = 20
)

// Validator checks registration candidates against pattern rules and the
// identity store. For usernames and nicknames the check order is fixed:
// uniqueness first, then blank, then pattern — a candidate that is both
// taken and malformed reports the duplicate.
type Validator struct {
	accounts AccountRepository
}

// NewValidator creates a Validator backed by the given account repository.
func NewValidator(accounts AccountRepository) *Validator {
	return &Validator{accounts: accounts}
}

// ValidateUsername validates a candidate username.
func (v *Validator) ValidateUsername(ctx context.Context, username string) error {
	_, err := v.accounts.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return oops.Code(CodeUsernameTaken).
			With("username", username).
			Errorf("username %q is already registered", username)
	case !errors.Is(err, ErrNotFound):
		return oops.Code("AUTH_LOOKUP_FAILED").
			With("operation", "get account by username").
			Wrap(err)
	}
	if username == "" {
		return oops.Code(CodeUsernameBlank).Errorf("username cannot be empty")
	}
	if !usernameRegex.MatchString(username) {
		return oops.Code(CodeUsernamePattern).
			With("username", username).
			Errorf("username must look like an email address")
	}
	return nil
}

// ValidateNickname validates a candidate nickname and returns it unchanged
// on success.
func (v *Validator) ValidateNickname(ctx context.Context, nickname string) (string, error) {
	_, err := v.accounts.GetByNickname(ctx, nickname)
	switch {
	case err == nil:
		return "", oops.Code(CodeNicknameTaken).
			With("nickname", nickname).
			Errorf("nickname %q is already in use", nickname)
	case !errors.Is(err, ErrNotFound):
		return "", oops.Code("AUTH_LOOKUP_FAILED").
			With("operation", "get account by nickname").
			Wrap(err)
	}
	if nickname == "" {
		return "", oops.Code(CodeNicknameBlank).Errorf("nickname cannot be empty")
	}
	if !nicknameRegex.MatchString(nickname) {
		return "", oops.Code(CodeNicknamePattern).
			With("nickname", nickname).
			Errorf("nickname must be 2-8 non-whitespace characters")
	}
	return nickname, nil
}

// ValidatePassword validates a candidate password and its confirmation.
// Passwords must be 8-20 characters with at least one uppercase letter, one
// lowercase letter, one digit, and one symbol from the allowed set.
func ValidatePassword(password, confirmation string) error {
	if password == "" {
		return oops.Code(CodePasswordBlank).Errorf("password cannot be empty")
	}
	if !validPassword(password) {
		return oops.Code(CodePasswordPattern).
			Errorf("password must be %d-%d characters with an uppercase letter, a lowercase letter, a digit, and a symbol",
				minPasswordLength, maxPasswordLength)
	}
	if confirmation == "" {
		return oops.Code(CodePasswordConfirmBlank).Errorf("password confirmation cannot be empty")
	}
	if password != confirmation {
		return oops.Code(CodePasswordMismatch).Errorf("password and confirmation do not match")
	}
	return nil
}

func validPassword(password string) bool {
	runes := []rune(password)
	if len(runes) < minPasswordLength || len(runes) > maxPasswordLength {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}
