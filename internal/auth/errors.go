// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package auth

import "errors"

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrUsernameTaken and ErrNicknameTaken are surfaced by the identity store
// when an insert trips the corresponding unique constraint. The registration
// orchestrator remaps them to the coded duplicate errors.
var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrNicknameTaken = errors.New("nickname already taken")
)
