// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

// Package auth implements the identity subsystem: candidate validation,
// personality classification, profile provisioning, registration, login,
// and access-token refresh.
package auth
