// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package auth

// Stable error codes attached to oops errors. The HTTP layer maps these to
// status codes; tests assert on them.
const (
	CodeUsernameBlank        = "AUTH_USERNAME_BLANK"
	CodeUsernameTaken        = "AUTH_USERNAME_TAKEN"
	CodeUsernamePattern      = "AUTH_USERNAME_PATTERN"
	CodeNicknameBlank        = "AUTH_NICKNAME_BLANK"
	CodeNicknameTaken        = "AUTH_NICKNAME_TAKEN"
	CodeNicknamePattern      = "AUTH_NICKNAME_PATTERN"
	CodePasswordBlank        = "AUTH_PASSWORD_BLANK"
	CodePasswordPattern      = "AUTH_PASSWORD_PATTERN"
	CodePasswordConfirmBlank = "AUTH_PASSWORD_CONFIRM_BLANK"
	CodePasswordMismatch     = "AUTH_PASSWORD_MISMATCH"

	CodeClassifyIncomplete = "CLASSIFY_INCOMPLETE"
	CodeClassifyUnknown    = "CLASSIFY_UNKNOWN"

	CodeAdminTokenMismatch      = "AUTH_ADMIN_TOKEN_MISMATCH"
	CodeProfileSelectionMissing = "PROFILE_SELECTION_MISSING"
	CodeProfileSelectionEmpty   = "PROFILE_SELECTION_EMPTY"
	CodeProfileUnresolved       = "PROFILE_UNRESOLVED"
	CodeProfileNoneFound        = "PROFILE_NONE_FOUND"

	CodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	CodeRefreshInvalid     = "AUTH_REFRESH_INVALID"
	CodeUserUnknown        = "AUTH_USER_UNKNOWN"
)
