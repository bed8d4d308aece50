// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seesaw/seesaw/internal/auth"
	"github.com/seesaw/seesaw/internal/post"
	"github.com/seesaw/seesaw/pkg/errutil"
)

// errorResponse is the wire shape of every error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusByCode maps stable error codes to HTTP statuses. Codes not listed
// here are treated as internal errors.
var statusByCode = map[string]int{
	auth.CodeUsernameBlank:        http.StatusBadRequest,
	auth.CodeUsernamePattern:      http.StatusBadRequest,
	auth.CodeNicknameBlank:        http.StatusBadRequest,
	auth.CodeNicknamePattern:      http.StatusBadRequest,
	auth.CodePasswordBlank:        http.StatusBadRequest,
	auth.CodePasswordPattern:      http.StatusBadRequest,
	auth.CodePasswordConfirmBlank: http.StatusBadRequest,
	auth.CodePasswordMismatch:     http.StatusBadRequest,
	auth.CodeClassifyIncomplete:   http.StatusBadRequest,
	auth.CodeClassifyUnknown:      http.StatusBadRequest,

	auth.CodeProfileSelectionMissing: http.StatusBadRequest,
	auth.CodeProfileSelectionEmpty:   http.StatusBadRequest,

	auth.CodeUsernameTaken: http.StatusConflict,
	auth.CodeNicknameTaken: http.StatusConflict,

	auth.CodeAdminTokenMismatch: http.StatusUnauthorized,
	auth.CodeInvalidCredentials: http.StatusUnauthorized,
	auth.CodeRefreshInvalid:     http.StatusUnauthorized,
	auth.CodeUserUnknown:        http.StatusUnauthorized,

	auth.CodeProfileUnresolved: http.StatusNotFound,
	auth.CodeProfileNoneFound:  http.StatusNotFound,

	post.CodeNotFound:        http.StatusNotFound,
	post.CodeScrapMissing:    http.StatusNotFound,
	post.CodeTitleTaken:      http.StatusConflict,
	post.CodeAlreadyScrapped: http.StatusConflict,
	post.CodeForbidden:       http.StatusForbidden,
}

// respondError writes the error body for err. Internal errors are logged
// with full context and reported to the client without detail.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	code := errutil.Code(err)
	status, known := statusByCode[code]
	if !known {
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		errutil.LogError(logger, "request failed", err)
		c.JSON(status, errorResponse{Code: "INTERNAL", Message: "internal server error"})
		return
	}
	c.JSON(status, errorResponse{Code: code, Message: err.Error()})
}

// respondBadRequest writes a 400 for a malformed request body or parameter.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: message})
}
