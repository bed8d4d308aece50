// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seesaw/seesaw/internal/auth"
	"github.com/seesaw/seesaw/internal/observability"
)

// accountContextKey is the gin context key holding the authenticated account.
const accountContextKey = "seesaw.account"

// RequireAuth authenticates a request by its Bearer token and stores the
// account in the gin context. Unauthenticated requests are rejected with 401.
func RequireAuth(codec auth.TokenCodec, accounts auth.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{
				Code:    "AUTH_UNAUTHENTICATED",
				Message: "missing bearer token",
			})
			return
		}

		username, err := codec.DecodeUsername(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{
				Code:    "AUTH_UNAUTHENTICATED",
				Message: "invalid bearer token",
			})
			return
		}

		account, err := accounts.GetByUsername(c.Request.Context(), username)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{
				Code:    "AUTH_UNAUTHENTICATED",
				Message: "unknown account",
			})
			return
		}

		c.Set(accountContextKey, account)
		c.Next()
	}
}

// AccountFromContext returns the account stored by RequireAuth.
func AccountFromContext(c *gin.Context) (*auth.Account, bool) {
	v, ok := c.Get(accountContextKey)
	if !ok {
		return nil, false
	}
	account, ok := v.(*auth.Account)
	return account, ok
}

// requestMetrics counts every request by method, matched route, and status.
func requestMetrics(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestsTotal.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}
