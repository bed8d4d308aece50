// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/oops"
)

// TokenCodec issues and decodes the bearer tokens used by the HTTP layer.
type TokenCodec interface {
	// IssueAccessToken mints a short-lived access token for the account.
	IssueAccessToken(account *Account) (string, error)

	// IssueRefreshToken mints a long-lived refresh token for the account.
	IssueRefreshToken(account *Account) (string, error)

	// DecodeUsername verifies the token signature and expiry and returns
	// the username it was issued for.
	DecodeUsername(token string) (string, error)
}

// Claims embeds the registered JWT claims and carries the account role so
// middleware can gate admin routes without a database round trip.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// JWTCodec implements TokenCodec with HS256-signed JWTs. The username is the
// subject claim.
type JWTCodec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTCodec creates a JWTCodec signing with the given secret.
func NewJWTCodec(secret []byte, accessTTL, refreshTTL time.Duration) *JWTCodec {
	return &JWTCodec{secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// IssueAccessToken mints an access token valid for the configured access TTL.
func (c *JWTCodec) IssueAccessToken(account *Account) (string, error) {
	return c.issue(account, c.accessTTL)
}

// IssueRefreshToken mints a refresh token valid for the configured refresh TTL.
func (c *JWTCodec) IssueRefreshToken(account *Account) (string, error) {
	return c.issue(account, c.refreshTTL)
}

func (c *JWTCodec) issue(account *Account, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: string(account.Role),
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", oops.Code("AUTH_TOKEN_SIGN_FAILED").Wrap(err)
	}
	return signed, nil
}

// DecodeUsername verifies the token and returns its subject.
func (c *JWTCodec) DecodeUsername(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", oops.Code("AUTH_TOKEN_DECODE_FAILED").Wrap(err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", oops.Code("AUTH_TOKEN_DECODE_FAILED").Errorf("token has no subject")
	}
	return claims.Subject, nil
}
