// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType is the scheme name returned to clients together with an access
// token and expected back in the Authorization header.
const TokenType = "bearer"

// Claims is the JWT claim set of a session token. The user identifier is
// carried in the standard "sub" claim.
type Claims struct {
	jwt.RegisteredClaims
}

// Token is an issued or verified session token.
//
// Tokens are stateless: nothing about them is persisted, the signature and
// the expiry are checked on every request.
type Token struct {
	// SignedString is the compact JWS representation
	// (base64url header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "sub" claim.
	UserID int64 `json:"-"`

	// ExpiresAt is the moment after which the token is rejected. It is
	// truncated to whole seconds like the exp claim.
	ExpiresAt time.Time `json:"-"`

	// Lifetime is the configured validity of the token at issue time.
	Lifetime time.Duration `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// ExpiresIn returns the lifetime of a freshly issued token in whole
// seconds, as reported to the client on login.
func (t Token) ExpiresIn() int64 {
	return int64(t.Lifetime / time.Second)
}
