// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account of the wellness service.
// PasswordHash is a bcrypt digest and must never leave the server.
type User struct {
	// ID is the server-assigned numeric identifier.
	ID int64 `json:"id"`

	// Email is the unique login of the user, always stored in lower case.
	Email string `json:"email"`

	// PasswordHash is the salted one-way hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the moment the account was registered.
	CreatedAt time.Time `json:"created_at"`

	// IsActive reports whether the account may authenticate. Deactivating an
	// account invalidates every outstanding session token on the next request.
	IsActive bool `json:"is_active"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
