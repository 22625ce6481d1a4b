// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// wellness HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place keeps the wording of the API
// consistent.
package app

const (
	// MsgNotAuthenticated is the body of every 401 produced by session
	// resolution. It never says which check failed.
	MsgNotAuthenticated = "Not authenticated"

	// MsgInvalidCredentials is returned when the email/password pair does
	// not match an account. Unknown email and wrong password look the same.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgAccountDisabled is returned on login to a deactivated account.
	MsgAccountDisabled = "User account is disabled"

	// MsgEmailAlreadyRegistered is returned when registering an email that
	// is already taken, compared case-insensitively.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgCheckInNotFound is returned for a missing check-in and for a
	// check-in owned by somebody else.
	MsgCheckInNotFound = "Check-in not found"

	// MsgTooManyRequests is returned when a client exhausts its rate limit.
	MsgTooManyRequests = "Too many requests"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUserCreated acknowledges a successful registration.
	MsgUserCreated = "User created successfully"

	// MsgChatContextCleared acknowledges DELETE /chat/context.
	MsgChatContextCleared = "Chat context cleared"
)
