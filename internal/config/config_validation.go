// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// errors wrapped with a description of the offending field.
func (cfg *StructuredConfig) validate() error {
	app := cfg.App
	if app.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if app.TokenIssuer == "" || app.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and a positive token duration are required", ErrInvalidAppConfigs)
	}
	if app.PasswordHashCost < bcrypt.MinCost || app.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d out of range", ErrInvalidAppConfigs, app.PasswordHashCost)
	}

	db := cfg.Storage.DB
	if db.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	if db.Driver != DriverPostgres && db.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	srv := cfg.Server
	if srv.HTTPAddress == "" || srv.RequestTimeout <= 0 || srv.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: address and positive timeouts are required", ErrInvalidServerConfigs)
	}

	if cfg.Chatbot.Timeout <= 0 || cfg.Chatbot.MaxLength <= 0 {
		return fmt.Errorf("%w: chatbot timeout and max length must be positive", ErrInvalidChatConfigs)
	}
	chat := cfg.Chat
	if chat.ContextTTL <= 0 || chat.MaxMessagesPerUser <= 0 || chat.JanitorInterval <= 0 {
		return fmt.Errorf("%w: context ttl, max messages and janitor interval must be positive", ErrInvalidChatConfigs)
	}

	if cfg.RateLimit.RequestsPerSecond <= 0 || cfg.RateLimit.Burst <= 0 {
		return fmt.Errorf("%w: rate and burst must be positive", ErrInvalidRateLimitConfigs)
	}

	return nil
}
