package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or an unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidChatConfigs indicates invalid chatbot or conversation
	// settings (for example, a zero context TTL).
	ErrInvalidChatConfigs = errors.New("invalid chat configuration")
	// ErrInvalidRateLimitConfigs indicates a non-positive rate or burst.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
)
