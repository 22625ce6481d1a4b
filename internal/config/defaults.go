package config

import (
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
)

// defaults returns the configuration used for every field left unset by
// all sources.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "wellness-api",
			TokenDuration:    30 * time.Minute,
			PasswordHashCost: 10,
			Version:          "1.0.0",
			LogLevel:         "debug",
		},
		Storage: Storage{
			DB: DB{
				DSN: "wellness.db",
			},
		},
		Server: Server{
			HTTPAddress:     ":8000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Chatbot: Chatbot{
			Timeout:   10 * time.Second,
			MaxLength: 150,
		},
		Chat: Chat{
			ContextTTL:         24 * time.Hour,
			MaxMessagesPerUser: 200,
			JanitorInterval:    10 * time.Minute,
		},
		RateLimit: RateLimit{
			RequestsPerSecond: 5,
			Burst:             10,
		},
	}
}

// applyDefaults fills zero fields from [defaults] and infers the database
// driver from the DSN when none was given.
func (cfg *StructuredConfig) applyDefaults() error {
	if err := mergo.Merge(cfg, defaults()); err != nil {
		return fmt.Errorf("error applying default configs: %w", err)
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = InferDriver(cfg.Storage.DB.DSN)
	}

	return nil
}

// InferDriver picks the database/sql driver for dsn: PostgreSQL URLs and
// key=value connection strings select [DriverPostgres], anything else is
// treated as a SQLite database path.
func InferDriver(dsn string) string {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	switch {
	case strings.HasPrefix(lower, "postgres://"),
		strings.HasPrefix(lower, "postgresql://"),
		strings.Contains(lower, "host="):
		return DriverPostgres
	default:
		return DriverSQLite
	}
}
