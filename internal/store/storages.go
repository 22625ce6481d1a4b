package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wellness/internal/config"
	"github.com/MKhiriev/go-wellness/internal/logger"
)

// Storages bundles every persistence component of the service. The
// relational repositories share one connection pool; the conversation
// store lives in process memory.
type Storages struct {
	UserRepository    UserRepository
	CheckInRepository CheckInRepository
	ConversationStore ConversationStore

	db *DB
}

// NewStorages connects to the configured database, applies pending
// migrations and constructs all repositories.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, cfg.Chat, log), nil
}

func newStorages(db *DB, chat config.Chat, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		CheckInRepository: NewCheckInRepository(db, log),
		ConversationStore: NewMemoryConversationStore(chat),
		db:                db,
	}
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// PingContext reports whether the database is reachable.
func (s *Storages) PingContext(ctx context.Context) error {
	if s.db == nil {
		return ErrDatabaseNotConnected
	}
	return s.db.PingContext(ctx)
}
