package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wellness/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the server-assigned ID.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrUserNotFound when no account has email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns ErrUserNotFound when no account has userID.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// CheckInRepository persists check-ins. Every read and delete is scoped to
// the owning user; another user's check-in behaves exactly like a missing one.
type CheckInRepository interface {
	CreateCheckIn(ctx context.Context, checkIn models.CheckIn) (models.CheckIn, error)
	ListCheckIns(ctx context.Context, userID int64) ([]models.CheckIn, error)
	GetCheckIn(ctx context.Context, userID, checkInID int64) (models.CheckIn, error)
	DeleteCheckIn(ctx context.Context, userID, checkInID int64) error
	LatestCheckIn(ctx context.Context, userID int64) (models.CheckIn, error)
}

// ConversationStore keeps per-user chat contexts in process memory.
// Implementations must be safe for concurrent use.
type ConversationStore interface {
	// Append adds messages to the end of the user's conversation.
	Append(userID int64, messages ...models.ChatMessage)
	// Recent returns up to limit of the newest messages, oldest first.
	// A non-positive limit returns the whole conversation.
	Recent(userID int64, limit int) []models.ChatMessage
	// Clear drops the user's conversation.
	Clear(userID int64)
	// EvictIdle drops every conversation not appended to since now minus the
	// configured TTL and reports how many were dropped.
	EvictIdle(now time.Time) int
	// Len reports the number of live conversations.
	Len() int
}
