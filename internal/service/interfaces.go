package service

import (
	"context"

	"github.com/MKhiriev/go-wellness/models"
)

// AuthService registers and authenticates users.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	Issue(ctx context.Context, userID int64) (models.Token, error)
	// Verify returns the user ID the token was issued for or one of
	// ErrTokenExpired, ErrTokenInvalidSignature and ErrTokenMalformed.
	Verify(ctx context.Context, tokenString string) (int64, error)
}

// SessionResolver maps the raw Authorization header of a request to an
// authenticated, active user. It is the only gate in front of owned data.
type SessionResolver interface {
	Resolve(ctx context.Context, authorizationHeader string) (models.User, error)
}

// CheckInService manages the check-ins of a user. Every call is scoped to
// userID; check-ins of other users behave as if they did not exist.
type CheckInService interface {
	Create(ctx context.Context, userID int64, req models.CreateCheckInRequest) (models.CheckIn, error)
	List(ctx context.Context, userID int64) ([]models.CheckIn, error)
	Get(ctx context.Context, userID, checkInID int64) (models.CheckIn, error)
	Delete(ctx context.Context, userID, checkInID int64) error
}

// StatsService computes aggregate statistics of a user's check-ins.
type StatsService interface {
	Stats(ctx context.Context, userID int64) (models.Stats, error)
}

// ChatService is the supportive chatbot. Generation failures are never
// returned to the caller; a scripted reply is used instead.
type ChatService interface {
	SendMessage(ctx context.Context, userID int64, message string) (models.ChatReply, error)
	Context(ctx context.Context, userID int64, limit int) ([]models.ChatMessage, error)
	ClearContext(ctx context.Context, userID int64) error
	SuggestedQuestions(ctx context.Context, userID int64) (models.SuggestedQuestions, error)
}

// AppInfoService answers the informational endpoints.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Info(ctx context.Context) models.InfoResponse
	// Health always answers; a failing database ping turns the status to
	// "degraded".
	Health(ctx context.Context) models.HealthResponse
}

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// CheckInServiceWrapper defines middleware composition for CheckInService.
type CheckInServiceWrapper interface {
	Wrap(CheckInService) CheckInService
}
