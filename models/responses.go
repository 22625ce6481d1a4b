package models

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
	ID      int64  `json:"id"`
}

// TokenResponse is returned after a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// CheckInListResponse lists a user's check-ins, most recent first.
type CheckInListResponse struct {
	Count    int       `json:"count"`
	CheckIns []CheckIn `json:"checkins"`
}

// ChatContextResponse is the recent part of a user's conversation context.
type ChatContextResponse struct {
	UserID       int64         `json:"user_id"`
	MessageCount int           `json:"message_count"`
	Messages     []ChatMessage `json:"messages"`
}

// MessageResponse carries a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// InfoResponse is returned by the service root.
type InfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
