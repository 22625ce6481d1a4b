package models

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateCheckInRequest is the body of POST /wellness/checkins.
// Mood is a pointer so that a missing field can be told apart from mood 0.
type CreateCheckInRequest struct {
	Mood    *int   `json:"mood"`
	Journal string `json:"journal"`
}

// ChatMessageRequest is the body of POST /chat/message.
type ChatMessageRequest struct {
	Message string `json:"message"`
}
