package service

import "errors"

var (
	// ErrValidation wraps every input validation failure; the concrete
	// reason is one of the validators errors.
	ErrValidation = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrAccountDisabled    = errors.New("account is disabled")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	ErrTokenMalformed        = errors.New("token is malformed")

	ErrMissingCredential = errors.New("missing credential")
	ErrMalformedHeader   = errors.New("malformed authorization header")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrUnknownUser       = errors.New("unknown user")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
