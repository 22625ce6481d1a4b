package utils

import "errors"

var (
	ErrInvalidJWTParams           = errors.New("invalid params for generating JWT token")
	ErrUnexpectedSigningMethod    = errors.New("unexpected signing method")
	ErrEmptySubject               = errors.New("empty subject")
	ErrInvalidSubject             = errors.New("subject is not a user id")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
