package adapter

import "errors"

var (
	ErrGeneratorNotConfigured = errors.New("text generator endpoint is not configured")
	ErrInvalidEndpoint        = errors.New("invalid text generator endpoint")

	ErrGeneratorUnavailable = errors.New("text generator unavailable")
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("text generator rejected credentials")
	ErrNotFound             = errors.New("model not found")
	ErrRateLimited          = errors.New("text generator rate limit exceeded")
	ErrModelLoading         = errors.New("model is loading")

	ErrEmptyCompletion = errors.New("text generator returned an empty completion")
	ErrDecodeResponse  = errors.New("cannot decode text generator response")
)
