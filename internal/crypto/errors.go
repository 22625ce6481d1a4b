package crypto

import "errors"

var (
	ErrPasswordMismatch = errors.New("password does not match")
	ErrInvalidCost      = errors.New("invalid bcrypt cost")
	ErrHashingPassword  = errors.New("error hashing password")
)
