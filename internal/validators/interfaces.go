// Package validators checks request bodies of the wellness API before they
// reach a service: check-in moods and journals, credentials and chat
// messages.
//
// Failures are returned as the sentinels in errors.go so callers can match
// them with errors.Is and wrap them into service.ErrValidation.
package validators

import "context"

// Validator checks obj. With fields given, only those named fields of obj
// are checked; an unknown name yields ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
