package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingMood    = errors.New("mood is required")
	ErrInvalidMood    = errors.New("mood must be between 0 and 5")
	ErrEmptyJournal   = errors.New("journal entry cannot be empty")
	ErrJournalTooLong = errors.New("journal entry is too long")

	ErrInvalidEmail     = errors.New("value is not a valid email address")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes long")

	ErrEmptyMessage   = errors.New("message cannot be empty")
	ErrMessageTooLong = errors.New("message is too long (max 500 characters)")
)
