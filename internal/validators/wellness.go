package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-wellness/models"
)

const (
	FieldMood     = "mood"
	FieldJournal  = "journal"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldMessage  = "message"
)

const (
	// MaxJournalLength is counted in characters.
	MaxJournalLength = 5000
	// MaxMessageLength is counted in characters, before trimming.
	MaxMessageLength = 500
	// MinPasswordLength is counted in characters.
	MinPasswordLength = 8
	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
)

// WellnessValidator validates the request bodies of the wellness API.
type WellnessValidator struct{}

func NewWellnessValidator() Validator {
	return &WellnessValidator{}
}

// Validate implements [Validator]. Supported values are the request models
// of the API, by value or by pointer. When fields are given only those
// fields are checked.
func (v *WellnessValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateCheckInRequest:
		return v.validateCheckIn(value, fields...)
	case *models.CreateCheckInRequest:
		return v.validateCheckIn(*value, fields...)

	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.ChatMessageRequest:
		return v.validateChatMessage(value, fields...)
	case *models.ChatMessageRequest:
		return v.validateChatMessage(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *WellnessValidator) validateCheckIn(req models.CreateCheckInRequest, fields ...string) error {
	checks := map[string]func() error{
		FieldMood:    func() error { return validateMood(req.Mood) },
		FieldJournal: func() error { return validateJournal(req.Journal) },
	}
	return runChecks(checks, []string{FieldMood, FieldJournal}, fields)
}

func (v *WellnessValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	checks := map[string]func() error{
		FieldEmail:    func() error { return validateEmail(req.Email) },
		FieldPassword: func() error { return validateNewPassword(req.Password) },
	}
	return runChecks(checks, []string{FieldEmail, FieldPassword}, fields)
}

func (v *WellnessValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	checks := map[string]func() error{
		FieldEmail: func() error { return validateEmail(req.Email) },
		FieldPassword: func() error {
			if req.Password == "" {
				return ErrEmptyPassword
			}
			return nil
		},
	}
	return runChecks(checks, []string{FieldEmail, FieldPassword}, fields)
}

func (v *WellnessValidator) validateChatMessage(req models.ChatMessageRequest, fields ...string) error {
	checks := map[string]func() error{
		FieldMessage: func() error { return validateMessage(req.Message) },
	}
	return runChecks(checks, []string{FieldMessage}, fields)
}

// runChecks runs the checks named in fields, or all of them in order when
// fields is empty, and returns the first failure.
func runChecks(checks map[string]func() error, order []string, fields []string) error {
	if len(fields) == 0 {
		fields = order
	}

	for _, field := range fields {
		check, ok := checks[field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err := check(); err != nil {
			return err
		}
	}

	return nil
}

func validateMood(mood *int) error {
	if mood == nil {
		return ErrMissingMood
	}
	if *mood < models.MinMood || *mood > models.MaxMood {
		return fmt.Errorf("%w: got %d", ErrInvalidMood, *mood)
	}
	return nil
}

func validateJournal(journal string) error {
	trimmed := strings.TrimSpace(journal)
	if trimmed == "" {
		return ErrEmptyJournal
	}
	if utf8.RuneCountInString(trimmed) > MaxJournalLength {
		return fmt.Errorf("%w: max %d characters", ErrJournalTooLong, MaxJournalLength)
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}
	// reject display-name forms such as "Alice <alice@example.com>"
	if addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}
	if _, domain, _ := strings.Cut(addr.Address, "@"); !strings.Contains(domain, ".") {
		return ErrInvalidEmail
	}

	return nil
}

func validateNewPassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func validateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}
