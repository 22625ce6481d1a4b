// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wellness/models"
)

func intPtr(v int) *int { return &v }

func TestNewWellnessValidator(t *testing.T) {
	require.NotNil(t, NewWellnessValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewWellnessValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	err := NewWellnessValidator().Validate(context.Background(), models.ChatMessageRequest{Message: "hi"}, "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_CheckIn(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateCheckInRequest
		want error
	}{
		{name: "valid lowest", req: models.CreateCheckInRequest{Mood: intPtr(0), Journal: "rough day"}},
		{name: "valid highest", req: models.CreateCheckInRequest{Mood: intPtr(5), Journal: "great"}},
		{name: "missing mood", req: models.CreateCheckInRequest{Journal: "x"}, want: ErrMissingMood},
		{name: "mood below range", req: models.CreateCheckInRequest{Mood: intPtr(-1), Journal: "x"}, want: ErrInvalidMood},
		{name: "mood above range", req: models.CreateCheckInRequest{Mood: intPtr(6), Journal: "x"}, want: ErrInvalidMood},
		{name: "empty journal", req: models.CreateCheckInRequest{Mood: intPtr(3)}, want: ErrEmptyJournal},
		{name: "blank journal", req: models.CreateCheckInRequest{Mood: intPtr(3), Journal: " \n\t "}, want: ErrEmptyJournal},
		{name: "journal at limit", req: models.CreateCheckInRequest{Mood: intPtr(3), Journal: strings.Repeat("é", MaxJournalLength)}},
		{name: "journal over limit", req: models.CreateCheckInRequest{Mood: intPtr(3), Journal: strings.Repeat("a", MaxJournalLength+1)}, want: ErrJournalTooLong},
	}

	v := NewWellnessValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)

			// pointer form behaves the same
			assert.ErrorIs(t, v.Validate(context.Background(), &tt.req), tt.want)
		})
	}
}

func TestValidate_CheckIn_FieldScoped(t *testing.T) {
	v := NewWellnessValidator()
	req := models.CreateCheckInRequest{Mood: intPtr(9)}

	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldJournal), ErrEmptyJournal)
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldMood), ErrInvalidMood)
}

func TestValidate_Register(t *testing.T) {
	tests := []struct {
		name string
		req  models.RegisterRequest
		want error
	}{
		{name: "valid", req: models.RegisterRequest{Email: "alice@example.com", Password: "password1"}},
		{name: "valid with spaces around email", req: models.RegisterRequest{Email: "  Alice@Example.com ", Password: "password1"}},
		{name: "empty email", req: models.RegisterRequest{Password: "password1"}, want: ErrInvalidEmail},
		{name: "no at sign", req: models.RegisterRequest{Email: "alice.example.com", Password: "password1"}, want: ErrInvalidEmail},
		{name: "display name", req: models.RegisterRequest{Email: "Alice <alice@example.com>", Password: "password1"}, want: ErrInvalidEmail},
		{name: "no dot in domain", req: models.RegisterRequest{Email: "alice@localhost", Password: "password1"}, want: ErrInvalidEmail},
		{name: "short password", req: models.RegisterRequest{Email: "alice@example.com", Password: "1234567"}, want: ErrPasswordTooShort},
		{name: "eight characters", req: models.RegisterRequest{Email: "alice@example.com", Password: "12345678"}},
		{name: "password over bcrypt limit", req: models.RegisterRequest{Email: "alice@example.com", Password: strings.Repeat("p", 73)}, want: ErrPasswordTooLong},
	}

	v := NewWellnessValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_Login(t *testing.T) {
	v := NewWellnessValidator()

	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Email: "a@b.io", Password: "x"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{Email: "a@b.io"}), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.LoginRequest{Email: "nope", Password: "x"}), ErrInvalidEmail)
}

func TestValidate_ChatMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    error
	}{
		{name: "valid", message: "I feel stressed"},
		{name: "empty", message: "", want: ErrEmptyMessage},
		{name: "whitespace only", message: "   \t\n", want: ErrEmptyMessage},
		{name: "exactly 500", message: strings.Repeat("a", 500)},
		{name: "501", message: strings.Repeat("a", 501), want: ErrMessageTooLong},
		{name: "500 multibyte", message: strings.Repeat("ü", 500)},
		{name: "padding counts", message: " " + strings.Repeat("a", 500), want: ErrMessageTooLong},
	}

	v := NewWellnessValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), models.ChatMessageRequest{Message: tt.message})
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
