// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wellness/internal/crypto"
	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/mock"
	"github.com/MKhiriev/go-wellness/internal/store"
	"github.com/MKhiriev/go-wellness/internal/validators"
	"github.com/MKhiriev/go-wellness/models"
)

var (
	fixedNow   = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	errStorage = errors.New("storage error")
)

// newTestAuthSvc builds an authService over mocks.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthService(repo, hasher, logger.Nop()).(*authService)
	svc.now = func() time.Time { return fixedNow }

	return svc, repo, hasher
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{}, store.ErrUserNotFound),
		hasher.EXPECT().Hash("password1").Return("$2a$hash", nil),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "alice@example.com", u.Email)
				assert.Equal(t, "$2a$hash", u.PasswordHash)
				assert.True(t, u.IsActive)
				assert.Equal(t, fixedNow, u.CreatedAt)
				u.ID = 7
				return u, nil
			},
		),
	)

	user, err := svc.RegisterUser(ctx, models.RegisterRequest{Email: "  Alice@Example.COM ", Password: "password1"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestAuthService_RegisterUser_DuplicateFoundByLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").Return(models.User{ID: 1}, nil)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Email: "ALICE@example.com", Password: "password1"})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterUser_DuplicateCaughtByIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Email: "a@b.io", Password: "password1"})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterUser_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, errStorage)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Email: "a@b.io", Password: "password1"})

	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterUser_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Hash(gomock.Any()).Return("", crypto.ErrHashingPassword)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Email: "a@b.io", Password: "password1"})

	assert.ErrorIs(t, err, crypto.ErrHashingPassword)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	stored := models.User{ID: 3, Email: "bob@example.com", PasswordHash: "h", IsActive: true}
	repo.EXPECT().FindUserByEmail(gomock.Any(), "bob@example.com").Return(stored, nil)
	hasher.EXPECT().Compare("h", "password1").Return(nil)

	user, err := svc.Login(context.Background(), models.LoginRequest{Email: "Bob@Example.com", Password: "password1"})

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAuthService_Login_UnknownEmail_RunsDummyCompare(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Compare("", "password1").Return(crypto.ErrPasswordMismatch).Times(1)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "password1"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{ID: 3, PasswordHash: "h", IsActive: true}, nil)
	hasher.EXPECT().Compare("h", "wrong").Return(crypto.ErrPasswordMismatch)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "bob@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownAndWrongPasswordLookAlike(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "bob@example.com").Return(models.User{ID: 3, PasswordHash: "h", IsActive: true}, nil)
	hasher.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(crypto.ErrPasswordMismatch).Times(2)

	_, errUnknown := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "x"})
	_, errWrong := svc.Login(context.Background(), models.LoginRequest{Email: "bob@example.com", Password: "x"})

	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{ID: 3, PasswordHash: "h", IsActive: false}, nil)
	hasher.EXPECT().Compare("h", "password1").Return(nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "bob@example.com", Password: "password1"})

	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestAuthService_Login_DisabledAccountWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{ID: 3, PasswordHash: "h", IsActive: false}, nil)
	hasher.EXPECT().Compare("h", "wrong").Return(crypto.ErrPasswordMismatch)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "bob@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, errStorage)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "bob@example.com", Password: "x"})

	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_FindUserByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(9)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.FindUserByID(context.Background(), 9)

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// ── AuthValidationService ────────────────────────────────────────────────────

func TestAuthValidationService_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl) // no expectations: any repository call fails the test
	wrapped := NewAuthValidationService().Wrap(svc)

	_, err := wrapped.RegisterUser(context.Background(), models.RegisterRequest{Email: "not-an-email", Password: "password1"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)

	_, err = wrapped.RegisterUser(context.Background(), models.RegisterRequest{Email: "a@b.io", Password: "short"})
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)

	_, err = wrapped.RegisterUser(context.Background(), models.RegisterRequest{Email: "a@b.io", Password: strings.Repeat("x", 80)})
	assert.ErrorIs(t, err, validators.ErrPasswordTooLong)

	_, err = wrapped.Login(context.Background(), models.LoginRequest{Email: "a@b.io"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthValidationService_PassesValidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	wrapped := NewAuthValidationService().Wrap(svc)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "a@b.io").Return(models.User{ID: 1, PasswordHash: "h", IsActive: true}, nil)
	hasher.EXPECT().Compare("h", "password1").Return(nil)

	user, err := wrapped.Login(context.Background(), models.LoginRequest{Email: "a@b.io", Password: "password1"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}
