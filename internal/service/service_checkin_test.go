// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/mock"
	"github.com/MKhiriev/go-wellness/internal/store"
	"github.com/MKhiriev/go-wellness/internal/validators"
	"github.com/MKhiriev/go-wellness/models"
)

func intPtr(v int) *int { return &v }

func newTestCheckInSvc(t *testing.T) (CheckInService, *mock.MockCheckInRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCheckInRepository(ctrl)

	inner := NewCheckInService(repo, logger.Nop()).(*checkInService)
	inner.now = func() time.Time { return fixedNow.In(time.FixedZone("UTC+3", 3*3600)) }

	return NewCheckInValidationService().Wrap(inner), repo
}

func TestCheckInService_Create(t *testing.T) {
	svc, repo := newTestCheckInSvc(t)

	repo.EXPECT().CreateCheckIn(gomock.Any(), models.CheckIn{
		UserID:  1,
		Mood:    0,
		Journal: "slept badly",
		Date:    fixedNow,
	}).Return(models.CheckIn{ID: 10, UserID: 1, Mood: 0, Journal: "slept badly", Date: fixedNow}, nil)

	got, err := svc.Create(context.Background(), 1, models.CreateCheckInRequest{Mood: intPtr(0), Journal: "  slept badly\n"})

	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
}

func TestCheckInService_Create_RejectedBeforeStorage(t *testing.T) {
	svc, _ := newTestCheckInSvc(t) // no expectations: a storage call fails the test

	tests := []struct {
		name string
		req  models.CreateCheckInRequest
		want error
	}{
		{name: "mood above range", req: models.CreateCheckInRequest{Mood: intPtr(6), Journal: "x"}, want: validators.ErrInvalidMood},
		{name: "mood below range", req: models.CreateCheckInRequest{Mood: intPtr(-1), Journal: "x"}, want: validators.ErrInvalidMood},
		{name: "missing mood", req: models.CreateCheckInRequest{Journal: "x"}, want: validators.ErrMissingMood},
		{name: "blank journal", req: models.CreateCheckInRequest{Mood: intPtr(3), Journal: "  "}, want: validators.ErrEmptyJournal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, tt.req)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCheckInService_Create_UnwrappedMissingMood(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewCheckInService(mock.NewMockCheckInRepository(ctrl), logger.Nop())

	_, err := svc.Create(context.Background(), 1, models.CreateCheckInRequest{Journal: "x"})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheckInService_List(t *testing.T) {
	svc, repo := newTestCheckInSvc(t)
	want := []models.CheckIn{{ID: 2}, {ID: 1}}
	repo.EXPECT().ListCheckIns(gomock.Any(), int64(1)).Return(want, nil)

	got, err := svc.List(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCheckInService_GetAndDelete_NotFound(t *testing.T) {
	svc, repo := newTestCheckInSvc(t)
	repo.EXPECT().GetCheckIn(gomock.Any(), int64(2), int64(10)).Return(models.CheckIn{}, store.ErrCheckInNotFound)
	repo.EXPECT().DeleteCheckIn(gomock.Any(), int64(2), int64(10)).Return(store.ErrCheckInNotFound)

	_, err := svc.Get(context.Background(), 2, 10)
	assert.ErrorIs(t, err, store.ErrCheckInNotFound)

	err = svc.Delete(context.Background(), 2, 10)
	assert.ErrorIs(t, err, store.ErrCheckInNotFound)
}

func TestCheckInService_Delete(t *testing.T) {
	svc, repo := newTestCheckInSvc(t)
	repo.EXPECT().DeleteCheckIn(gomock.Any(), int64(1), int64(10)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 1, 10))
}
