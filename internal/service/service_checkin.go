// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/store"
	"github.com/MKhiriev/go-wellness/internal/validators"
	"github.com/MKhiriev/go-wellness/models"
)

type checkInService struct {
	checkInRepository store.CheckInRepository

	now func() time.Time

	logger *logger.Logger
}

// NewCheckInService constructs a CheckInService without input validation;
// wrap it with NewCheckInValidationService before exposing it.
func NewCheckInService(checkInRepository store.CheckInRepository, logger *logger.Logger) CheckInService {
	return &checkInService{
		checkInRepository: checkInRepository,
		now:               time.Now,
		logger:            logger,
	}
}

// Create stores a check-in dated now. The journal is stored trimmed.
func (c *checkInService) Create(ctx context.Context, userID int64, req models.CreateCheckInRequest) (models.CheckIn, error) {
	if req.Mood == nil {
		return models.CheckIn{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrMissingMood)
	}

	return c.checkInRepository.CreateCheckIn(ctx, models.CheckIn{
		UserID:  userID,
		Mood:    *req.Mood,
		Journal: strings.TrimSpace(req.Journal),
		Date:    c.now().UTC(),
	})
}

// List returns the user's check-ins, newest first.
func (c *checkInService) List(ctx context.Context, userID int64) ([]models.CheckIn, error) {
	return c.checkInRepository.ListCheckIns(ctx, userID)
}

// Get returns store.ErrCheckInNotFound for missing and foreign check-ins alike.
func (c *checkInService) Get(ctx context.Context, userID, checkInID int64) (models.CheckIn, error) {
	return c.checkInRepository.GetCheckIn(ctx, userID, checkInID)
}

// Delete returns store.ErrCheckInNotFound for missing and foreign check-ins alike.
func (c *checkInService) Delete(ctx context.Context, userID, checkInID int64) error {
	return c.checkInRepository.DeleteCheckIn(ctx, userID, checkInID)
}
