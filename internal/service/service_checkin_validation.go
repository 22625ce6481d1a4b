package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wellness/internal/validators"
	"github.com/MKhiriev/go-wellness/models"
)

// CheckInValidationService rejects invalid moods and journals before they
// reach the wrapped CheckInService.
type CheckInValidationService struct {
	inner     CheckInService
	validator validators.Validator
}

func NewCheckInValidationService() CheckInServiceWrapper {
	return &CheckInValidationService{
		validator: validators.NewWellnessValidator(),
	}
}

func (v *CheckInValidationService) Create(ctx context.Context, userID int64, req models.CreateCheckInRequest) (models.CheckIn, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.CheckIn{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Create(ctx, userID, req)
}

func (v *CheckInValidationService) List(ctx context.Context, userID int64) ([]models.CheckIn, error) {
	return v.inner.List(ctx, userID)
}

func (v *CheckInValidationService) Get(ctx context.Context, userID, checkInID int64) (models.CheckIn, error) {
	return v.inner.Get(ctx, userID, checkInID)
}

func (v *CheckInValidationService) Delete(ctx context.Context, userID, checkInID int64) error {
	return v.inner.Delete(ctx, userID, checkInID)
}

func (v *CheckInValidationService) Wrap(wrapped CheckInService) CheckInService {
	v.inner = wrapped
	return v
}
