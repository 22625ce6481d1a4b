package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/stats"
	"github.com/MKhiriev/go-wellness/internal/store"
	"github.com/MKhiriev/go-wellness/models"
)

type statsService struct {
	checkInRepository store.CheckInRepository

	logger *logger.Logger
}

func NewStatsService(checkInRepository store.CheckInRepository, logger *logger.Logger) StatsService {
	return &statsService{
		checkInRepository: checkInRepository,
		logger:            logger,
	}
}

// Stats loads the full history of userID and computes its statistics.
func (s *statsService) Stats(ctx context.Context, userID int64) (models.Stats, error) {
	checkIns, err := s.checkInRepository.ListCheckIns(ctx, userID)
	if err != nil {
		return models.Stats{}, fmt.Errorf("error loading check-ins for stats: %w", err)
	}

	return stats.Compute(checkIns), nil
}
