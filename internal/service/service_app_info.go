package service

import (
	"context"

	"github.com/MKhiriev/go-wellness/internal/config"
	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/models"
)

const (
	appName = "Wellness API"

	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)

type appInfoService struct {
	appVersion string
	database   Pinger

	logger *logger.Logger
}

// NewAppInfoService constructs an AppInfoService reporting cfg.Version.
// database may be nil, in which case Health does not check it.
func NewAppInfoService(cfg config.App, database Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		database:   database,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Info(ctx context.Context) models.InfoResponse {
	return models.InfoResponse{Message: appName, Version: s.appVersion}
}

func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	if s.database != nil {
		if err := s.database.PingContext(ctx); err != nil {
			logger.FromContext(ctx).Err(err).Msg("database ping failed")
			return models.HealthResponse{Status: HealthStatusDegraded, Message: appName + " cannot reach its database"}
		}
	}

	return models.HealthResponse{Status: HealthStatusOK, Message: appName + " is running"}
}
