package http

import (
	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/metrics"
	"github.com/MKhiriev/go-wellness/internal/service"
)

// Handler serves the wellness API. Build the router with Init.
type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	limiter  *RateLimiter

	logger *logger.Logger
}

// NewHandler returns a Handler over services. A nil m drops the /metrics
// route and a nil limiter turns throttling off.
func NewHandler(services *service.Services, m *metrics.Metrics, limiter *RateLimiter, logger *logger.Logger) *Handler {
	return &Handler{
		services: services,
		metrics:  m,
		limiter:  limiter,
		logger:   logger,
	}
}
