package handler

import (
	"github.com/MKhiriev/go-wellness/internal/config"
	"github.com/MKhiriev/go-wellness/internal/handler/http"
	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/metrics"
	"github.com/MKhiriev/go-wellness/internal/service"
)

// Handlers groups the transports the server exposes. Only HTTP exists.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP transport over services. m and limiter may
// be nil.
func NewHandlers(services *service.Services, m *metrics.Metrics, limiter *http.RateLimiter, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating HTTP handlers")
	return &Handlers{
		HTTP: http.NewHandler(services, m, limiter, logger),
	}, nil
}
