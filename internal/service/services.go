package service

import (
	"github.com/MKhiriev/go-wellness/internal/adapter"
	"github.com/MKhiriev/go-wellness/internal/config"
	"github.com/MKhiriev/go-wellness/internal/crypto"
	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/metrics"
	"github.com/MKhiriev/go-wellness/internal/store"
)

type Services struct {
	AuthService     AuthService
	TokenService    TokenService
	SessionResolver SessionResolver
	CheckInService  CheckInService
	StatsService    StatsService
	ChatService     ChatService
	AppInfoService  AppInfoService
}

// NewServices wires every service to storages. generator may be nil, in
// which case the chatbot answers from its scripted replies only.
func NewServices(
	storages *store.Storages,
	generator adapter.TextGenerator,
	cfg *config.StructuredConfig,
	m *metrics.Metrics,
	logger *logger.Logger,
) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.App.PasswordHashCost)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, err
	}

	tokenService := NewTokenService(cfg.App, logger)
	authService := NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, hasher, logger))

	return &Services{
		AuthService:     authService,
		TokenService:    tokenService,
		SessionResolver: NewSessionResolver(tokenService, storages.UserRepository, logger),
		CheckInService:  NewCheckInValidationService().Wrap(NewCheckInService(storages.CheckInRepository, logger)),
		StatsService:    NewStatsService(storages.CheckInRepository, logger),
		ChatService:     NewChatService(generator, storages.ConversationStore, storages.CheckInRepository, cfg, m, logger),
		AppInfoService:  appInfoService,
	}, nil
}
