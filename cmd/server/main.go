package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wellness/internal/adapter"
	"github.com/MKhiriev/go-wellness/internal/config"
	"github.com/MKhiriev/go-wellness/internal/handler"
	"github.com/MKhiriev/go-wellness/internal/handler/http"
	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/metrics"
	"github.com/MKhiriev/go-wellness/internal/server"
	"github.com/MKhiriev/go-wellness/internal/service"
	"github.com/MKhiriev/go-wellness/internal/store"
	"github.com/MKhiriev/go-wellness/internal/workers"
	"github.com/MKhiriev/go-wellness/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("wellness-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" && buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Str("driver", cfg.Storage.DB.Driver).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	m := metrics.New()

	generator, err := adapter.NewHTTPTextGenerator(cfg.Chatbot, log)
	if err != nil {
		if errors.Is(err, adapter.ErrGeneratorNotConfigured) {
			log.Info().Msg("chatbot backend is not configured, scripted replies only")
		} else {
			log.Warn().Err(err).Msg("chatbot backend is unusable, scripted replies only")
		}
		generator = nil
	}

	services, err := service.NewServices(storages, generator, cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	limiter := http.NewRateLimiter(cfg.RateLimit, log)

	handlers, err := handler.NewHandlers(services, m, limiter, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bg := workers.NewWorkers(
		workers.NewConversationJanitor(storages.ConversationStore, cfg.Chat, m, log),
		limiter,
	)

	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
