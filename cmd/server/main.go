package main

import (
	"fmt"

	"github.com/MKhiriev/research-gateway/internal/config"
	"github.com/MKhiriev/research-gateway/internal/handler"
	"github.com/MKhiriev/research-gateway/internal/logger"
	"github.com/MKhiriev/research-gateway/internal/observability"
	"github.com/MKhiriev/research-gateway/internal/server"
	"github.com/MKhiriev/research-gateway/internal/service"
	"github.com/MKhiriev/research-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("research-gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithMinLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log = leveled

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	services, err := service.NewServices(config.LoadLLM, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	var metrics *observability.Metrics
	if !cfg.Metrics.Disabled {
		metrics = observability.NewMetrics()
	}

	handlers, err := handler.NewHandlers(services, cfg, metrics, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
