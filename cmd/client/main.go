package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/research-gateway/internal/adapter"
	"github.com/MKhiriev/research-gateway/internal/client"
	"github.com/MKhiriev/research-gateway/internal/config"
	"github.com/MKhiriev/research-gateway/internal/logger"
	"github.com/MKhiriev/research-gateway/internal/service"
	"github.com/MKhiriev/research-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewClientLogger("research-gateway-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)

	app, err := client.NewApp(services, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// printBuildInfo writes to stderr so that stdout only carries the report.
func printBuildInfo(info models.AppBuildInfo) {
	fmt.Fprintf(os.Stderr, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(os.Stderr, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", info.BuildCommit())
}
