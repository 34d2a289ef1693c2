package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/research-gateway/internal/logger"
	"github.com/MKhiriev/research-gateway/internal/service"
	"github.com/MKhiriev/research-gateway/models"
)

type App struct {
	services *service.ClientServices
	out      io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || services.ModelChoicesService == nil || services.ServerInfoService == nil {
		return nil, ErrServicesNotProvided
	}

	return &App{
		services: services,
		out:      out,
		logger:   logger,
	}, nil
}

// Run fetches the model choices and prints them. A failing version lookup
// is logged and shown as N/A; a failing configuration lookup aborts.
func (a *App) Run(ctx context.Context) error {
	version, err := a.services.ServerInfoService.GetServerVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("could not fetch server version")
		version = models.NotAvailable
	}

	choices, err := a.services.ModelChoicesService.FetchModelChoices(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, newView(a.out).render(version, choices))
	return err
}
