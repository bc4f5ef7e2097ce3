package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/keyforge/internal/adapter"
	"github.com/MKhiriev/keyforge/internal/app"
	"github.com/MKhiriev/keyforge/internal/config"
	"github.com/MKhiriev/keyforge/internal/logger"
	"github.com/MKhiriev/keyforge/internal/service"
	"github.com/MKhiriev/keyforge/internal/surface"
	"github.com/MKhiriev/keyforge/internal/tui"
	"github.com/MKhiriev/keyforge/internal/utils"
	"github.com/MKhiriev/keyforge/models"
)

// ErrGenerationFailed is returned by Generate after the failure has already
// been printed.
var ErrGenerationFailed = errors.New("generation failed")

type App struct {
	cfg       *config.ClientConfig
	adapter   adapter.GenerationAdapter
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	generationAdapter, err := adapter.NewHTTPGenerationAdapter(cfg.Adapter, utils.NewUUIDGenerator(), log)
	if err != nil {
		return nil, fmt.Errorf("create generation adapter: %w", err)
	}

	return &App{
		cfg:       cfg,
		adapter:   generationAdapter,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context) error {
	manager := surface.NewManager(nil, a.logger)
	services := service.NewClientServices(a.adapter, manager, a.cfg.Adapter, a.logger)

	return tui.New(services, manager, a.cfg.UI, a.buildInfo, a.logger).Run(ctx)
}

// Generate implements [Client].
func (a *App) Generate(ctx context.Context, mode models.Mode, form models.FormValues, copyArtifact string, out, errOut io.Writer) error {
	manager := surface.NewManager(surface.NewTextDisplay(out, errOut), a.logger, mode)
	services := service.NewClientServices(a.adapter, manager, a.cfg.Adapter, a.logger)

	state, call := services.Generation.Submit(ctx, service.NewUIState(mode), mode, form)
	if call != nil {
		state = services.Generation.Settle(state, call.Do())
	}
	if state.LastResult.Kind != service.ResultContent {
		if manager.Snapshot().Error == "" && state.LastResult.Error != "" {
			_, _ = fmt.Fprintln(errOut, "Error: "+state.LastResult.Error)
		}
		return ErrGenerationFailed
	}

	if copyArtifact == "" {
		return nil
	}
	if err := services.Clipboard.Copy(copyArtifact); err != nil {
		return fmt.Errorf("%s: %w", app.MsgCopyFailed, err)
	}
	_, _ = fmt.Fprintln(errOut, app.MsgCopied)
	return nil
}

// Health implements [Client].
func (a *App) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Adapter.RequestTimeout)
	defer cancel()

	return a.adapter.Health(ctx)
}
