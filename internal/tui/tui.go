// Package tui is the interactive terminal front end: one tab per generation
// mode, the form of the active mode and the output surface under it.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/keyforge/internal/config"
	"github.com/MKhiriev/keyforge/internal/logger"
	"github.com/MKhiriev/keyforge/internal/service"
	"github.com/MKhiriev/keyforge/internal/surface"
	"github.com/MKhiriev/keyforge/models"
)

type TUI struct {
	services  *service.ClientServices
	surface   *surface.Manager
	cfg       config.ClientUI
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, manager *surface.Manager, cfg config.ClientUI, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		surface:   manager,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Run blocks until the user quits or ctx is cancelled. The service health is
// probed in the background for the header.
func (t *TUI) Run(ctx context.Context) error {
	model := NewRootModel(ctx, t.services, t.surface, t.cfg.DefaultMode, t.cfg.CopyFeedback, t.buildInfo)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	t.services.HealthMonitor.Start(ctx, 0, func(err error) {
		if err != nil {
			t.logger.Debug().Err(err).Msg("generation service health probe failed")
		}
		p.Send(healthMsg{err: err})
	})
	defer t.services.HealthMonitor.Stop()

	t.logger.Info().Str("mode", t.cfg.DefaultMode.String()).Msg("terminal UI started")
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
