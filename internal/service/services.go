package service

import (
	"github.com/MKhiriev/keyforge/internal/adapter"
	"github.com/MKhiriev/keyforge/internal/config"
	"github.com/MKhiriev/keyforge/internal/crypto"
	"github.com/MKhiriev/keyforge/internal/logger"
	"github.com/MKhiriev/keyforge/internal/surface"
	"github.com/MKhiriev/keyforge/internal/utils"
	"github.com/MKhiriev/keyforge/internal/validators"
)

type ClientServices struct {
	Generation    GenerationService
	Clipboard     ClipboardService
	HealthMonitor HealthMonitor
}

func NewClientServices(
	generationAdapter adapter.GenerationAdapter,
	manager *surface.Manager,
	cfg config.ClientAdapter,
	log *logger.Logger,
) *ClientServices {
	generation := NewGenerationService(
		generationAdapter,
		validators.NewGenerationValidator(),
		manager,
		crypto.NewKeyInspector(),
		utils.NewUUIDGenerator(),
		cfg.RequestTimeout,
		log,
	)

	return &ClientServices{
		Generation:    generation,
		Clipboard:     NewClipboardService(manager, log),
		HealthMonitor: NewHealthMonitor(generation),
	}
}
