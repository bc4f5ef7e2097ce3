package service

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/keyforge/internal/logger"
	"github.com/MKhiriev/keyforge/internal/surface"
)

type clipboardService struct {
	surface *surface.Manager
	write   func(string) error
	// unsupported reports whether no clipboard utility is installed.
	unsupported func() bool

	logger *logger.Logger
}

// NewClipboardService creates a ClipboardService writing to the system
// clipboard.
func NewClipboardService(manager *surface.Manager, log *logger.Logger) ClipboardService {
	return newClipboardService(manager, clipboard.WriteAll, func() bool { return clipboard.Unsupported }, log)
}

func newClipboardService(manager *surface.Manager, write func(string) error, unsupported func() bool, log *logger.Logger) *clipboardService {
	return &clipboardService{
		surface:     manager,
		write:       write,
		unsupported: unsupported,
		logger:      log,
	}
}

// Prepare implements [ClipboardService].
func (c *clipboardService) Prepare(artifactID string) (func() error, error) {
	artifact, ok := c.surface.Artifact(artifactID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNothingToCopy, artifactID)
	}
	if c.unsupported() {
		return nil, ErrClipboardUnsupported
	}

	text := artifact.Text
	return func() error {
		if err := c.write(text); err != nil {
			c.logger.Warn().Err(err).Str("artifact", artifactID).Msg("clipboard write failed")
			return fmt.Errorf("%w: %w", ErrCopyFailed, err)
		}
		c.logger.Debug().Str("artifact", artifactID).Msg("artifact copied to clipboard")
		return nil
	}, nil
}

// Copy implements [ClipboardService].
func (c *clipboardService) Copy(artifactID string) error {
	write, err := c.Prepare(artifactID)
	if err != nil {
		return err
	}
	return write()
}
