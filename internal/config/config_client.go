package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/keyforge/models"
)

// ClientAdapter holds network settings used by the transport layer.
type ClientAdapter struct {
	// HTTPAddress is the generation service base URL.
	HTTPAddress string
	// RequestTimeout is the timeout of a single generation request.
	RequestTimeout time.Duration
}

// ClientLog holds logger settings.
type ClientLog struct {
	FilePath   string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	Verbose    bool
}

// ClientUI holds terminal UI settings.
type ClientUI struct {
	// DefaultMode is the mode selected on start.
	DefaultMode models.Mode
	// CopyFeedback is how long a copy confirmation stays visible.
	CopyFeedback time.Duration
}

// ClientConfig is the validated client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Log     ClientLog
	UI      ClientUI
}

// GetClientConfig builds and validates the client configuration. fs is the
// flag set the flags of [RegisterFlags] were registered on; it may be nil.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	mode, err := models.ParseMode(cfg.UI.DefaultMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUIConfigs, err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Log: ClientLog{
			FilePath:   cfg.Log.FilePath,
			Level:      cfg.Log.Level,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			Verbose:    cfg.Log.Verbose,
		},
		UI: ClientUI{
			DefaultMode:  mode,
			CopyFeedback: cfg.UI.CopyFeedback,
		},
	}

	return clientCfg, clientCfg.validate()
}
