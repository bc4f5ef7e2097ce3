// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the raw configuration tree shared by every source.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the generation service address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds the log file location, level and rotation limits.
	Log Log `envPrefix:"LOG_"`

	// UI holds presentation settings of the terminal client.
	UI UI `envPrefix:"UI_"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// Adapter holds settings of the outbound transport to the generation service.
type Adapter struct {
	// HTTPAddress is the base URL of the generation service
	// (e.g. "http://localhost:5000"). A missing scheme means http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single generation request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Env: LOG_FILE
	FilePath string `env:"FILE"`
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
	// MaxSizeMB is the size at which the log file is rotated.
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`
	// MaxBackups is the number of rotated files kept.
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`
	// Verbose mirrors log entries to stderr in human readable form.
	// Env: LOG_VERBOSE
	Verbose bool `env:"VERBOSE"`
}

// UI holds settings of the terminal user interface.
type UI struct {
	// DefaultMode is the tab selected on start ("passphrase", "ssh", ...).
	// Env: UI_DEFAULT_MODE
	DefaultMode string `env:"DEFAULT_MODE"`

	// CopyFeedback is how long the "Copied!" confirmation stays visible.
	// Env: UI_COPY_FEEDBACK
	CopyFeedback time.Duration `env:"COPY_FEEDBACK"`
}

// Default values applied when no other source sets a field.
const (
	DefaultHTTPAddress    = "http://localhost:5000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
	DefaultLogFileName    = "keyforge.log"
	DefaultLogMaxSizeMB   = 10
	DefaultLogMaxBackups  = 5
	DefaultMode           = "passphrase"
	DefaultCopyFeedback   = 2 * time.Second
)

func defaults() *StructuredConfig {
	logPath := DefaultLogFileName
	if execPath, err := os.Executable(); err == nil {
		logPath = filepath.Join(filepath.Dir(execPath), DefaultLogFileName)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: Log{
			FilePath:   logPath,
			Level:      DefaultLogLevel,
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
		},
		UI: UI{
			DefaultMode:  DefaultMode,
			CopyFeedback: DefaultCopyFeedback,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from fs (may be
// nil), the environment, the optional config file and the defaults.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withFile().
		withDefaults().
		build()
}
