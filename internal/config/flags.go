package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagAddress        = "address"
	FlagRequestTimeout = "request-timeout"
	FlagConfig         = "config"
	FlagLogFile        = "log-file"
	FlagLogLevel       = "log-level"
	FlagVerbose        = "verbose"
	FlagMode           = "mode"
)

// RegisterFlags adds the configuration flags to fs. Every flag defaults to
// its zero value so that unset flags never shadow env or file values.
//
// Flags:
//
//	-a/--address generation service base URL
//	--request-timeout request timeout (e.g., "30s", "1m")
//	-c/--config JSON or YAML config file path
//	--log-file log file path
//	--log-level log level (debug, info, warn, error)
//	-v/--verbose mirror logs to stderr
//	-m/--mode initially selected mode
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagAddress, "a", "", "Generation service address")
	fs.Duration(FlagRequestTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringP(FlagConfig, "c", "", "JSON or YAML config file path")
	fs.String(FlagLogFile, "", "Log file path")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.BoolP(FlagVerbose, "v", false, "Mirror logs to stderr")
	fs.StringP(FlagMode, "m", "", "Initially selected mode (passphrase, ssh, rsa, pgp)")
}

// parseFlags reads the flags registered by [RegisterFlags] from fs. Flags
// that were never registered on fs are skipped.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	stringFlags := map[string]*string{
		FlagAddress:  &cfg.Adapter.HTTPAddress,
		FlagConfig:   &cfg.ConfigFilePath,
		FlagLogFile:  &cfg.Log.FilePath,
		FlagLogLevel: &cfg.Log.Level,
		FlagMode:     &cfg.UI.DefaultMode,
	}
	for name, dst := range stringFlags {
		if fs.Lookup(name) == nil {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", name, err)
		}
		*dst = v
	}

	if fs.Lookup(FlagRequestTimeout) != nil {
		d, err := fs.GetDuration(FlagRequestTimeout)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", FlagRequestTimeout, err)
		}
		cfg.Adapter.RequestTimeout = d
	}

	if fs.Lookup(FlagVerbose) != nil {
		v, err := fs.GetBool(FlagVerbose)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", FlagVerbose, err)
		}
		cfg.Log.Verbose = v
	}

	return cfg, nil
}
