package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, an unparsable address or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidLogConfigs indicates invalid logging settings
	// (for example, an unknown level or a non-positive rotation size).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidUIConfigs indicates invalid UI settings
	// (for example, an unknown default mode).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
)
