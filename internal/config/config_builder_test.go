package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/keyforge/models"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source
// is kept while zero fields are filled from later sources.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flags:1"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:2", RequestTimeout: time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://flags:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

// ── withFile ─────────────────────────────────────────────────────────────────

func TestWithFile_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withFile()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFile_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/does/not/exist.json"})
	b.withFile()
	assert.Error(t, b.err)
}

// ── GetClientConfig ──────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, 5, cfg.Log.MaxBackups)
	assert.NotEmpty(t, cfg.Log.FilePath)
	assert.Equal(t, models.ModePassphrase, cfg.UI.DefaultMode)
	assert.Equal(t, 2*time.Second, cfg.UI.CopyFeedback)
}

func TestGetClientConfig_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeTempFile(t, "config.yaml", `
adapter:
  http_address: http://file:3
  request_timeout: 5s
ui:
  default_mode: rsa
`)
	t.Setenv("ADAPTER_ADDRESS", "http://env:2")
	t.Setenv("CONFIG", path)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--mode", "pgp"}))

	cfg, err := GetClientConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, "http://env:2", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, models.ModePGPKey, cfg.UI.DefaultMode)
}

func TestGetClientConfig_InvalidMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("UI_DEFAULT_MODE", "dsa")

	_, err := GetClientConfig(nil)
	require.ErrorIs(t, err, ErrInvalidUIConfigs)
}

func TestGetClientConfig_InvalidLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "loud")

	_, err := GetClientConfig(nil)
	require.ErrorIs(t, err, ErrInvalidLogConfigs)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() ClientConfig {
		return ClientConfig{
			Adapter: ClientAdapter{HTTPAddress: "localhost:5000", RequestTimeout: time.Second},
			Log:     ClientLog{FilePath: "x.log", Level: "debug", MaxSizeMB: 1},
			UI:      ClientUI{DefaultMode: models.ModeSSHKey, CopyFeedback: time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{"valid", func(*ClientConfig) {}, nil},
		{"empty address", func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"zero rotation size", func(c *ClientConfig) { c.Log.MaxSizeMB = 0 }, ErrInvalidLogConfigs},
		{"bad mode", func(c *ClientConfig) { c.UI.DefaultMode = models.Mode(7) }, ErrInvalidUIConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
