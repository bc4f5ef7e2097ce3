package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseFile_JSON(t *testing.T) {
	p := writeTempFile(t, "config.json", `{
		"adapter": {"http_address": "http://gen:5000", "request_timeout": "10s"},
		"log": {"file": "k.log", "level": "debug", "max_size_mb": 2, "max_backups": 1},
		"ui": {"default_mode": "pgp", "copy_feedback": 3000000000}
	}`)

	cfg, err := parseFile(p)
	require.NoError(t, err)
	assert.Equal(t, "http://gen:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "k.log", cfg.Log.FilePath)
	assert.Equal(t, 2, cfg.Log.MaxSizeMB)
	assert.Equal(t, 1, cfg.Log.MaxBackups)
	assert.Equal(t, "pgp", cfg.UI.DefaultMode)
	assert.Equal(t, 3*time.Second, cfg.UI.CopyFeedback)
}

func TestParseFile_YAML(t *testing.T) {
	p := writeTempFile(t, "config.yml", `
adapter:
  http_address: gen:5000
  request_timeout: 1m
log:
  level: warn
  verbose: true
`)

	cfg, err := parseFile(p)
	require.NoError(t, err)
	assert.Equal(t, "gen:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.Verbose)
}

func TestParseFile_Errors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := parseFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("bad json", func(t *testing.T) {
		_, err := parseFile(writeTempFile(t, "c.json", `{"adapter":`))
		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := parseFile(writeTempFile(t, "c.yaml", "adapter:\n  request_timeout: later\n"))
		assert.Error(t, err)
	})
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
