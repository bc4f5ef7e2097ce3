package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode_Endpoint(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModePassphrase, "/generate/passphrase"},
		{ModeSSHKey, "/generate/ssh"},
		{ModeRSAKey, "/generate/rsa"},
		{ModePGPKey, "/generate/pgp"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.Endpoint())
			assert.True(t, tt.mode.Valid())
			assert.NotEmpty(t, tt.mode.FailureMessage())
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "passphrase", want: ModePassphrase},
		{in: "SSH", want: ModeSSHKey},
		{in: "rsa-key", want: ModeRSAKey},
		{in: " pgp ", want: ModePGPKey},
		{in: "dsa", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMode_Invalid(t *testing.T) {
	m := Mode(42)
	assert.False(t, m.Valid())
	assert.Equal(t, "mode(42)", m.String())
}

func TestEnvelope_HasData(t *testing.T) {
	assert.False(t, Envelope{}.HasData())
	assert.False(t, Envelope{Data: []byte("null")}.HasData())
	assert.True(t, Envelope{Data: []byte(`{"passphrase":"x"}`)}.HasData())
}

func TestNewAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-02", "")
	assert.Equal(t, "N/A", info.Version)
	assert.Equal(t, "2026-01-02", info.Date)
	assert.Equal(t, "N/A", info.Commit)
	assert.Contains(t, info.String(), "Build date: 2026-01-02")
}
