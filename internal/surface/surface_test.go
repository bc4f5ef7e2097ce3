package surface

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/keyforge/internal/logger"
	"github.com/MKhiriev/keyforge/models"
)

type recordingDisplay struct {
	events []string
}

func (r *recordingDisplay) Cleared() { r.events = append(r.events, "clear") }
func (r *recordingDisplay) Shown(c Content) { r.events = append(r.events, "show:"+c.Mode.String()) }
func (r *recordingDisplay) Errored(msg string) { r.events = append(r.events, "error:"+msg) }

func passphraseContent(p string) Content {
	return Content{
		Title:     "Passphrase",
		Artifacts: []Artifact{{ID: models.ArtifactPassphrase, Label: "Passphrase", Text: p, Secret: true}},
	}
}

func keyContent() Content {
	return Content{
		Title: "SSH Key",
		Artifacts: []Artifact{
			{ID: models.ArtifactPublicKey, Label: "Public key", Text: "ssh-ed25519 AAAA"},
			{ID: models.ArtifactPrivateKey, Label: "Private key", Text: "-----BEGIN-----", Secret: true},
		},
	}
}

func TestClear_Idempotent(t *testing.T) {
	rec := &recordingDisplay{}
	m := NewManager(rec, logger.Nop())

	m.Show(models.ModePassphrase, passphraseContent("x"))
	m.Clear()
	first := m.Snapshot()
	eventsAfterFirst := len(rec.events)

	m.Clear()
	second := m.Snapshot()

	assert.Equal(t, first, second)
	assert.True(t, second.Empty())
	assert.Len(t, rec.events, eventsAfterFirst, "second clear must not touch the display")
}

func TestClear_OnFreshManager(t *testing.T) {
	rec := &recordingDisplay{}
	m := NewManager(rec, logger.Nop())

	m.Clear()

	assert.True(t, m.Snapshot().Empty())
	assert.Empty(t, rec.events)
}

func TestShow_ReplacesOtherMode(t *testing.T) {
	m := NewManager(nil, logger.Nop())

	m.Show(models.ModePassphrase, passphraseContent("first"))
	m.Show(models.ModeSSHKey, keyContent())

	r := m.Snapshot()
	require.Len(t, r.Contents, 1)
	_, stale := r.Contents[models.ModePassphrase]
	assert.False(t, stale)
	assert.Equal(t, models.ModeSSHKey, r.Contents[models.ModeSSHKey].Mode)
	assert.True(t, r.Visible)
	assert.Empty(t, r.Error)
}

func TestShow_ClearsBeforeShowing(t *testing.T) {
	rec := &recordingDisplay{}
	m := NewManager(rec, logger.Nop())

	m.Show(models.ModePassphrase, passphraseContent("a"))
	m.ShowError("boom")
	m.Show(models.ModeRSAKey, keyContent())

	assert.Equal(t, []string{"show:passphrase", "clear", "error:boom", "clear", "show:rsa"}, rec.events)
}

func TestShowError_SingleBlock(t *testing.T) {
	m := NewManager(nil, logger.Nop())
	m.Show(models.ModeSSHKey, keyContent())

	m.ShowError("rate limited")

	r := m.Snapshot()
	assert.True(t, r.Visible)
	assert.Equal(t, "rate limited", r.Error)
	assert.Empty(t, r.Contents)
}

func TestShow_MissingContainer(t *testing.T) {
	var logs bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&logs)}

	m := NewManager(nil, log, models.ModePassphrase)
	assert.True(t, m.Show(models.ModePassphrase, passphraseContent("old")))

	var shown bool
	assert.NotPanics(t, func() { shown = m.Show(models.ModePGPKey, keyContent()) })
	assert.False(t, shown)

	assert.True(t, m.Snapshot().Empty())
	assert.Contains(t, logs.String(), "no result container")
}

func TestArtifact_ByStableID(t *testing.T) {
	m := NewManager(nil, logger.Nop())

	_, ok := m.Artifact(models.ArtifactPublicKey)
	assert.False(t, ok)

	m.Show(models.ModeSSHKey, keyContent())
	a, ok := m.Artifact(models.ArtifactPrivateKey)
	require.True(t, ok)
	assert.Equal(t, "-----BEGIN-----", a.Text)

	_, ok = m.Artifact(models.ArtifactPassphrase)
	assert.False(t, ok)
}

func TestTextDisplay(t *testing.T) {
	var out, errOut bytes.Buffer
	d := NewTextDisplay(&out, &errOut)
	m := NewManager(d, logger.Nop())

	c := keyContent()
	c.Details = []Detail{{Label: "Fingerprint", Value: "SHA256:abc"}}
	c.Warning = "Keys generated but could not be saved"
	m.Show(models.ModeSSHKey, c)
	m.ShowError("rate limited")

	assert.Contains(t, out.String(), "ssh-ed25519 AAAA")
	assert.Contains(t, out.String(), "SHA256:abc")
	assert.Contains(t, out.String(), "could not be saved")
	assert.Contains(t, errOut.String(), "rate limited")
}
