package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/keyforge/internal/app"
	"github.com/MKhiriev/keyforge/internal/surface"
	"github.com/MKhiriev/keyforge/models"
)

// render paints a current outcome onto the output surface. Every failure,
// including a payload that cannot be displayed in full, ends in ShowError.
func (s *generationService) render(state UIState, outcome Settled) UIState {
	content, err := s.present(outcome)
	if err != nil {
		msg := Humanize(outcome.Mode, err)
		s.logger.Info().
			Str("mode", outcome.Mode.String()).
			Str("request_id", outcome.RequestID).
			Str("error", msg).
			Msg("generation failed")
		s.surface.ShowError(msg)
		return state.WithError(msg)
	}

	if !s.surface.Show(outcome.Mode, content) {
		return state.WithError(app.MsgResultNotShown)
	}
	s.logger.Info().
		Str("mode", outcome.Mode.String()).
		Str("request_id", outcome.RequestID).
		Dur("took", outcome.Took).
		Msg("generation result shown")
	return state.WithResult(content)
}

func (s *generationService) present(outcome Settled) (surface.Content, error) {
	if err := classify(outcome); err != nil {
		return surface.Content{}, err
	}

	env := outcome.Envelope
	if !env.HasData() {
		return surface.Content{}, malformed(outcome.Mode, "missing data")
	}

	var (
		content surface.Content
		err     error
	)
	switch outcome.Mode {
	case models.ModePassphrase:
		content, err = s.presentPassphrase(env.Data)
	case models.ModeSSHKey, models.ModeRSAKey:
		content, err = s.presentKeyPair(outcome.Mode, env.Data, outcome.Request)
	case models.ModePGPKey:
		content, err = s.presentPGPKey(env.Data)
	default:
		return surface.Content{}, models.ErrUnknownMode
	}
	if err != nil {
		return surface.Content{}, err
	}

	content.Mode = outcome.Mode
	content.Title = outcome.Mode.Title()
	content.Warning = env.Warning
	return content, nil
}

func (s *generationService) presentPassphrase(data json.RawMessage) (surface.Content, error) {
	var res models.PassphraseResult
	if err := json.Unmarshal(data, &res); err != nil {
		return surface.Content{}, notAnObject(models.ModePassphrase, data, err)
	}
	if res.Passphrase == "" {
		return surface.Content{}, malformed(models.ModePassphrase, "missing passphrase")
	}

	return surface.Content{
		Artifacts: []surface.Artifact{
			{ID: models.ArtifactPassphrase, Label: "Passphrase", Text: res.Passphrase, Secret: true},
		},
		Details: []surface.Detail{
			{Label: "Length", Value: strconv.Itoa(len([]rune(res.Passphrase)))},
		},
	}, nil
}

func (s *generationService) presentKeyPair(mode models.Mode, data json.RawMessage, req models.GenerationRequest) (surface.Content, error) {
	var res models.KeyPairResult
	if err := json.Unmarshal(data, &res); err != nil {
		return surface.Content{}, notAnObject(mode, data, err)
	}
	if err := requireKeys(mode, res.PublicKey, res.PrivateKey); err != nil {
		return surface.Content{}, err
	}

	keyType, keySize := res.KeyType, res.KeySize
	switch r := req.(type) {
	case models.SSHKeyRequest:
		keyType = firstNonEmpty(keyType, r.KeyType)
		keySize = firstNonZero(keySize, r.KeySize)
	case models.RSAKeyRequest:
		keyType = firstNonEmpty(keyType, "rsa")
		keySize = firstNonZero(keySize, r.KeySize)
	}

	content := surface.Content{Artifacts: keyArtifacts(res.PublicKey, res.PrivateKey)}
	content.Details = appendDetail(content.Details, "Key type", strings.ToUpper(keyType))
	if keySize > 0 {
		content.Details = appendDetail(content.Details, "Key size", strconv.Itoa(keySize)+" bits")
	}
	content.Details = appendDetail(content.Details, "Fingerprint", s.fingerprint(mode, res.PublicKey))
	content.Details = appendDetail(content.Details, "Saved to", res.Directory)
	return content, nil
}

func (s *generationService) presentPGPKey(data json.RawMessage) (surface.Content, error) {
	mode := models.ModePGPKey

	var res models.PGPKeyResult
	if err := json.Unmarshal(data, &res); err != nil {
		return surface.Content{}, notAnObject(mode, data, err)
	}
	if err := requireKeys(mode, res.PublicKey, res.PrivateKey); err != nil {
		return surface.Content{}, err
	}

	content := surface.Content{Artifacts: keyArtifacts(res.PublicKey, res.PrivateKey)}
	content.Details = appendDetail(content.Details, "Key ID", res.KeyID)
	content.Details = appendDetail(content.Details, "Key type", res.KeyType)
	if res.KeyLength > 0 {
		content.Details = appendDetail(content.Details, "Key length", strconv.Itoa(res.KeyLength)+" bits")
	}
	content.Details = appendDetail(content.Details, "Curve", res.Curve)
	content.Details = appendDetail(content.Details, "Expires", expiry(res.ExpireDate))
	content.Details = appendDetail(content.Details, "Fingerprint", s.fingerprint(mode, res.PublicKey))
	content.Details = appendDetail(content.Details, "Saved to", res.Directory)
	return content, nil
}

// fingerprint returns an empty string when the key cannot be inspected; the
// detail row is then omitted.
func (s *generationService) fingerprint(mode models.Mode, publicKey string) string {
	if s.inspector == nil {
		return ""
	}
	info, err := s.inspector.Inspect(publicKey)
	if err != nil {
		s.logger.Debug().Err(err).Str("mode", mode.String()).Msg("public key not inspectable")
		return ""
	}
	return info.Fingerprint
}

func requireKeys(mode models.Mode, publicKey, privateKey string) error {
	switch {
	case publicKey == "" && privateKey == "":
		return malformed(mode, "missing publicKey and privateKey")
	case publicKey == "":
		return malformed(mode, "missing publicKey")
	case privateKey == "":
		return malformed(mode, "missing privateKey")
	}
	return nil
}

// notAnObject reports a payload that is not a JSON object. A bare string
// payload is quoted in the reason since services put messages there.
func notAnObject(mode models.Mode, data json.RawMessage, err error) error {
	reason := "data is not an object"
	var text string
	if json.Unmarshal(data, &text) == nil && text != "" {
		reason = fmt.Sprintf("%s (%q)", reason, text)
	}
	return &MalformedResponseError{Mode: mode, Reason: reason, Err: err}
}

func keyArtifacts(publicKey, privateKey string) []surface.Artifact {
	return []surface.Artifact{
		{ID: models.ArtifactPublicKey, Label: "Public key", Text: publicKey},
		{ID: models.ArtifactPrivateKey, Label: "Private key", Text: privateKey, Secret: true},
	}
}

func appendDetail(details []surface.Detail, label, value string) []surface.Detail {
	if value == "" {
		return details
	}
	return append(details, surface.Detail{Label: label, Value: value})
}

func expiry(date string) string {
	switch strings.TrimSpace(date) {
	case "", "0", "never", "Never":
		return "never"
	default:
		return date
	}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstNonZero(a, b int) int {
	if a != 0 {
		return a
	}
	return b
}
