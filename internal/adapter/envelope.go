package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/keyforge/models"
)

// rawEnvelope accepts every response shape the service is known to emit.
type rawEnvelope struct {
	Success      *bool           `json:"success"`
	Data         json.RawMessage `json:"data"`
	Result       json.RawMessage `json:"result"`
	ErrorMessage string          `json:"error_message"`
	Error        json.RawMessage `json:"error"`
	Message      string          `json:"message"`
	Warning      string          `json:"warning"`
}

type structuredError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// normalizeEnvelope maps a response body onto [models.Envelope]:
//   - the payload comes from "data", or the legacy "result" key;
//   - a payload whose only key is an object under "message" is unwrapped;
//   - the error text comes from "error_message", "error.message",
//     a plain string "error", or a top level "message" on failure;
//   - a missing "success" is inferred from the status and the error text.
func normalizeEnvelope(body []byte, status int) (models.Envelope, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return models.Envelope{}, fmt.Errorf("%w: empty body", ErrUndecodableBody)
	}

	var raw rawEnvelope
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrUndecodableBody, err)
	}

	env := models.Envelope{
		Data:       pickPayload(raw),
		Warning:    raw.Warning,
		StatusCode: status,
	}

	env.ErrorMessage = strings.TrimSpace(raw.ErrorMessage)
	if env.ErrorMessage == "" {
		env.ErrorMessage = errorText(raw.Error)
	}

	if raw.Success != nil {
		env.Success = *raw.Success
	} else {
		env.Success = isSuccessStatus(status) && env.ErrorMessage == "" && env.HasData()
	}

	if !env.Success && env.ErrorMessage == "" {
		env.ErrorMessage = strings.TrimSpace(raw.Message)
	}

	return env, nil
}

func pickPayload(raw rawEnvelope) json.RawMessage {
	payload := raw.Data
	if !present(payload) {
		payload = raw.Result
	}
	if !present(payload) {
		return nil
	}
	return unwrapMessage(payload)
}

// unwrapMessage returns the object under "message" when it is the only key
// of payload; any other payload is returned unchanged.
func unwrapMessage(payload json.RawMessage) json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil || len(fields) != 1 {
		return payload
	}
	inner, ok := fields["message"]
	if !ok {
		return payload
	}
	inner = bytes.TrimSpace(inner)
	if len(inner) == 0 || inner[0] != '{' {
		return payload
	}
	return inner
}

func errorText(raw json.RawMessage) string {
	if !present(raw) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var se structuredError
	if err := json.Unmarshal(raw, &se); err == nil {
		if msg := strings.TrimSpace(se.Message); msg != "" {
			return msg
		}
		return strings.TrimSpace(se.Type)
	}

	return ""
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func isSuccessStatus(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
