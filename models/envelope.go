package models

import "encoding/json"

// Envelope is the canonical shape of every generation service response after
// normalisation by the transport adapter.
type Envelope struct {
	Success      bool            `json:"success"`
	Data         json.RawMessage `json:"data,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
	// Warning is set when the service generated the artifacts but reported
	// a secondary problem (for example it could not save them).
	Warning string `json:"warning,omitempty"`
	// StatusCode is the HTTP status the envelope arrived with.
	StatusCode int `json:"-"`
}

// HasData reports whether the envelope carries a non-null payload.
func (e Envelope) HasData() bool {
	return len(e.Data) > 0 && string(e.Data) != "null"
}
