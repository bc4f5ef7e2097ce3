package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/keyforge/internal/app"
	"github.com/MKhiriev/keyforge/models"
)

var (
	ErrNothingToCopy        = errors.New("artifact is not on the output surface")
	ErrClipboardUnsupported = errors.New("system clipboard is not available")
	ErrCopyFailed           = errors.New("copy to clipboard failed")
)

// ServiceError is a well formed envelope with success set to false.
type ServiceError struct {
	Mode       models.Mode
	Message    string
	StatusCode int
}

// Error returns the service's message, or the generic failure message of the
// mode when the service sent none.
func (e *ServiceError) Error() string {
	if e.Message == "" {
		return e.Mode.FailureMessage()
	}
	return e.Message
}

// MalformedResponseError is a successful envelope whose payload lacks
// required fields.
type MalformedResponseError struct {
	Mode   models.Mode
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: %s", app.MsgMalformedResponse, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func malformed(mode models.Mode, reason string) error {
	return &MalformedResponseError{Mode: mode, Reason: reason}
}
