// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/keyforge/internal/adapter"
	"github.com/MKhiriev/keyforge/internal/app"
	"github.com/MKhiriev/keyforge/internal/validators"
	"github.com/MKhiriev/keyforge/models"
)

// Humanize turns any error of a generation call into the text shown on the
// output surface.
func Humanize(mode models.Mode, err error) string {
	if err == nil {
		return ""
	}

	var (
		validationErr *validators.ValidationError
		serviceErr    *ServiceError
		malformedErr  *MalformedResponseError
		transportErr  *adapter.TransportError
	)

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()

	case errors.As(err, &serviceErr):
		return serviceErr.Error()

	case errors.As(err, &malformedErr):
		return malformedErr.Error()

	case errors.Is(err, context.DeadlineExceeded):
		return app.MsgRequestTimedOut

	case errors.As(err, &transportErr):
		if transportErr.StatusCode == 0 {
			return app.MsgServiceUnavailable
		}
		return fmt.Sprintf(app.MsgTransportStatus, transportErr.StatusCode, http.StatusText(transportErr.StatusCode))
	}

	return fmt.Sprintf("%s: %v", mode.FailureMessage(), err)
}

// classify maps the raw outcome of a call onto the error kinds shown to the
// user. It returns nil for a successful envelope.
func classify(outcome Settled) error {
	if outcome.Err != nil {
		var transportErr *adapter.TransportError
		if errors.As(outcome.Err, &transportErr) {
			return outcome.Err
		}
		if errors.Is(outcome.Err, adapter.ErrUndecodableBody) {
			return &MalformedResponseError{
				Mode:   outcome.Mode,
				Reason: "response is not a valid JSON envelope",
				Err:    outcome.Err,
			}
		}
		return outcome.Err
	}

	if !outcome.Envelope.Success {
		return &ServiceError{
			Mode:       outcome.Mode,
			Message:    outcome.Envelope.ErrorMessage,
			StatusCode: outcome.Envelope.StatusCode,
		}
	}
	return nil
}
