// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the remote generation service.
//
// The primary abstraction is [GenerationAdapter], which decouples the
// service layer from the protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPGenerationAdapter]).
//
// Every response shape the service has ever produced is normalised into the
// canonical [models.Envelope] before it leaves this package, so callers never
// see legacy keys such as "result" or a structured "error" object.
package adapter

import (
	"context"

	"github.com/MKhiriev/keyforge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/generation_adapter_mock.go -package=mock

// GenerationAdapter defines transport-agnostic communication with the
// generation service.
type GenerationAdapter interface {
	// Generate sends req to the endpoint of its mode and returns the
	// normalised envelope. A non-2xx response whose body still carries an
	// error message is returned as an unsuccessful envelope, not as an
	// error. Network failures and undecodable non-2xx bodies are returned
	// as *[TransportError]; an undecodable 2xx body wraps
	// [ErrUndecodableBody].
	Generate(ctx context.Context, req models.GenerationRequest) (models.Envelope, error)

	// Health probes GET /health and returns nil when the service reports
	// itself healthy.
	Health(ctx context.Context) error
}
