// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service orchestrates generation requests for the terminal UI and
// the headless command line.
//
// The flow of one submission is:
//
//	Submit  -> surface cleared, form validated, loading entered, *Call returned
//	Call.Do -> request sent with a client timeout (may run on any goroutine)
//	Settle  -> loading exited, outcome rendered onto the output surface
//
// UI state is an explicit [UIState] value. Every operation takes the current
// state and returns the next one; nothing in this package keeps UI state of
// its own besides the per-mode sequence counters.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/keyforge/models"
)

// GenerationService defines the contract of the generation orchestrator.
// Submit, Settle, SwitchTab and Dismiss mutate the output surface and must be
// called from the goroutine that owns it.
type GenerationService interface {
	// Submit clears the output surface and validates form for mode. On a
	// validation failure the error is shown immediately, any call of mode
	// still in flight becomes stale and the returned call is nil. Otherwise the returned state is loading and the caller
	// must run the call and pass its outcome to Settle.
	Submit(ctx context.Context, state UIState, mode models.Mode, form models.FormValues) (UIState, *Call)

	// Settle exits loading for the latest call of the active mode and
	// renders its outcome. Outcomes of superseded calls are dropped and the
	// state is returned unchanged.
	Settle(state UIState, outcome Settled) UIState

	// SwitchTab activates mode, clears the output surface and supersedes
	// every call still in flight.
	SwitchTab(state UIState, mode models.Mode) UIState

	// Dismiss clears the output surface without touching pending calls.
	Dismiss(state UIState) UIState

	// Health reports whether the generation service is reachable and
	// healthy.
	Health(ctx context.Context) error
}

// ClipboardService copies artifacts shown on the output surface.
type ClipboardService interface {
	// Prepare reads the text of artifactID from the output surface and
	// returns a function writing it to the system clipboard. Prepare must be
	// called from the goroutine owning the surface; the returned function
	// may run anywhere.
	Prepare(artifactID string) (func() error, error)

	// Copy is Prepare followed by the write.
	Copy(artifactID string) error
}

// HealthMonitor defines the contract for a background worker that probes the
// generation service periodically.
type HealthMonitor interface {
	// Start probes immediately and then every interval, defaulting to 30
	// seconds if interval is zero or negative, passing every result to
	// report. Any previously running monitor is stopped first.
	Start(ctx context.Context, interval time.Duration, report func(error))

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
