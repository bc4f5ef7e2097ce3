// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"

	"github.com/MKhiriev/keyforge/models"
)

// Client defines the lifecycle contract of the keyforge client.
type Client interface {
	// Run starts the interactive terminal UI and blocks until exit.
	Run(ctx context.Context) error

	// Generate runs one generation without a UI, printing the result to out
	// and errors to errOut. copyArtifact, when not empty, names the artifact
	// to put on the clipboard afterwards.
	Generate(ctx context.Context, mode models.Mode, form models.FormValues, copyArtifact string, out, errOut io.Writer) error

	// Health probes the generation service.
	Health(ctx context.Context) error
}
