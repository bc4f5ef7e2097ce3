// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators turns raw generation form values into validated
// requests and enforces the client side rules of every generation mode.
//
// Core concepts:
//   - Validator: validates an already parsed request, optionally scoped to
//     named fields (used for inline hints while a form is being edited).
//   - RequestBuilder: parses raw form values into a request and validates it.
//   - Comment policies: each mode has exactly one comment rule, see
//     [CommentPolicyFor].
//
// Every failure is a *[ValidationError] wrapping one of the sentinel errors
// of this package, so callers can match with errors.Is and still show the
// field that failed.
package validators

import (
	"context"

	"github.com/MKhiriev/keyforge/models"
)

// Validator validates the provided input and optionally restricts validation
// to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

// RequestBuilder parses raw form values of a mode into a validated request.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock
type RequestBuilder interface {
	Build(ctx context.Context, mode models.Mode, form models.FormValues) (models.GenerationRequest, error)
}
