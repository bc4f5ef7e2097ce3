// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/keyforge/internal/config"
	"github.com/MKhiriev/keyforge/internal/logger"
	"github.com/MKhiriev/keyforge/internal/utils"
	"github.com/MKhiriev/keyforge/models"
)

const healthPath = "/health"

type httpGenerationAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPGenerationAdapter constructs the HTTP/JSON implementation of
// [GenerationAdapter]. It normalises the base URL from cfg.HTTPAddress and
// stamps every request with a request ID from ids.
//
// The per-request deadline is owned by the caller's context; cfg's
// RequestTimeout is applied to the client as an upper bound.
func NewHTTPGenerationAdapter(cfg config.ClientAdapter, ids utils.IDGenerator, log *logger.Logger) (GenerationAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(ids)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpGenerationAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Generate implements [GenerationAdapter]. It POSTs req as JSON to the
// endpoint of req.Mode().
func (h *httpGenerationAdapter) Generate(ctx context.Context, req models.GenerationRequest) (models.Envelope, error) {
	if req == nil {
		return models.Envelope{}, ErrNilRequest
	}
	mode := req.Mode()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(mode.Endpoint())
	if err != nil {
		h.requestLogger(ctx, mode).Warn().Err(err).Msg("generation request failed")
		return models.Envelope{}, &TransportError{Err: err}
	}

	status := resp.StatusCode()
	log := h.requestLogger(ctx, mode).With().
		Int("status", status).
		Dur("took", resp.Time()).
		Logger()

	env, decodeErr := normalizeEnvelope(resp.Body(), status)

	if !isSuccessStatus(status) {
		if decodeErr != nil {
			log.Warn().Err(decodeErr).Msg("generation service returned an unusable error response")
			return models.Envelope{}, &TransportError{StatusCode: status, Err: decodeErr}
		}
		env.Success = false
		log.Info().Str("error_message", env.ErrorMessage).Msg("service rejected generation request")
		return env, nil
	}

	if decodeErr != nil {
		log.Warn().Err(decodeErr).Msg("undecodable generation response")
		return models.Envelope{}, decodeErr
	}

	log.Debug().Bool("success", env.Success).Msg("generation response received")
	return env, nil
}

// requestLogger returns the call logger carried by ctx, or the adapter's own
// logger tagged with mode when ctx carries none.
func (h *httpGenerationAdapter) requestLogger(ctx context.Context, mode models.Mode) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		c = c.Str("mode", mode.String())
		if id, ok := utils.GetRequestIDFromContext(ctx); ok {
			c = c.Str("request_id", id)
		}
		return c
	})
	return l
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health implements [GenerationAdapter].
func (h *httpGenerationAdapter) Health(ctx context.Context) error {
	started := time.Now()
	resp, err := h.client.R().
		SetContext(ctx).
		Get(healthPath)
	if err != nil {
		return &TransportError{Err: err}
	}

	if !isSuccessStatus(resp.StatusCode()) {
		return &TransportError{StatusCode: resp.StatusCode(), Err: ErrUnhealthy}
	}

	var body healthResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil || body.Status != "healthy" {
		return fmt.Errorf("%w: %q", ErrUnhealthy, strings.TrimSpace(string(resp.Body())))
	}

	h.logger.Debug().Dur("took", time.Since(started)).Msg("generation service healthy")
	return nil
}
