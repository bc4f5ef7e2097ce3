// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

func (cfg *ClientConfig) validate() error {
	if !validAddress(cfg.Adapter.HTTPAddress) || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
		return ErrInvalidLogConfigs
	}
	if cfg.Log.FilePath == "" || cfg.Log.MaxSizeMB <= 0 || cfg.Log.MaxBackups < 0 {
		return ErrInvalidLogConfigs
	}

	if !cfg.UI.DefaultMode.Valid() || cfg.UI.CopyFeedback <= 0 {
		return ErrInvalidUIConfigs
	}

	return nil
}

func validAddress(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	return err == nil && u.Host != ""
}
