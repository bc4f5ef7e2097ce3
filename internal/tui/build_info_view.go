// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/keyforge/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("keyforge"))
	b.WriteString("\n\n")
	b.WriteString(info.String())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc: back"))

	return overlayBoxStyle.Render(b.String())
}
