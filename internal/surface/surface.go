// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package surface owns the single on-screen region where a generation result
// or an error is shown.
//
// Nothing else writes to the region: every update goes through [Manager],
// whose Show and ShowError always clear the region first. That rule is what
// keeps a result of one mode from ever being visible next to another.
//
// A Manager is not safe for concurrent use; it is owned by the UI goroutine.
package surface

import (
	"github.com/MKhiriev/keyforge/internal/logger"
	"github.com/MKhiriev/keyforge/models"
)

// Artifact is one copyable piece of a result.
type Artifact struct {
	// ID is the stable identifier used by copy controls
	// (see models.Artifact* constants).
	ID    string
	Label string
	Text  string
	// Secret artifacts are obscured until revealed.
	Secret bool
}

// Detail is a read-only label/value row shown under the artifacts.
type Detail struct {
	Label string
	Value string
}

// Content is a formatted result ready to be shown in a mode's container.
type Content struct {
	Mode      models.Mode
	Title     string
	Artifacts []Artifact
	Details   []Detail
	Warning   string
}

// Artifact returns the artifact with the given id.
func (c Content) Artifact(id string) (Artifact, bool) {
	for _, a := range c.Artifacts {
		if a.ID == id {
			return a, true
		}
	}
	return Artifact{}, false
}

// Display mirrors region changes onto an output device.
type Display interface {
	Cleared()
	Shown(Content)
	Errored(message string)
}

// Region is a snapshot of the result region.
type Region struct {
	Visible bool
	// Contents holds the non-empty mode containers. After any Show it has
	// at most one entry.
	Contents map[models.Mode]Content
	// Error is the text of the error block, empty when none is shown.
	Error string
}

// Empty reports whether nothing is shown.
func (r Region) Empty() bool {
	return !r.Visible && len(r.Contents) == 0 && r.Error == ""
}

type container struct {
	content *Content
}

// Manager owns the result region.
type Manager struct {
	containers map[models.Mode]*container
	errorBlock string
	visible    bool

	display Display
	logger  *logger.Logger
}

// NewManager creates a Manager with one container per mode. When no modes
// are given a container is registered for every known mode. display may be
// nil.
func NewManager(display Display, log *logger.Logger, modes ...models.Mode) *Manager {
	if len(modes) == 0 {
		modes = models.Modes
	}
	if display == nil {
		display = NopDisplay{}
	}

	m := &Manager{
		containers: make(map[models.Mode]*container, len(modes)),
		display:    display,
		logger:     log,
	}
	for _, mode := range modes {
		m.containers[mode] = &container{}
	}
	return m
}

// Clear empties every container, removes the error block and hides the
// region. Calling it on an already empty region changes nothing.
func (m *Manager) Clear() {
	if m.isClear() {
		return
	}

	for _, c := range m.containers {
		c.content = nil
	}
	m.errorBlock = ""
	m.visible = false
	m.display.Cleared()
}

// Show clears the region and shows content in the container of mode and
// reports whether it did. If no container is registered for mode the region
// is left cleared, a diagnostic is logged and false is returned.
func (m *Manager) Show(mode models.Mode, content Content) bool {
	m.Clear()

	c, ok := m.containers[mode]
	if !ok {
		m.logger.Error().Str("mode", mode.String()).Msg("no result container registered for mode")
		return false
	}

	content.Mode = mode
	c.content = &content
	m.visible = true
	m.display.Shown(content)
	return true
}

// ShowError clears the region and shows a single error block.
func (m *Manager) ShowError(message string) {
	m.Clear()

	m.errorBlock = message
	m.visible = true
	m.display.Errored(message)
}

// Snapshot returns a copy of the region state.
func (m *Manager) Snapshot() Region {
	r := Region{
		Visible:  m.visible,
		Contents: make(map[models.Mode]Content),
		Error:    m.errorBlock,
	}
	for mode, c := range m.containers {
		if c.content != nil {
			r.Contents[mode] = *c.content
		}
	}
	return r
}

// Current returns the shown content, if any.
func (m *Manager) Current() (Content, bool) {
	for _, c := range m.containers {
		if c.content != nil {
			return *c.content, true
		}
	}
	return Content{}, false
}

// Artifact returns the currently shown artifact with the given id.
func (m *Manager) Artifact(id string) (Artifact, bool) {
	content, ok := m.Current()
	if !ok {
		return Artifact{}, false
	}
	return content.Artifact(id)
}

func (m *Manager) isClear() bool {
	if m.visible || m.errorBlock != "" {
		return false
	}
	for _, c := range m.containers {
		if c.content != nil {
			return false
		}
	}
	return true
}

// NopDisplay ignores every region change.
type NopDisplay struct{}

func (NopDisplay) Cleared() {}

func (NopDisplay) Shown(Content) {}

func (NopDisplay) Errored(string) {}
