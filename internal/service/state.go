package service

import (
	"github.com/MKhiriev/keyforge/internal/app"
	"github.com/MKhiriev/keyforge/internal/surface"
	"github.com/MKhiriev/keyforge/models"
)

// Ticket identifies one issued generation call.
type Ticket struct {
	Mode      models.Mode
	Seq       uint64
	RequestID string
}

// Controls is the state of the submit controls.
type Controls struct {
	Disabled bool
	Label    string
}

// ResultKind tells what the last settled call left on the surface.
type ResultKind int

const (
	ResultNone ResultKind = iota
	ResultContent
	ResultError
)

// LastResult is the outcome currently shown for the active mode.
type LastResult struct {
	Kind    ResultKind
	Content surface.Content
	Error   string
}

// UIState is the process wide UI state, scoped to one active mode.
type UIState struct {
	ActiveMode models.Mode
	Loading    bool
	// InFlight is the latest call issued for ActiveMode while Loading.
	InFlight   Ticket
	Controls   Controls
	LastResult LastResult

	priorLabel string
}

// NewUIState returns the idle state with mode active.
func NewUIState(mode models.Mode) UIState {
	return UIState{
		ActiveMode: mode,
		Controls:   Controls{Label: app.MsgGenerate},
	}
}

// WithTab activates mode. Loading ends and the last result is dropped.
func (s UIState) WithTab(mode models.Mode) UIState {
	s = s.EndLoading()
	s.ActiveMode = mode
	s.LastResult = LastResult{}
	return s
}

// Dismiss drops the last result.
func (s UIState) Dismiss() UIState {
	s.LastResult = LastResult{}
	return s
}

// BeginLoading disables the controls and records their label. A second call
// while already loading only replaces the in-flight ticket, so the label
// saved first is the one restored.
func (s UIState) BeginLoading(t Ticket) UIState {
	if !s.Loading {
		s.priorLabel = s.Controls.Label
	}
	s.Loading = true
	s.InFlight = t
	s.Controls = Controls{Disabled: true, Label: app.MsgGenerating}
	return s
}

// EndLoading restores the controls exactly as they were before loading.
func (s UIState) EndLoading() UIState {
	if !s.Loading {
		return s
	}
	label := s.priorLabel
	if label == "" {
		label = app.MsgGenerate
	}
	s.Loading = false
	s.InFlight = Ticket{}
	s.Controls = Controls{Label: label}
	s.priorLabel = ""
	return s
}

// WithResult records content as the last result.
func (s UIState) WithResult(c surface.Content) UIState {
	s.LastResult = LastResult{Kind: ResultContent, Content: c}
	return s
}

// WithError records message as the last result.
func (s UIState) WithError(message string) UIState {
	s.LastResult = LastResult{Kind: ResultError, Error: message}
	return s
}
