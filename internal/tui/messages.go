package tui

import "github.com/MKhiriev/keyforge/internal/service"

type settledMsg struct {
	outcome service.Settled
}

type copiedMsg struct {
	artifactID string
	err        error
}

type copyRevertMsg struct {
	token int
}

type healthMsg struct {
	err error
}
