package service

import (
	"sync"

	"github.com/MKhiriev/keyforge/models"
)

// Sequencer hands out per-mode, monotonically increasing sequence numbers.
// Only the latest number of a mode is current.
type Sequencer struct {
	mu   sync.Mutex
	last map[models.Mode]uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{last: make(map[models.Mode]uint64)}
}

// Next issues the next number for mode.
func (s *Sequencer) Next(mode models.Mode) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last[mode]++
	return s.last[mode]
}

// IsLatest reports whether seq is the latest number issued for mode.
func (s *Sequencer) IsLatest(mode models.Mode, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return seq != 0 && s.last[mode] == seq
}

// Invalidate makes every number issued so far for mode stale.
func (s *Sequencer) Invalidate(mode models.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last[mode]++
}

// InvalidateAll invalidates every mode that has issued a number.
func (s *Sequencer) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for mode := range s.last {
		s.last[mode]++
	}
}
