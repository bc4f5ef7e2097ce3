package service

import (
	"context"
	"sync"
	"time"
)

// DefaultHealthInterval is the probe period when none is given.
const DefaultHealthInterval = 30 * time.Second

type healthMonitor struct {
	generation GenerationService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHealthMonitor creates a healthMonitor that calls generation.Health on a
// ticker. The monitor is idle until Start is called.
func NewHealthMonitor(generation GenerationService) HealthMonitor {
	return &healthMonitor{generation: generation}
}

// Start implements HealthMonitor. It stops any previously running monitor,
// then launches a background goroutine that probes right away and then every
// interval. The goroutine exits when ctx is cancelled or Stop is called.
func (m *healthMonitor) Start(ctx context.Context, interval time.Duration, report func(error)) {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}

	m.Stop()

	m.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		probe := func() {
			err := m.generation.Health(jobCtx)
			if jobCtx.Err() != nil {
				return
			}
			report(err)
		}

		probe()
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				probe()
			}
		}
	}()
}

// Stop implements HealthMonitor. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the monitor is not running.
func (m *healthMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}
