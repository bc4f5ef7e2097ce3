package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/keyforge/internal/adapter"
)

type reports struct {
	mu   sync.Mutex
	errs []error
}

func (r *reports) add(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *reports) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errs)
}

func TestHealthMonitor_ProbesImmediatelyAndPeriodically(t *testing.T) {
	defer goleak.VerifyNone(t)
	f := newFixture(t, time.Second)

	var calls atomic.Int64
	f.adapter.EXPECT().Health(gomock.Any()).DoAndReturn(func(context.Context) error {
		calls.Add(1)
		return nil
	}).AnyTimes()

	r := &reports{}
	mon := NewHealthMonitor(f.svc)
	mon.Start(context.Background(), 10*time.Millisecond, r.add)

	assert.Eventually(t, func() bool { return r.len() >= 3 }, time.Second, 5*time.Millisecond)
	mon.Stop()

	stopped := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load(), "no probes after Stop")
}

func TestHealthMonitor_ReportsErrors(t *testing.T) {
	defer goleak.VerifyNone(t)
	f := newFixture(t, time.Second)

	f.adapter.EXPECT().Health(gomock.Any()).Return(adapter.ErrUnhealthy).AnyTimes()

	got := make(chan error, 1)
	mon := NewHealthMonitor(f.svc)
	mon.Start(context.Background(), time.Hour, func(err error) {
		select {
		case got <- err:
		default:
		}
	})
	defer mon.Stop()

	select {
	case err := <-got:
		assert.ErrorIs(t, err, adapter.ErrUnhealthy)
	case <-time.After(time.Second):
		t.Fatal("first probe did not run")
	}
}

func TestHealthMonitor_StopIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)
	f := newFixture(t, time.Second)
	f.adapter.EXPECT().Health(gomock.Any()).Return(nil).AnyTimes()

	mon := NewHealthMonitor(f.svc)
	assert.NotPanics(t, func() { mon.Stop() })

	mon.Start(context.Background(), 0, func(error) {})
	mon.Stop()
	assert.NotPanics(t, func() { mon.Stop() })
}

func TestHealthMonitor_ContextCancelStops(t *testing.T) {
	defer goleak.VerifyNone(t)
	f := newFixture(t, time.Second)
	f.adapter.EXPECT().Health(gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	mon := NewHealthMonitor(f.svc)
	mon.Start(ctx, 10*time.Millisecond, func(error) {})
	cancel()

	done := make(chan struct{})
	go func() {
		mon.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}
