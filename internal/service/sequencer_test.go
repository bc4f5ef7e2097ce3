package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/keyforge/models"
)

func TestSequencer_PerModeCounters(t *testing.T) {
	s := NewSequencer()

	assert.Equal(t, uint64(1), s.Next(models.ModeSSHKey))
	assert.Equal(t, uint64(2), s.Next(models.ModeSSHKey))
	assert.Equal(t, uint64(1), s.Next(models.ModePGPKey))

	assert.True(t, s.IsLatest(models.ModeSSHKey, 2))
	assert.False(t, s.IsLatest(models.ModeSSHKey, 1))
	assert.True(t, s.IsLatest(models.ModePGPKey, 1))
	assert.False(t, s.IsLatest(models.ModeRSAKey, 0))
}

func TestSequencer_Invalidate(t *testing.T) {
	s := NewSequencer()
	seq := s.Next(models.ModeRSAKey)
	other := s.Next(models.ModePassphrase)

	s.Invalidate(models.ModeRSAKey)
	assert.False(t, s.IsLatest(models.ModeRSAKey, seq))
	assert.True(t, s.IsLatest(models.ModePassphrase, other))

	s.InvalidateAll()
	assert.False(t, s.IsLatest(models.ModePassphrase, other))

	// numbers keep increasing after invalidation
	assert.Greater(t, s.Next(models.ModeRSAKey), seq+1)
}

func TestSequencer_ConcurrentNextIsUnique(t *testing.T) {
	s := NewSequencer()

	const n = 100
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[uint64]struct{}, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := s.Next(models.ModePassphrase)
			mu.Lock()
			seen[v] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
	assert.True(t, s.IsLatest(models.ModePassphrase, n))
}
