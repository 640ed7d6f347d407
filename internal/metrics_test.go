package internal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSnapshotBounds(t *testing.T) {
	c := NewCollector(zap.NewNop())

	snap, err := c.Snapshot()
	if err != nil {
		t.Skipf("system counters unavailable on this host: %v", err)
	}

	assert.GreaterOrEqual(t, snap.CPUPercent, 0.0)
	assert.LessOrEqual(t, snap.CPUPercent, 100.0)
	assert.Positive(t, snap.CPUCount)

	assert.GreaterOrEqual(t, snap.MemoryPercent, 0.0)
	assert.LessOrEqual(t, snap.MemoryPercent, 100.0)
	assert.LessOrEqual(t, snap.MemoryUsedMB, snap.MemoryTotalMB)
	assert.Positive(t, snap.MemoryTotalMB)

	assert.GreaterOrEqual(t, snap.DiskPercent, 0.0)
	assert.LessOrEqual(t, snap.DiskPercent, 100.0)

	assert.GreaterOrEqual(t, snap.UptimeSeconds, int64(0))
}

func TestSnapshotDiskFailure(t *testing.T) {
	c := NewCollector(zap.NewNop())
	c.diskPath = "/path/that/does/not/exist"

	_, err := c.Snapshot()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMetricsUnavailable))
}

func TestCollectorStartStopsOnCancel(t *testing.T) {
	c := NewCollector(zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	c.Start(ctx)
	cancel()

	// the sampler must have primed a value before Start returned
	c.mu.RLock()
	sampled := c.cpuSampled
	c.mu.RUnlock()
	assert.True(t, sampled)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.46, round2(2.456))
	assert.Equal(t, 2.45, round2(2.454))
	assert.Equal(t, 0.0, round2(0))
}

func TestUptimeAdvances(t *testing.T) {
	c := NewCollector(zap.NewNop())
	c.start = time.Now().Add(-3 * time.Second)

	snap, err := c.Snapshot()
	if err != nil {
		t.Skipf("system counters unavailable on this host: %v", err)
	}
	assert.GreaterOrEqual(t, snap.UptimeSeconds, int64(3))
}
