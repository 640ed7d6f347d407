package internal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"go.uber.org/zap"
)

// ErrMetricsUnavailable marks failures reading OS resource counters.
// Handlers translate it into a 500 with a JSON error body.
var ErrMetricsUnavailable = errors.New("system metrics unavailable")

const cpuSampleInterval = 2 * time.Second

const (
	bytesPerMB = 1 << 20
	bytesPerGB = 1 << 30
)

// Collector reads system resource counters. CPU utilisation is
// sampled by a background loop so handlers never block on sampling;
// every other counter is read directly per request.
type Collector struct {
	log      *zap.Logger
	start    time.Time
	diskPath string

	mu         sync.RWMutex
	cpuPercent float64
	cpuSampled bool
}

func NewCollector(log *zap.Logger) *Collector {
	return &Collector{log: log, start: time.Now(), diskPath: "/"}
}

// Start primes the first CPU sample and keeps resampling until ctx is
// cancelled. Snapshot works without Start; it then samples once lazily.
func (c *Collector) Start(ctx context.Context) {
	c.sampleCPU()
	go func() {
		ticker := time.NewTicker(cpuSampleInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sampleCPU()
			}
		}
	}()
}

// sampleCPU stores utilisation since the previous sample, clamped to
// 0-100 (gopsutil can drift slightly past the bounds between reads).
func (c *Collector) sampleCPU() {
	percents, err := cpu.Percent(0, false)
	if err != nil || len(percents) == 0 {
		if c.log != nil {
			c.log.Debug("cpu sample failed", zap.Error(err))
		}
		return
	}
	v := math.Min(math.Max(percents[0], 0), 100)

	c.mu.Lock()
	c.cpuPercent = v
	c.cpuSampled = true
	c.mu.Unlock()
}

// Snapshot reads all counters. A failure on any of them is reported
// as ErrMetricsUnavailable; partial snapshots are not returned.
func (c *Collector) Snapshot() (MetricsSnapshot, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MetricsSnapshot{}, fmt.Errorf("%w: read memory counters: %v", ErrMetricsUnavailable, err)
	}
	du, err := disk.Usage(c.diskPath)
	if err != nil {
		return MetricsSnapshot{}, fmt.Errorf("%w: read disk usage for %s: %v", ErrMetricsUnavailable, c.diskPath, err)
	}
	counts, err := cpu.Counts(true)
	if err != nil {
		return MetricsSnapshot{}, fmt.Errorf("%w: read cpu count: %v", ErrMetricsUnavailable, err)
	}

	c.mu.RLock()
	cpuPct, sampled := c.cpuPercent, c.cpuSampled
	c.mu.RUnlock()
	if !sampled {
		c.sampleCPU()
		c.mu.RLock()
		cpuPct = c.cpuPercent
		c.mu.RUnlock()
	}

	return MetricsSnapshot{
		CPUPercent:        cpuPct,
		CPUCount:          counts,
		MemoryPercent:     round2(vm.UsedPercent),
		MemoryUsedMB:      round2(float64(vm.Used) / bytesPerMB),
		MemoryTotalMB:     round2(float64(vm.Total) / bytesPerMB),
		MemoryAvailableMB: round2(float64(vm.Available) / bytesPerMB),
		DiskPercent:       round2(du.UsedPercent),
		DiskUsedGB:        round2(float64(du.Used) / bytesPerGB),
		DiskFreeGB:        round2(float64(du.Free) / bytesPerGB),
		DiskTotalGB:       round2(float64(du.Total) / bytesPerGB),
		UptimeSeconds:     int64(time.Since(c.start).Seconds()),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
