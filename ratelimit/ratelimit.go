// Package ratelimit caps contact form submissions per client IP using a
// fixed-window counter. The window counter trades the precision of a sliding
// log for O(1) memory per key, which is all an abuse heuristic needs.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Defaults for the submission limiter.
const (
	DefaultMaxRequests = 3
	DefaultWindow      = 15 * time.Minute
	DefaultSweepEvery  = 5 * time.Minute
)

// Limiter reports whether a caller has exhausted its submissions for the
// current window. Implementations must be safe for concurrent use.
type Limiter interface {
	IsRateLimited(ctx context.Context, ip string) (bool, error)
}

type entry struct {
	count int
	first time.Time
}

var _ Limiter = &Memory{}

// Memory is an in-process Limiter. Counters live in a plain map guarded by a
// mutex and are swept periodically once expired. State is per process: a
// restart forgets all counters, which is acceptable for abuse mitigation.
type Memory struct {
	mu      sync.Mutex
	entries map[string]*entry

	max        int
	window     time.Duration
	sweepEvery time.Duration
	clock      func() time.Time

	sweeping bool
	stop     chan struct{}
}

// NewMemory returns a Memory limiter. Non-positive arguments fall back to the
// package defaults. The background sweep starts lazily on first use.
func NewMemory(max int, window, sweepEvery time.Duration) *Memory {
	if max <= 0 {
		max = DefaultMaxRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}
	if sweepEvery <= 0 {
		sweepEvery = DefaultSweepEvery
	}

	return &Memory{
		entries:    make(map[string]*entry),
		max:        max,
		window:     window,
		sweepEvery: sweepEvery,
		clock:      time.Now,
	}
}

// IsRateLimited records an attempt by ip and reports whether it should be
// rejected. The first call in a window creates the counter, an expired
// counter is overwritten, and a caller already at the limit is rejected
// without inflating its counter any further. It never returns an error.
func (m *Memory) IsRateLimited(_ context.Context, ip string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.startSweepLocked()

	now := m.clock()

	e, ok := m.entries[ip]
	if !ok || now.Sub(e.first) >= m.window {
		m.entries[ip] = &entry{count: 1, first: now}
		return false, nil
	}

	if e.count >= m.max {
		return true, nil
	}

	e.count++

	return false, nil
}

// Reset clears all counters and stops the background sweep. It exists for
// test isolation, not for production use.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]*entry)

	if m.sweeping {
		close(m.stop)
		m.sweeping = false
	}
}

// startSweepLocked launches the expiry sweep goroutine if it isn't already
// running. Callers must hold m.mu.
func (m *Memory) startSweepLocked() {
	if m.sweeping {
		return
	}

	m.sweeping = true
	m.stop = make(chan struct{})

	go m.sweep(m.stop)
}

func (m *Memory) sweep(stop chan struct{}) {
	t := time.NewTicker(m.sweepEvery)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			m.deleteExpired()
		case <-stop:
			return
		}
	}
}

func (m *Memory) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock()

	for ip, e := range m.entries {
		if now.Sub(e.first) >= m.window {
			delete(m.entries, ip)
		}
	}
}
