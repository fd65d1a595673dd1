package clock

import (
	"sync"
	"time"
)

// ManualTicker fires only when Tick is called, for deterministic tests
type ManualTicker struct {
	mu      sync.Mutex
	ch      chan time.Time
	now     time.Time
	step    time.Duration
	stopped bool
}

// NewManualTicker creates a ticker whose n-th tick reports start+n*step
func NewManualTicker(start time.Time, step time.Duration) *ManualTicker {
	return &ManualTicker{
		ch:   make(chan time.Time),
		now:  start,
		step: step,
	}
}

// C returns the tick channel
func (m *ManualTicker) C() <-chan time.Time {
	return m.ch
}

// Tick blocks until the consumer receives one tick
// Returns false once the ticker is stopped
func (m *ManualTicker) Tick() bool {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return false
	}
	m.now = m.now.Add(m.step)
	now := m.now
	m.mu.Unlock()

	m.ch <- now
	return true
}

// TryTick delivers one tick or gives up after timeout
func (m *ManualTicker) TryTick(timeout time.Duration) bool {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return false
	}
	now := m.now.Add(m.step)
	m.mu.Unlock()

	select {
	case m.ch <- now:
		m.mu.Lock()
		m.now = now
		m.mu.Unlock()
		return true
	case <-time.After(timeout):
		return false
	}
}

// Stop marks the ticker stopped; later Tick calls return false
func (m *ManualTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

// Stopped reports whether Stop was called
func (m *ManualTicker) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}
