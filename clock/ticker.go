package clock

import "time"

// Ticker delivers ticks on a channel
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// RealTicker wraps time.Ticker; ticks carry a monotonic clock reading
type RealTicker struct {
	t *time.Ticker
}

// NewTicker creates a ticker firing every d
func NewTicker(d time.Duration) *RealTicker {
	return &RealTicker{t: time.NewTicker(d)}
}

// C returns the tick channel
func (r *RealTicker) C() <-chan time.Time {
	return r.t.C
}

// Stop halts the ticker; the channel is not closed
func (r *RealTicker) Stop() {
	r.t.Stop()
}
