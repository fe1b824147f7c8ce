package counter

import (
	"sync"
	"sync/atomic"
	"time"
)

var _ Counter = &rateCounter{}

// clock is replaced in tests
var now = time.Now

// rateCounter reports the throughput of the last closed window. A window is
// closed by whichever of Add or RatePerSec first sees it expired, so an idle
// counter falls back to zero instead of repeating its last busy rate.
type rateCounter struct {
	total  atomic.Int64
	perSec atomic.Int64
	window time.Duration

	mu      sync.Mutex
	start   time.Time
	pending int64
}

// NewRateCounter create a counter whose rate covers windows of the given length
func NewRateCounter(window time.Duration) Counter {
	return &rateCounter{
		window: window,
		start:  now(),
	}
}

// Value implements Counter.
func (c *rateCounter) Value() int64 {
	return c.total.Load()
}

// RatePerSec implements Counter.
func (c *rateCounter) RatePerSec() int64 {
	c.mu.Lock()
	c.rollLocked(now())
	c.mu.Unlock()
	return c.perSec.Load()
}

// Add implements Counter.
func (c *rateCounter) Add(n int64) {
	c.total.Add(n)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending += n
	c.rollLocked(now())
}

func (c *rateCounter) rollLocked(t time.Time) {
	elapsed := t.Sub(c.start)
	if elapsed < c.window || elapsed <= 0 {
		return
	}
	c.perSec.Store(int64(float64(c.pending) / elapsed.Seconds()))
	c.pending = 0
	c.start = t
}
