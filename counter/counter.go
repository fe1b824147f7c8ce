// Package counter tracks how many values were generated.
package counter

import "time"

// Counter is a cumulative metric
type Counter interface {
	Value() int64
	RatePerSec() int64

	Add(n int64)
}

// Nop is a Counter that discards everything.
var Nop Counter = nop{}

type nop struct{}

func (nop) Value() int64      { return 0 }
func (nop) RatePerSec() int64 { return 0 }
func (nop) Add(int64)         {}

// Report calls fn with the counter's value and rate every period until done
// is closed.
func Report(c Counter, every time.Duration, done <-chan struct{}, fn func(value, ratePerSec int64)) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			fn(c.Value(), c.RatePerSec())
		case <-done:
			return
		}
	}
}
