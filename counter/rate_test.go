package counter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateCounter(t *testing.T) {
	base := time.Unix(1000, 0)
	cur := base
	now = func() time.Time { return cur }
	defer func() { now = time.Now }()

	c := NewRateCounter(time.Second)
	c.Add(10)
	assert.Equal(t, int64(10), c.Value())
	assert.Zero(t, c.RatePerSec())

	cur = base.Add(2 * time.Second)
	c.Add(30)
	assert.Equal(t, int64(40), c.Value())
	assert.Equal(t, int64(20), c.RatePerSec())

	cur = base.Add(2500 * time.Millisecond)
	c.Add(5)
	assert.Equal(t, int64(20), c.RatePerSec(), "rate kept inside the window")

	// window closed by a read, without further adds
	cur = base.Add(4500 * time.Millisecond)
	assert.Equal(t, int64(2), c.RatePerSec())

	cur = base.Add(10 * time.Second)
	assert.Zero(t, c.RatePerSec(), "idle window")
	assert.Equal(t, int64(45), c.Value())
}

func TestRateCounterConcurrent(t *testing.T) {
	c := NewRateCounter(time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(10000), c.Value())
}
