// Package stream implements the two-level seeding protocol.
//
// A Selector lives for the whole process and picks which of the caller's K
// distinct values a request gets. The value itself comes from a fresh stream
// seeded by (caller seed, index), so the content for a given index never
// depends on how many requests came before it.
package stream

import (
	"sync"

	"github.com/tutils/trand"
	"github.com/tutils/trand/prng"
)

// Selector is the process-wide index stream. It is safe for concurrent use;
// every Pick consumes exactly one draw.
type Selector struct {
	opts SelectorOptions

	mu     sync.Mutex
	inited bool
	state  prng.State
	draws  uint64
}

// NewSelector create a new Selector. The state is seeded lazily on first use.
func NewSelector(opts ...SelectorOption) *Selector {
	opt := newSelectorOptions(opts...)
	return &Selector{
		opts: *opt,
	}
}

// initLocked seeds the state once. Caller holds mu.
func (s *Selector) initLocked() {
	if s.inited {
		return
	}
	s.state = prng.Seed(s.opts.entropy())
	s.inited = true
}

// Next returns the next raw selector draw.
func (s *Selector) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()
	s.draws++
	return s.state.Uint64()
}

// Pick draws an index in [0, count). A zero count is rejected without
// touching the selector.
func (s *Selector) Pick(count uint32) (uint32, error) {
	if count == 0 {
		return 0, trand.NewDomainError("count", "number of distinct values must be at least 1")
	}
	return uint32(s.Next() % uint64(count)), nil
}

// ValueStream picks an index and derives the matching value stream.
func (s *Selector) ValueStream(seed, count uint32) (prng.State, uint32, error) {
	idx, err := s.Pick(count)
	if err != nil {
		return prng.State{}, 0, err
	}
	return Derive(seed, idx), idx, nil
}

// Snapshot returns the current state and the number of draws taken. An
// uninitialised selector reports a zero state.
func (s *Selector) Snapshot() (prng.State, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.draws
}
