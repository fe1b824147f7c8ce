package stream

import "github.com/tutils/trand/prng"

// Derive returns the value stream for (seed, index). It is a pure function
// of its arguments.
func Derive(seed, index uint32) prng.State {
	return prng.Seed(uint64(seed)<<32 | uint64(index))
}
