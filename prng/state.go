// Package prng implements the xoroshiro128** generator and its splitmix64
// seeding.
//
// The constants must not change: identical seeds have to produce identical
// streams on every platform.
package prng

import (
	"math"
	"math/bits"
)

// splitmix64 constants
const (
	golden = 0x9E3779B97F4A7C15
	mix1   = 0xBF58476D1CE4E5B9
	mix2   = 0x94D049BB133111EB
)

// Replacement for an all-zero state (Knuth's LCG parameters).
const (
	fallbackS0 = 0x5851F42D4C957F2D
	fallbackS1 = 0x14057B7EF767814F
)

// State is the 128-bit generator state. It must never be all zero, that is a
// fixed point of the step function.
type State struct {
	S0, S1 uint64
}

func splitmix64(seed *uint64) uint64 {
	*seed += golden
	v := *seed
	v = (v ^ (v >> 30)) * mix1
	v = (v ^ (v >> 27)) * mix2
	return v ^ (v >> 31)
}

// Seed expands a 64-bit seed into a State.
func Seed(seed uint64) State {
	var st State
	st.S0 = splitmix64(&seed)
	st.S1 = splitmix64(&seed)
	st.check()
	return st
}

// check repairs an all-zero state.
func (s *State) check() {
	if s.S0 == 0 && s.S1 == 0 {
		s.S0 = fallbackS0
		s.S1 = fallbackS1
	}
}

// IsZero reports whether s is the degenerate all-zero state.
func (s State) IsZero() bool {
	return s.S0 == 0 && s.S1 == 0
}

// Uint64 returns the next draw and advances the state.
func (s *State) Uint64() uint64 {
	s0 := s.S0
	sx := s.S1 ^ s0
	v := bits.RotateLeft64(s0*5, 7) * 9

	s.S0 = bits.RotateLeft64(s0, 24) ^ sx ^ (sx << 16)
	s.S1 = bits.RotateLeft64(sx, 37)
	return v
}

// Uint32 returns the upper 32 bits of one draw.
func (s *State) Uint32() uint32 {
	return uint32(s.Uint64() >> 32)
}

// Float64 returns a value in [0, 1) built from the upper 52 bits of one draw.
func (s *State) Float64() float64 {
	return math.Ldexp(float64(s.Uint64()>>(64-52)), -52)
}
