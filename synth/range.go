// Package synth maps raw draws from a value stream onto typed values.
//
// Integer ranges use a plain modulo reduction. It is not bias corrected: for
// widths that do not divide 2^64 the low end of the range is very slightly
// more likely.
package synth

import (
	"math"

	"github.com/tutils/trand"
	"github.com/tutils/trand/prng"
)

// CheckInt validates integer bounds.
func CheckInt(lo, hi int64) error {
	if lo > hi {
		return trand.NewDomainError("min/max", "invalid combination of min/max values (%d/%d)", lo, hi)
	}
	return nil
}

// Int32 returns a value in [lo, hi). lo == hi yields lo.
func Int32(st *prng.State, lo, hi int32) (int32, error) {
	if err := CheckInt(int64(lo), int64(hi)); err != nil {
		return 0, err
	}
	if lo == hi {
		return lo, nil
	}
	width := uint64(int64(hi) - int64(lo))
	return int32(int64(lo) + int64(st.Uint64()%width)), nil
}

// Int64 returns a value in [lo, hi). lo == hi yields lo.
func Int64(st *prng.State, lo, hi int64) (int64, error) {
	if err := CheckInt(lo, hi); err != nil {
		return 0, err
	}
	if lo == hi {
		return lo, nil
	}
	// two's complement keeps the width exact even when hi-lo overflows int64
	width := uint64(hi) - uint64(lo)
	return int64(uint64(lo) + st.Uint64()%width), nil
}

// CheckFloat validates float bounds. The width hi-lo must be finite.
func CheckFloat(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return trand.NewDomainError("min/max", "bounds must be numbers (%g/%g)", lo, hi)
	}
	if lo > hi {
		return trand.NewDomainError("min/max", "invalid combination of min/max values (%g/%g)", lo, hi)
	}
	if math.IsInf(hi-lo, 0) {
		return trand.NewDomainError("min/max", "range of min/max values overflows (%g/%g)", lo, hi)
	}
	return nil
}

// Float64 returns a value in [lo, hi). Rounding of lo + f*(hi-lo) never
// reaches hi.
func Float64(st *prng.State, lo, hi float64) (float64, error) {
	if err := CheckFloat(lo, hi); err != nil {
		return 0, err
	}
	v := lo + st.Float64()*(hi-lo)
	if v >= hi && hi > lo {
		v = math.Nextafter(hi, lo)
	}
	return v, nil
}

// Float32 returns a value in [lo, hi). Rounding to float32 never reaches hi.
func Float32(st *prng.State, lo, hi float32) (float32, error) {
	if err := CheckFloat(float64(lo), float64(hi)); err != nil {
		return 0, err
	}
	v := float32(float64(lo) + st.Float64()*(float64(hi)-float64(lo)))
	if v >= hi && hi > lo {
		v = math.Nextafter32(hi, lo)
	}
	return v, nil
}

// Length returns a length in [minLen, maxLen). Equal bounds give a fixed
// length.
func Length(st *prng.State, minLen, maxLen int) (int, error) {
	if err := CheckLength(minLen, maxLen); err != nil {
		return 0, err
	}
	if minLen == maxLen {
		return minLen, nil
	}
	return minLen + int(st.Uint64()%uint64(maxLen-minLen)), nil
}

// CheckLength validates length bounds.
func CheckLength(minLen, maxLen int) error {
	if minLen < 1 {
		return trand.NewDomainError("length", "minimal length must be a positive integer (%d)", minLen)
	}
	if maxLen < minLen {
		return trand.NewDomainError("length", "maximal length must not be less than minimal length (%d/%d)", minLen, maxLen)
	}
	return nil
}
