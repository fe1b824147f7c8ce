package netaddr

import (
	"github.com/tutils/trand/prng"
)

// Inet returns a /32 host address from the low 4 bytes of one draw.
func Inet(st *prng.State) Prefix {
	b := drawBytes(st.Uint64())
	var p Prefix
	copy(p.Addr[:], b[:4])
	p.Bits = 32
	return p
}

// Capacity returns the number of non-zero values representable in m bytes,
// 256^m - 1.
func Capacity(m int) uint64 {
	return uint64(1)<<(8*uint(m)) - 1
}

// Budget is the count of all non-zero 1- to 4-byte values.
var Budget = func() uint64 {
	var total uint64
	for m := 1; m <= MaxMaskBytes; m++ {
		total += Capacity(m)
	}
	return total
}()

// MaskLength maps a value in [0, Budget) to the first byte length whose
// cumulative capacity reaches it.
func MaskLength(v uint64) int {
	var cum uint64
	for m := 1; m < MaxMaskBytes; m++ {
		cum += Capacity(m)
		if cum >= v {
			return m
		}
	}
	return MaxMaskBytes
}

// CIDR picks a mask length weighted by the number of addresses of each
// length, then folds a second draw into that many bytes.
func CIDR(st *prng.State) Prefix {
	m := MaskLength(st.Uint64() % Budget)
	return prefixOf(st.Uint64(), m)
}
