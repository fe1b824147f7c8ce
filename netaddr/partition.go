package netaddr

import (
	"github.com/tutils/trand/prng"
)

// Partition splits nvalues across mask lengths 1..4. Each length takes an
// equal share of what is left, capped at its Capacity; the surplus moves on
// to the longer masks. The allocations always sum to nvalues.
func Partition(nvalues uint32) [MaxMaskBytes]uint32 {
	var alloc [MaxMaskBytes]uint32
	remaining := uint64(nvalues)
	for i := 0; i < MaxMaskBytes; i++ {
		share := remaining / uint64(MaxMaskBytes-i)
		if c := Capacity(i + 1); share > c {
			share = c
		}
		alloc[i] = uint32(share)
		remaining -= share
	}
	return alloc
}

// PickMaskLength draws a mask length uniformly among the lengths that were
// allocated at least one value. It returns 0 if none was.
func PickMaskLength(st *prng.State, alloc [MaxMaskBytes]uint32) int {
	var lengths [MaxMaskBytes]int
	n := 0
	for i, c := range alloc {
		if c > 0 {
			lengths[n] = i + 1
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return lengths[st.Uint64()%uint64(n)]
}

// FoldPrefix builds the m-byte prefix from the next draw of st.
func FoldPrefix(st *prng.State, m int) Prefix {
	return prefixOf(st.Uint64(), m)
}
