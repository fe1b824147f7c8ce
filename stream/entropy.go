package stream

import (
	crand "crypto/rand"
	"encoding/binary"
)

// EntropyFunc supplies the one non-reproducible value used to seed a Selector.
type EntropyFunc func() uint64

// SystemEntropy reads 8 bytes from crypto/rand.
func SystemEntropy() uint64 {
	var b [8]byte
	crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// FixedEntropy returns an EntropyFunc that always yields seed.
func FixedEntropy(seed uint64) EntropyFunc {
	return func() uint64 {
		return seed
	}
}
