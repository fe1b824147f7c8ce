package synth

import (
	"encoding/binary"

	"github.com/google/uuid"
	"github.com/tutils/trand/prng"
)

// UUID builds a version 4 UUID from two draws.
func UUID(st *prng.State) uuid.UUID {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], st.Uint64())
	binary.LittleEndian.PutUint64(b[8:], st.Uint64())
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // RFC 4122 variant
	return uuid.UUID(b)
}
