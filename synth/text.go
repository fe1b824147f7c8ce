package synth

import (
	"encoding/binary"

	"github.com/tutils/trand/prng"
)

// Alphabet is the ordered character set of String. Changing it changes every
// generated string.
const Alphabet = " abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_-+={}[];:'\"\\|/?.>,<~`\r\n\t"

// String returns n characters, one Uint32 draw per character.
func String(st *prng.State, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = Alphabet[st.Uint32()%uint32(len(Alphabet))]
	}
	return string(buf)
}

// Bytes returns n bytes, filled 8 at a time from one draw each. Bytes of a
// draw are taken little-endian; the last chunk is truncated.
func Bytes(st *prng.State, n int) []byte {
	out := make([]byte, n)
	var chunk [8]byte
	for off := 0; off < n; off += len(chunk) {
		binary.LittleEndian.PutUint64(chunk[:], st.Uint64())
		copy(out[off:], chunk[:])
	}
	return out
}
