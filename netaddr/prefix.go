// Package netaddr synthesizes masked IPv4 network addresses and MAC
// addresses from a value stream.
//
// Bytes of a draw are always extracted little-endian: byte i is
// (draw >> 8*i) & 0xff.
package netaddr

import (
	"encoding/binary"
	"fmt"
	"net/netip"
)

// MaxMaskBytes is the width of an IPv4 address in bytes.
const MaxMaskBytes = 4

// Prefix is an IPv4 network: leading address bytes and a mask length in bits.
type Prefix struct {
	Addr [4]byte
	Bits int
}

// Netip converts p to a netip.Prefix.
func (p Prefix) Netip() netip.Prefix {
	return netip.PrefixFrom(netip.AddrFrom4(p.Addr), p.Bits)
}

// String formats p in CIDR notation.
func (p Prefix) String() string {
	return fmt.Sprintf("%d.%d.%d.%d/%d", p.Addr[0], p.Addr[1], p.Addr[2], p.Addr[3], p.Bits)
}

func drawBytes(v uint64) [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b
}

// Fold xors the 4 low-order bytes of draw into an m-byte buffer, byte i
// going to position i mod m.
func Fold(draw uint64, m int) []byte {
	if m < 1 || m > MaxMaskBytes {
		panic(fmt.Sprintf("netaddr: fold width %d out of range", m))
	}
	b := drawBytes(draw)
	buf := make([]byte, m)
	for i := 0; i < MaxMaskBytes; i++ {
		buf[i%m] ^= b[i]
	}
	return buf
}

// prefixOf folds draw into m leading bytes and masks the rest.
func prefixOf(draw uint64, m int) Prefix {
	var p Prefix
	copy(p.Addr[:], Fold(draw, m))
	p.Bits = m * 8
	return p
}
