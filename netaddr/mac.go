package netaddr

import (
	"net"

	"github.com/tutils/trand/prng"
)

// MacAddr returns a 6-byte hardware address from one draw.
func MacAddr(st *prng.State) net.HardwareAddr {
	b := drawBytes(st.Uint64())
	return net.HardwareAddr(append([]byte(nil), b[:6]...))
}

// MacAddr8 returns an 8-byte (EUI-64) hardware address from one draw.
func MacAddr8(st *prng.State) net.HardwareAddr {
	b := drawBytes(st.Uint64())
	return net.HardwareAddr(b[:])
}
