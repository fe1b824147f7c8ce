// Package generator is the request-level API: every call takes a caller seed
// and a number of distinct values, checks its bounds, derives one value
// stream from the selector and synthesizes a single value from it.
//
// Bounds are always checked before the selector is touched, so a rejected
// request never consumes selector entropy.
package generator

import (
	"net"

	"github.com/google/uuid"
	"github.com/tutils/trand/netaddr"
	"github.com/tutils/trand/prng"
	"github.com/tutils/trand/stream"
	"github.com/tutils/trand/synth"
)

// Generator produces reproducible values. It is safe for concurrent use.
type Generator struct {
	opts Options
}

// New create a new Generator
func New(opts ...Option) *Generator {
	opt := newOptions(opts...)
	return &Generator{
		opts: *opt,
	}
}

// Selector returns the selector shared by all requests of g.
func (g *Generator) Selector() *stream.Selector {
	return g.opts.selector
}

func (g *Generator) valueStream(seed, count uint32) (prng.State, error) {
	st, _, err := g.opts.selector.ValueStream(seed, count)
	if err != nil {
		return st, err
	}
	g.opts.counter.Add(1)
	return st, nil
}

// Int returns one of count distinct int4 values in [lo, hi).
func (g *Generator) Int(seed, count uint32, lo, hi int32) (int32, error) {
	if err := synth.CheckInt(int64(lo), int64(hi)); err != nil {
		return 0, err
	}
	st, err := g.valueStream(seed, count)
	if err != nil {
		return 0, err
	}
	return synth.Int32(&st, lo, hi)
}

// BigInt returns one of count distinct int8 values in [lo, hi).
func (g *Generator) BigInt(seed, count uint32, lo, hi int64) (int64, error) {
	if err := synth.CheckInt(lo, hi); err != nil {
		return 0, err
	}
	st, err := g.valueStream(seed, count)
	if err != nil {
		return 0, err
	}
	return synth.Int64(&st, lo, hi)
}

// Real returns one of count distinct float4 values in [lo, hi).
func (g *Generator) Real(seed, count uint32, lo, hi float32) (float32, error) {
	if err := synth.CheckFloat(float64(lo), float64(hi)); err != nil {
		return 0, err
	}
	st, err := g.valueStream(seed, count)
	if err != nil {
		return 0, err
	}
	return synth.Float32(&st, lo, hi)
}

// Double returns one of count distinct float8 values in [lo, hi).
func (g *Generator) Double(seed, count uint32, lo, hi float64) (float64, error) {
	if err := synth.CheckFloat(lo, hi); err != nil {
		return 0, err
	}
	st, err := g.valueStream(seed, count)
	if err != nil {
		return 0, err
	}
	return synth.Float64(&st, lo, hi)
}

// String returns one of count distinct strings with a length in
// [minLen, maxLen].
func (g *Generator) String(seed, count uint32, minLen, maxLen int) (string, error) {
	if err := synth.CheckLength(minLen, maxLen); err != nil {
		return "", err
	}
	st, err := g.valueStream(seed, count)
	if err != nil {
		return "", err
	}
	n, err := synth.Length(&st, minLen, maxLen)
	if err != nil {
		return "", err
	}
	return synth.String(&st, n), nil
}

// Bytea returns one of count distinct byte strings with a length in
// [minLen, maxLen].
func (g *Generator) Bytea(seed, count uint32, minLen, maxLen int) ([]byte, error) {
	if err := synth.CheckLength(minLen, maxLen); err != nil {
		return nil, err
	}
	st, err := g.valueStream(seed, count)
	if err != nil {
		return nil, err
	}
	n, err := synth.Length(&st, minLen, maxLen)
	if err != nil {
		return nil, err
	}
	return synth.Bytes(&st, n), nil
}

// Numeric returns one of count distinct NUMERIC(precision, scale) values as
// text.
func (g *Generator) Numeric(seed, count uint32, precision, scale int) (string, error) {
	if err := synth.CheckNumeric(precision, scale); err != nil {
		return "", err
	}
	st, err := g.valueStream(seed, count)
	if err != nil {
		return "", err
	}
	return synth.Numeric(&st, precision, scale)
}

// UUID returns one of count distinct version 4 UUIDs.
func (g *Generator) UUID(seed, count uint32) (uuid.UUID, error) {
	st, err := g.valueStream(seed, count)
	if err != nil {
		return uuid.Nil, err
	}
	return synth.UUID(&st), nil
}

// Inet returns one of count distinct /32 addresses.
func (g *Generator) Inet(seed, count uint32) (netaddr.Prefix, error) {
	st, err := g.valueStream(seed, count)
	if err != nil {
		return netaddr.Prefix{}, err
	}
	return netaddr.Inet(&st), nil
}

// CIDR returns one of count distinct networks, the mask length weighted by
// how many addresses each length can hold.
func (g *Generator) CIDR(seed, count uint32) (netaddr.Prefix, error) {
	st, err := g.valueStream(seed, count)
	if err != nil {
		return netaddr.Prefix{}, err
	}
	return netaddr.CIDR(&st), nil
}

// CIDR2 spreads count over the mask lengths with netaddr.Partition. The
// first stream picks the mask length, a second selector draw picks the
// address among the values allocated to that length.
func (g *Generator) CIDR2(seed, count uint32) (netaddr.Prefix, error) {
	st, err := g.valueStream(seed, count)
	if err != nil {
		return netaddr.Prefix{}, err
	}
	alloc := netaddr.Partition(count)
	m := netaddr.PickMaskLength(&st, alloc)

	st2, _, err := g.opts.selector.ValueStream(seed, alloc[m-1])
	if err != nil {
		return netaddr.Prefix{}, err
	}
	return netaddr.FoldPrefix(&st2, m), nil
}

// MacAddr returns one of count distinct 6-byte MAC addresses.
func (g *Generator) MacAddr(seed, count uint32) (net.HardwareAddr, error) {
	st, err := g.valueStream(seed, count)
	if err != nil {
		return nil, err
	}
	return netaddr.MacAddr(&st), nil
}

// MacAddr8 returns one of count distinct 8-byte MAC addresses.
func (g *Generator) MacAddr8(seed, count uint32) (net.HardwareAddr, error) {
	st, err := g.valueStream(seed, count)
	if err != nil {
		return nil, err
	}
	return netaddr.MacAddr8(&st), nil
}
