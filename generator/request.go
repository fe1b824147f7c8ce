package generator

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"net"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"github.com/tutils/trand"
	"github.com/tutils/trand/netaddr"
)

// Kind names a generated SQL type.
type Kind string

// supported kinds
const (
	KindInt      Kind = "int"
	KindBigInt   Kind = "bigint"
	KindReal     Kind = "real"
	KindDouble   Kind = "double"
	KindString   Kind = "string"
	KindBytea    Kind = "bytea"
	KindNumeric  Kind = "numeric"
	KindUUID     Kind = "uuid"
	KindInet     Kind = "inet"
	KindCIDR     Kind = "cidr"
	KindCIDR2    Kind = "cidr2"
	KindMacAddr  Kind = "macaddr"
	KindMacAddr8 Kind = "macaddr8"
)

// SQLType is the column type used when a kind is stored.
var SQLType = map[Kind]string{
	KindInt:      "INTEGER",
	KindBigInt:   "BIGINT",
	KindReal:     "REAL",
	KindDouble:   "DOUBLE PRECISION",
	KindString:   "TEXT",
	KindBytea:    "BYTEA",
	KindNumeric:  "NUMERIC",
	KindUUID:     "UUID",
	KindInet:     "INET",
	KindCIDR:     "CIDR",
	KindCIDR2:    "CIDR",
	KindMacAddr:  "MACADDR",
	KindMacAddr8: "MACADDR8",
}

// Kinds returns all supported kinds, sorted.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(SQLType))
	for k := range SQLType {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := SQLType[k]; !ok {
		return "", trand.NewDomainError("kind", "unknown kind %q", s)
	}
	return k, nil
}

// Request describes one generated value independently of the surface it
// arrived on. Min and Max accept numbers or numeric strings; for string and
// bytea they are the length bounds. A missing bound takes the type default.
type Request struct {
	Kind      Kind   `json:"kind"`
	Seed      uint32 `json:"seed"`
	Count     uint32 `json:"count"`
	Min       any    `json:"min,omitempty"`
	Max       any    `json:"max,omitempty"`
	Precision int    `json:"precision,omitempty"`
	Scale     int    `json:"scale,omitempty"`
}

// Value is a generated value tagged with its kind.
type Value struct {
	Kind Kind
	V    any
}

// Text renders v the way PostgreSQL prints the type.
func (v Value) Text() string {
	switch x := v.V.(type) {
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	case []byte:
		return `\x` + hex.EncodeToString(x)
	case uuid.UUID:
		return x.String()
	case netaddr.Prefix:
		if v.Kind == KindInet {
			return x.Netip().Addr().String()
		}
		return x.String()
	case net.HardwareAddr:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// MarshalJSON keeps numbers numeric and renders everything else as text.
func (v Value) MarshalJSON() ([]byte, error) {
	switch x := v.V.(type) {
	case int32, int64, float32, float64:
		return json.Marshal(x)
	default:
		return json.Marshal(v.Text())
	}
}

// lowest positive normal float8, used when min is omitted
const minNormalFloat64 = 0x1p-1022

// ToInt32E converts v like cast.ToInt64E and rejects values outside int4.
func ToInt32E(v any) (int32, error) {
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%d out of int4 range", n)
	}
	return int32(n), nil
}

// ToUint32E converts v like cast.ToUint64E and rejects values above
// math.MaxUint32.
func ToUint32E(v any) (uint32, error) {
	n, err := cast.ToUint64E(v)
	if err != nil {
		return 0, err
	}
	if n > math.MaxUint32 {
		return 0, fmt.Errorf("%d out of uint32 range", n)
	}
	return uint32(n), nil
}

// ToFloat32E converts v like cast.ToFloat64E and rejects finite values that
// overflow float4.
func ToFloat32E(v any) (float32, error) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, err
	}
	if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0, fmt.Errorf("%g out of float4 range", f)
	}
	return float32(f), nil
}

func bound[T any](v any, def T, conv func(any) (T, error), name string) (T, error) {
	if v == nil || v == "" {
		return def, nil
	}
	out, err := conv(v)
	if err != nil {
		return def, trand.NewDomainError(name, "invalid value %v: %v", v, err)
	}
	return out, nil
}

func bounds[T any](req Request, lo, hi T, conv func(any) (T, error)) (T, T, error) {
	l, err := bound(req.Min, lo, conv, "min")
	if err != nil {
		return l, hi, err
	}
	h, err := bound(req.Max, hi, conv, "max")
	return l, h, err
}

// Generate produces one value for req.
func (g *Generator) Generate(req Request) (Value, error) {
	val := Value{Kind: req.Kind}
	var err error
	switch req.Kind {
	case KindInt:
		var lo, hi int32
		if lo, hi, err = bounds(req, math.MinInt32, math.MaxInt32, ToInt32E); err == nil {
			val.V, err = g.Int(req.Seed, req.Count, lo, hi)
		}
	case KindBigInt:
		var lo, hi int64
		if lo, hi, err = bounds(req, math.MinInt64, math.MaxInt64, cast.ToInt64E); err == nil {
			val.V, err = g.BigInt(req.Seed, req.Count, lo, hi)
		}
	case KindReal:
		var lo, hi float32
		if lo, hi, err = bounds(req, -math.MaxFloat32, math.MaxFloat32, ToFloat32E); err == nil {
			val.V, err = g.Real(req.Seed, req.Count, lo, hi)
		}
	case KindDouble:
		var lo, hi float64
		if lo, hi, err = bounds(req, minNormalFloat64, math.MaxFloat64, cast.ToFloat64E); err == nil {
			val.V, err = g.Double(req.Seed, req.Count, lo, hi)
		}
	case KindString, KindBytea:
		var lo, hi int
		if lo, err = bound(req.Min, 0, cast.ToIntE, "min"); err != nil {
			break
		}
		if hi, err = bound(req.Max, lo, cast.ToIntE, "max"); err != nil {
			break
		}
		if req.Kind == KindString {
			val.V, err = g.String(req.Seed, req.Count, lo, hi)
		} else {
			val.V, err = g.Bytea(req.Seed, req.Count, lo, hi)
		}
	case KindNumeric:
		val.V, err = g.Numeric(req.Seed, req.Count, req.Precision, req.Scale)
	case KindUUID:
		val.V, err = g.UUID(req.Seed, req.Count)
	case KindInet:
		val.V, err = g.Inet(req.Seed, req.Count)
	case KindCIDR:
		val.V, err = g.CIDR(req.Seed, req.Count)
	case KindCIDR2:
		val.V, err = g.CIDR2(req.Seed, req.Count)
	case KindMacAddr:
		val.V, err = g.MacAddr(req.Seed, req.Count)
	case KindMacAddr8:
		val.V, err = g.MacAddr8(req.Seed, req.Count)
	default:
		err = trand.NewDomainError("kind", "unknown kind %q", req.Kind)
	}
	if err != nil {
		return Value{}, fmt.Errorf("random %s: %w", req.Kind, err)
	}
	return val, nil
}

// GenerateN produces n values for req, stopping early if ctx is done.
func (g *Generator) GenerateN(ctx context.Context, req Request, n int) ([]Value, error) {
	if n < 1 {
		return nil, trand.NewDomainError("n", "number of values must be at least 1 (%d)", n)
	}
	out := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		v, err := g.Generate(req)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
