package synth

import (
	"strconv"
	"strings"

	"github.com/tutils/trand"
	"github.com/tutils/trand/prng"
)

// MaxNumericPrecision keeps the unscaled value inside int64.
const MaxNumericPrecision = 18

// Numeric returns a decimal with at most precision significant digits, scale
// of them after the point, rendered as text.
func Numeric(st *prng.State, precision, scale int) (string, error) {
	if err := CheckNumeric(precision, scale); err != nil {
		return "", err
	}

	bound := int64(1)
	for i := 0; i < precision; i++ {
		bound *= 10
	}
	v, err := Int64(st, -bound+1, bound)
	if err != nil {
		return "", err
	}
	return formatScaled(v, scale), nil
}

// CheckNumeric validates a NUMERIC(precision, scale) type modifier.
func CheckNumeric(precision, scale int) error {
	if precision < 1 || precision > MaxNumericPrecision {
		return trand.NewDomainError("precision", "NUMERIC precision %d must be between 1 and %d", precision, MaxNumericPrecision)
	}
	if scale < 0 || scale > precision {
		return trand.NewDomainError("scale", "NUMERIC scale %d must be between 0 and precision %d", scale, precision)
	}
	return nil
}

func formatScaled(v int64, scale int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	digits := strconv.FormatInt(v, 10)
	if scale > 0 {
		if len(digits) <= scale {
			digits = strings.Repeat("0", scale-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-scale] + "." + digits[len(digits)-scale:]
	}
	if neg {
		return "-" + digits
	}
	return digits
}
