package intrinsic

import (
	"errors"
	"math"
)

type float interface {
	~float32 | ~float64
}

// ErrOverflow is returned when a value does not fit a CPC integer.
var ErrOverflow = errors.New("Overflow")

// ============================================================================
// Locomotive BASIC numeric semantics used for compile time checks.
// ============================================================================

// ROUND rounds half away from zero to the given number of decimals,
// as ROUND(x, decimals) does on the CPC. Negative decimals round to the
// left of the decimal point.
func ROUND[T float](x T, decimals int) T {
	scale := math.Pow(10, float64(decimals))
	v := float64(x) * scale
	if v < 0 {
		v = -math.Floor(-v + 0.5)
	} else {
		v = math.Floor(v + 0.5)
	}
	return T(v / scale)
}

// CINT rounds x to the nearest 16-bit integer.
func CINT[T float](x T) (int16, error) {
	r := ROUND(float64(x), 0)
	if !IsInt16(r) {
		return 0, ErrOverflow
	}
	return int16(r), nil
}

// IsInt16 reports whether x is an integral value in -32768..32767.
func IsInt16(x float64) bool {
	return x == math.Trunc(x) && x >= math.MinInt16 && x <= math.MaxInt16
}

// Wrap16 maps an unsigned 16-bit value onto the signed range the way
// &H and &X literals are read: &FFFF is -1.
func Wrap16(v uint16) int16 { return int16(v) }
