package intrinsic

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	errNoDigits  = errors.New("Expected number")
	errBadDigits = errors.New("Bad number")
)

// ParseDecimal parses a decimal literal as written in BASIC source:
// digits with an optional fraction and exponent, a leading '.' allowed.
func ParseDecimal(lit string) (float64, error) {
	if lit == "" {
		return 0, errNoDigits
	}
	s := lit
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) && nerr.Err == strconv.ErrRange {
			return 0, ErrOverflow
		}
		return 0, errBadDigits
	}
	if math.IsInf(v, 0) {
		return 0, ErrOverflow
	}
	return v, nil
}

// ParseHex parses the digits of an &H literal. Values above &FFFF overflow.
func ParseHex(digits string) (int16, error) {
	return parseUint16(digits, 16)
}

// ParseBin parses the digits of an &X literal. Values above &X1111111111111111 overflow.
func ParseBin(digits string) (int16, error) {
	return parseUint16(digits, 2)
}

func parseUint16(digits string, base int) (int16, error) {
	if digits == "" {
		return 0, errNoDigits
	}
	v, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) && nerr.Err == strconv.ErrRange {
			return 0, ErrOverflow
		}
		return 0, errBadDigits
	}
	return Wrap16(uint16(v)), nil
}

// FormatJS formats a number as a JavaScript numeric literal. Integral values
// print without exponent up to 1e21, the same limit JavaScript uses.
func FormatJS(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	// JavaScript writes exponents without leading zeros: 1e-7, not 1e-07.
	if i := strings.IndexByte(s, 'e'); i >= 0 && i+2 < len(s) && s[i+2] == '0' {
		s = s[:i+2] + strings.TrimLeft(s[i+2:], "0")
	}
	return s
}
