package domain

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v the way the JVM prints a double: plain decimal with
// at least one fractional digit inside [1e-3, 1e7), otherwise a mantissa
// with "E" and an unsigned-if-positive exponent.
//
//	100 -> "100.0" | 1.5 in as cm -> "3.8099999999999996" | 1e7 -> "1.0E7" | 1e-4 -> "1.0E-4"
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(v)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// 'e' yields e.g. "1.5e+07"; reshape to "1.5E7".
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	exp = strings.TrimPrefix(exp, "+")
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(strings.TrimPrefix(exp, "-"), "0")
	if neg {
		exp = "-" + exp
	}
	return mantissa + "E" + exp
}
