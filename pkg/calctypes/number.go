package calctypes

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders a float the way a calculator display shows a plain number:
// integers without a fraction, the shortest round-tripping decimal otherwise, and
// exponent notation for magnitudes of 1e21 and above or below 1e-6.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		s = strings.Replace(s, "e+0", "e+", 1)
		return strings.Replace(s, "e-0", "e-", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatFixed renders f with exactly the given number of decimals.
func FormatFixed(f float64, decimals int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if f == 0 {
		f = 0 // drop the sign of negative zero
	}
	return strconv.FormatFloat(f, 'f', decimals, 64)
}

// IsIntegral reports whether f is a finite whole number.
func IsIntegral(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}
