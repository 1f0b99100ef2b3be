// File: clean.go
// Title: Floating-Point Artifact Cleaner
// Description: Rounds a float64 to the decimal place just before a detected
//              repeating-digit artifact, so 0.1+0.2 becomes 0.3 again.
//              Values without a detectable artifact are returned unchanged.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Exponential notation rounds the mantissa only

package floatx

import (
	"math"
	"strconv"
	"strings"
)

// Options configures CleanWithOptions
type Options struct {
	// MinPrecision is the minimum number of decimals to keep. It only applies
	// when it is not below the detected threshold; zero means unset.
	MinPrecision int
}

// Clean removes a binary floating-point representation artifact from value.
//
//	Clean(0.1 + 0.2)            // 0.3
//	Clean(5555.549999999999)    // 5555.55
//	Clean(1.23e-10 + 1.1e-10)   // 2.33e-10
func Clean(value float64) float64 {
	return CleanWithOptions(value, Options{})
}

// CleanWithOptions is Clean with a caller supplied decimal floor.
func CleanWithOptions(value float64, opts Options) float64 {
	a, ok := Analyze(value)
	if !ok {
		return value
	}

	precision := math.Pow10(a.Places(opts))
	if math.IsInf(precision, 0) {
		return value
	}

	// Nothing to gain when the rounding precision spans the whole fraction.
	if len(FormatNumber(precision)) == len(a.Decimals) {
		return value
	}

	if a.Exponent == "" {
		return round(value, precision)
	}

	mantissa, err := strconv.ParseFloat(a.Text[:strings.IndexByte(a.Text, 'e')], 64)
	if err != nil {
		return value
	}
	cleaned, err := strconv.ParseFloat(FormatNumber(round(mantissa, precision))+a.Exponent, 64)
	if err != nil {
		return value
	}
	return cleaned
}

// round rounds value half away from zero at the given power of ten. A value
// that overflows when scaled is returned as is.
func round(value, precision float64) float64 {
	scaled := value * precision
	if math.IsInf(scaled, 0) {
		return value
	}
	return math.Round(scaled) / precision
}
