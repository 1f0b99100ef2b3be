// File: format.go
// Title: Canonical Decimal Rendering
// Description: Renders float64 values the way ECMAScript's Number::toString does:
//              shortest round-trip digits, fixed notation for moderate magnitudes
//              and d.ddde±x notation outside of it. The artifact detection works
//              on this text, so the layout rules must not drift.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package floatx

import (
	"math"
	"strconv"
	"strings"
)

// Layout limits of the fixed notation, in decimal point positions.
const (
	maxFixedPoint = 21
	minFixedPoint = -6
)

// FormatNumber returns the canonical decimal text of value.
//
// The digits are the shortest ones that parse back to the same float64. Values
// whose decimal point position lies in (-6, 21] are written in fixed notation
// ("0.30000000000000004", "1234000.005678"), all others in exponential
// notation ("2.3299999999999997e-10", "1e+21"). Negative zero renders as "0",
// non-finite values as "NaN", "Infinity" and "-Infinity".
func FormatNumber(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case value == 0:
		return "0"
	}

	var b strings.Builder
	if value < 0 {
		b.WriteByte('-')
		value = -value
	}

	digits, point := shortestDigits(value)
	k := len(digits)

	switch {
	case k <= point && point <= maxFixedPoint:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", point-k))
	case 0 < point && point <= maxFixedPoint:
		b.WriteString(digits[:point])
		b.WriteByte('.')
		b.WriteString(digits[point:])
	case minFixedPoint < point && point <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -point))
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if point-1 >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(point - 1))
	}

	return b.String()
}

// shortestDigits returns the shortest round-trip significand digits of a
// positive finite value and the position of the decimal point relative to
// the first digit (value = 0.digits * 10^point).
func shortestDigits(value float64) (string, int) {
	s := strconv.FormatFloat(value, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	return strings.Replace(mantissa, ".", "", 1), e + 1
}
