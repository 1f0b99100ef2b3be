// File: doc.go
// Title: Package Documentation for floatx
// Description: Package floatx removes binary floating-point representation
//              artifacts such as 0.30000000000000004 from float64 values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

// Package floatx cleans floating-point representation artifacts.
//
// Overview
//
// Binary floating point cannot represent most decimal fractions exactly, so
// sums such as 0.1 + 0.2 print as 0.30000000000000004 instead of 0.3. The
// artifact shows up as a run of identical digits (here zeros) near the end
// of the shortest decimal representation. floatx finds that run and rounds
// the value to the last decimal before it:
//
//	floatx.Clean(0.1 + 0.2)          // 0.3
//	floatx.Clean(5555.549999999999)  // 5555.55
//	floatx.Clean(1.1111111)          // 1.1
//	floatx.Clean(1.23e-10 + 1.1e-10) // 2.33e-10
//
// Detection
//
// The value is rendered with FormatNumber, which follows ECMAScript's
// Number::toString layout so results do not depend on Go's %g thresholds.
// The first run of three or more identical digits after the decimal point
// marks the artifact. The threshold (the number of decimals kept) is the run
// start plus one. When more than one digit trails the run the run is taken
// to be part of the real value and nothing is rounded. Analyze exposes these
// intermediate results.
//
// Precision floor
//
// CleanWithOptions accepts a MinPrecision. It raises the number of kept
// decimals when it is at least the detected threshold and is ignored
// otherwise; it has no effect on values without an artifact:
//
//	floatx.CleanWithOptions(0.3333333333333333, floatx.Options{MinPrecision: 2}) // 0.33
//
// Values that are left alone
//
// Integers, zero, NaN and infinities, values without a run and values whose
// rounding would not shorten the fraction are returned unchanged. Rounding
// is half away from zero, so Clean(-x) == -Clean(x).
//
// Thread Safety
//
// All functions are pure and safe for concurrent use.
package floatx
