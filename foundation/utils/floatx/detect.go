// File: detect.go
// Title: Repeating-Digit Artifact Detection
// Description: Locates the repeating-digit run that binary-to-decimal conversion
//              leaves in the fractional part of a float64 and derives the number
//              of decimals that can be trusted.
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
	"strings"
)

// MinRunLength is the number of identical consecutive digits that marks an artifact.
const MinRunLength = 3

// maxRestLength is the longest tail allowed after a run before the run is
// treated as coincidental.
const maxRestLength = 1

// Run describes a run of identical consecutive digits
type Run struct {
	Digit  byte // the repeated digit
	Start  int  // byte index of the first digit of the run
	Length int  // number of digits in the run
}

// End returns the index just past the last digit of the run
func (r Run) End() int {
	return r.Start + r.Length
}

// FindRun returns the first run of at least MinRunLength identical decimal
// digits in s. Any non-digit byte interrupts a run.
func FindRun(s string) (Run, bool) {
	for i := 0; i < len(s); {
		c := s[i]
		if !isDigit(c) {
			i++
			continue
		}

		j := i + 1
		for j < len(s) && s[j] == c {
			j++
		}

		if j-i >= MinRunLength {
			return Run{Digit: c, Start: i, Length: j - i}, true
		}
		i = j
	}
	return Run{}, false
}

// Analysis holds the intermediate state of artifact detection for one value
type Analysis struct {
	Text      string // canonical decimal text, see FormatNumber
	Decimals  string // text after the decimal point, exponent suffix included
	Exponent  string // exponent suffix such as "e-10", empty in fixed notation
	Run       Run    // first repeating run within Decimals
	Threshold int    // decimals kept before the artifact
	Rest      string // digits trailing the run, exponent suffix removed
}

// Analyze detects a repeating-digit artifact in the canonical text of value.
//
// It reports false for integer values, for text without a fractional part,
// when the fractional part has no run of MinRunLength identical digits, or
// when more than one digit trails the run (the run is then coincidental, not
// an artifact). The returned Analysis is filled in as far as detection
// progressed, which lets callers explain a rejection.
func Analyze(value float64) (Analysis, bool) {
	a := Analysis{Text: FormatNumber(value)}

	// Integers at or above 1e21 render as "1.2345e+25"; they are still integers.
	if math.Trunc(value) == value {
		return a, false
	}

	_, decimals, found := strings.Cut(a.Text, ".")
	if !found || decimals == "" {
		return a, false
	}
	a.Decimals = decimals

	run, ok := FindRun(decimals)
	if !ok {
		return a, false
	}
	a.Run = run
	a.Threshold = run.Start + 1
	a.Exponent = exponentSuffix(decimals)

	// The tail is taken one digit past the end of the run.
	rest := ""
	if from := a.Threshold + run.Length; from < len(decimals) {
		rest = decimals[from:]
	}
	if a.Exponent != "" {
		rest = strings.Replace(rest, a.Exponent, "", 1)
	}
	a.Rest = rest

	if len(a.Rest) > maxRestLength || a.Threshold < 0 {
		return a, false
	}
	return a, true
}

// Places returns the number of decimals to round to. MinPrecision wins only
// when it keeps at least as many decimals as the detected threshold.
func (a Analysis) Places(opts Options) int {
	if opts.MinPrecision > 0 && opts.MinPrecision >= a.Threshold {
		return opts.MinPrecision
	}
	return a.Threshold
}

// exponentSuffix returns the trailing "e±digits" part of s, or "".
func exponentSuffix(s string) string {
	i := strings.LastIndexByte(s, 'e')
	if i < 0 {
		return ""
	}
	suffix := s[i:]
	if len(suffix) < 3 || (suffix[1] != '+' && suffix[1] != '-') {
		return ""
	}
	for k := 2; k < len(suffix); k++ {
		if !isDigit(suffix[k]) {
			return ""
		}
	}
	return suffix
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
