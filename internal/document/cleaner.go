// ============================================================================
// cleanfloat - Floating-point artifact cleaner
// ============================================================================
//
// Package:     document
// Description: Cleans every number inside JSON and YAML documents
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package document rewrites the numbers of structured documents through
// floatx while leaving everything else as it was.
package document

import (
	"strconv"
	"strings"

	"github.com/msto63/cleanfloat/foundation/core/log"
	"github.com/msto63/cleanfloat/foundation/utils/floatx"
)

// Stats counts the numbers seen in a document and how many of them changed
type Stats struct {
	Numbers int `json:"numbers"`
	Cleaned int `json:"cleaned"`
}

// Add returns the sum of two Stats
func (s Stats) Add(other Stats) Stats {
	return Stats{Numbers: s.Numbers + other.Numbers, Cleaned: s.Cleaned + other.Cleaned}
}

// Cleaner cleans the numbers of JSON and YAML documents. It holds no state
// between calls and is safe for concurrent use.
type Cleaner struct {
	opts   floatx.Options
	logger *log.Logger
}

// New creates a Cleaner. A nil logger discards all output.
func New(opts floatx.Options, logger *log.Logger) *Cleaner {
	if logger == nil {
		logger = log.Discard()
	}
	return &Cleaner{
		opts:   opts,
		logger: logger.WithName("document"),
	}
}

// Options returns the cleaning options
func (c *Cleaner) Options() floatx.Options {
	return c.opts
}

// cleanLiteral cleans a number literal. It returns the replacement text and
// whether the value changed. Integer literals and literals that do not parse
// as a finite float64 are returned as they are.
func (c *Cleaner) cleanLiteral(literal, format string, stats *Stats) (string, bool) {
	stats.Numbers++

	if isIntegerLiteral(literal) {
		return literal, false
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(literal, "_", ""), 64)
	if err != nil {
		c.logger.Trace("number left as is", log.Fields{"input": literal, "format": format, "reason": err.Error()})
		return literal, false
	}

	cleaned := floatx.CleanWithOptions(value, c.opts)
	if cleaned == value {
		return literal, false
	}

	stats.Cleaned++
	out := floatx.FormatNumber(cleaned)
	c.logger.Debug("number cleaned", log.Fields{"input": literal, "output": out, "format": format})
	return out, true
}

func isIntegerLiteral(s string) bool {
	return !strings.ContainsAny(s, ".eE")
}
