// File: value.go
// Title: Type-Checked Cleaning of Untyped Values
// Description: Accepts values of unknown type (decoded documents, command line
//              arguments, configuration entries), converts the numeric ones to
//              float64 and cleans them. Anything else is rejected with a
//              structured error instead of a panic.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package floatx

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/msto63/cleanfloat/foundation/core/errors"
)

// CleanAny cleans value after converting it to float64.
//
// Supported inputs are all Go integer and floating-point types, json.Number
// and strings holding a number. A negative MinPrecision is rejected.
func CleanAny(value interface{}, opts Options) (float64, error) {
	if opts.MinPrecision < 0 {
		return 0, errors.FloatxNegativePrecision(opts.MinPrecision)
	}

	f, err := ToFloat(value)
	if err != nil {
		return 0, err
	}
	return CleanWithOptions(f, opts), nil
}

// ToFloat converts a numeric value of any supported type to float64
func ToFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		return parseNumber(string(v), value)
	case string:
		return parseNumber(v, value)
	default:
		return 0, errors.FloatxNotNumeric(value)
	}
}

func parseNumber(s string, original interface{}) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.FloatxNotNumeric(original)
	}
	return f, nil
}
