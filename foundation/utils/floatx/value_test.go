// File: value_test.go
// Title: Untyped Value Cleaning Tests
// Description: Tests for ToFloat conversions and CleanAny error handling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package floatx

import (
	"encoding/json"
	"testing"

	cferror "github.com/msto63/cleanfloat/foundation/core/error"
	"github.com/msto63/cleanfloat/foundation/core/errors"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  float64
	}{
		{"float64", 1.5, 1.5},
		{"float32", float32(0.25), 0.25},
		{"int", 7, 7},
		{"int8", int8(-8), -8},
		{"int16", int16(16), 16},
		{"int32", int32(-32), -32},
		{"int64", int64(1 << 40), 1 << 40},
		{"uint", uint(3), 3},
		{"uint8", uint8(255), 255},
		{"uint16", uint16(65535), 65535},
		{"uint32", uint32(1 << 31), 1 << 31},
		{"uint64", uint64(1 << 50), 1 << 50},
		{"json number", json.Number("0.30000000000000004"), add(0.1, 0.2)},
		{"string", "  5555.549999999999\n", 5555.549999999999},
		{"exponent string", "2.5e-3", 0.0025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToFloat(tt.input)
			if err != nil {
				t.Fatalf("ToFloat(%v) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ToFloat(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestToFloatRejects(t *testing.T) {
	for _, input := range []interface{}{nil, true, "abc", "", json.Number("1.2.3"), []float64{1}} {
		_, err := ToFloat(input)
		if err == nil {
			t.Errorf("ToFloat(%#v) should fail", input)
			continue
		}
		if !cferror.HasCode(err, cferror.CodeInvalidInput) {
			t.Errorf("ToFloat(%#v) code = %v, want INVALID_INPUT", input, cferror.GetCode(err))
		}
		if !errors.IsModuleError(err, errors.ModuleFloatx) {
			t.Errorf("ToFloat(%#v) should report the floatx module", input)
		}
	}
}

func TestCleanAny(t *testing.T) {
	got, err := CleanAny("0.30000000000000004", Options{})
	if err != nil || got != 0.3 {
		t.Errorf("CleanAny(string) = %v, %v", got, err)
	}

	got, err = CleanAny(json.Number("0.3333333333333333"), Options{MinPrecision: 2})
	if err != nil || got != 0.33 {
		t.Errorf("CleanAny(json.Number, 2) = %v, %v", got, err)
	}

	got, err = CleanAny(12, Options{})
	if err != nil || got != 12 {
		t.Errorf("CleanAny(int) = %v, %v", got, err)
	}

	if _, err := CleanAny(0.5, Options{MinPrecision: -1}); !cferror.HasCode(err, cferror.CodeValueOutOfRange) {
		t.Errorf("CleanAny(negative precision) error = %v, want VALUE_OUT_OF_RANGE", err)
	}

	if _, err := CleanAny(struct{}{}, Options{}); err == nil {
		t.Error("CleanAny(struct) should fail")
	}
}
