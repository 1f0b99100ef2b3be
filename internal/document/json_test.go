// ============================================================================
// cleanfloat - Floating-point artifact cleaner
// ============================================================================
//
// Package:     document
// Description: Tests for JSON document cleaning
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package document

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	cferror "github.com/msto63/cleanfloat/foundation/core/error"
	"github.com/msto63/cleanfloat/foundation/core/log"
	"github.com/msto63/cleanfloat/foundation/utils/floatx"
)

// TestCleanJSON_Compact tests compact output and the counters
func TestCleanJSON_Compact(t *testing.T) {
	input := `{"b": 0.30000000000000004, "a": [1, 2.5, 5555.549999999999, "x<y"],
	  "n": null, "t": true, "f": false, "big": 12345678901234567890, "e": 1.0}`
	want := `{"b":0.3,"a":[1,2.5,5555.55,"x<y"],"n":null,"t":true,"f":false,"big":12345678901234567890,"e":1.0}` + "\n"

	var out bytes.Buffer
	stats, err := New(floatx.Options{}, nil).CleanJSON(strings.NewReader(input), &out, "")
	if err != nil {
		t.Fatalf("CleanJSON() error = %v", err)
	}
	if out.String() != want {
		t.Errorf("CleanJSON() =\n%s\nwant\n%s", out.String(), want)
	}
	if stats != (Stats{Numbers: 6, Cleaned: 2}) {
		t.Errorf("stats = %+v, want 6 numbers, 2 cleaned", stats)
	}
}

// TestCleanJSON_Indent tests indented output including empty containers
func TestCleanJSON_Indent(t *testing.T) {
	input := `{"b":0.30000000000000004,"a":[1,2.5],"empty":{},"list":[],"nested":{"x":[{"y":1.1111111}]}}`
	want := `{
  "b": 0.3,
  "a": [
    1,
    2.5
  ],
  "empty": {},
  "list": [],
  "nested": {
    "x": [
      {
        "y": 1.1
      }
    ]
  }
}
`

	var out bytes.Buffer
	if _, err := New(floatx.Options{}, nil).CleanJSON(strings.NewReader(input), &out, "  "); err != nil {
		t.Fatalf("CleanJSON() error = %v", err)
	}
	if out.String() != want {
		t.Errorf("CleanJSON() =\n%s\nwant\n%s", out.String(), want)
	}
}

// TestCleanJSON_TopLevel tests scalar and multiple top-level values
func TestCleanJSON_TopLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single number", "0.30000000000000004", "0.3\n"},
		{"stream", "1.1111111 2 [0.1]\n\"s\"", "1.1\n2\n[0.1]\n\"s\"\n"},
		{"empty input", "", ""},
		{"exponent", "2.3299999999999997e-10", "2.33e-10\n"},
		{"signed exponents", "[2.3299999999999997e-10, -2.3299999999999997e-10]", "[2.33e-10,-2.33e-10]\n"},
		{"out of range literal", "1e400", "1e400\n"},
		{"escaped strings", `{"k\n":"tab\there é"}`, `{"k\n":"tab\there é"}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if _, err := New(floatx.Options{}, nil).CleanJSON(strings.NewReader(tt.input), &out, ""); err != nil {
				t.Fatalf("CleanJSON() error = %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("CleanJSON(%q) = %q, want %q", tt.input, out.String(), tt.want)
			}
		})
	}
}

// TestCleanJSON_MinPrecision tests that the options reach every number
func TestCleanJSON_MinPrecision(t *testing.T) {
	var out bytes.Buffer
	cleaner := New(floatx.Options{MinPrecision: 2}, nil)
	if _, err := cleaner.CleanJSON(strings.NewReader(`[0.3333333333333333, 1.2699852]`), &out, ""); err != nil {
		t.Fatalf("CleanJSON() error = %v", err)
	}
	if out.String() != "[0.33,1.2699852]\n" {
		t.Errorf("CleanJSON() = %q", out.String())
	}
	if cleaner.Options().MinPrecision != 2 {
		t.Errorf("Options() = %+v", cleaner.Options())
	}
}

// TestCleanJSON_SyntaxErrors tests that malformed input is reported
func TestCleanJSON_SyntaxErrors(t *testing.T) {
	inputs := []string{
		`{"a": }`,
		`{"a": [1, 2`,
		`[1,]`,
		`{"a" 1}`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := New(floatx.Options{}, nil).CleanJSON(strings.NewReader(input), &bytes.Buffer{}, "")
			if err == nil {
				t.Fatal("CleanJSON() should fail")
			}
			if !cferror.HasCode(err, cferror.CodeInvalidFormat) {
				t.Errorf("code = %v, want INVALID_FORMAT", cferror.GetCode(err))
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

// TestCleanJSON_WriteError tests that write failures are reported
func TestCleanJSON_WriteError(t *testing.T) {
	_, err := New(floatx.Options{}, nil).CleanJSON(strings.NewReader(`[0.1]`), failingWriter{}, "")
	if !cferror.HasCode(err, cferror.CodeOperationFailed) {
		t.Errorf("CleanJSON() error = %v, want OPERATION_FAILED", err)
	}
}

// TestCleanJSON_Logging tests the per-number and per-document log lines
func TestCleanJSON_Logging(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatLogfmt, Output: &logs})

	if _, err := New(floatx.Options{}, logger).CleanJSON(strings.NewReader(`[0.30000000000000004, 7]`), &bytes.Buffer{}, ""); err != nil {
		t.Fatalf("CleanJSON() error = %v", err)
	}

	got := logs.String()
	for _, want := range []string{`message="number cleaned"`, `input="0.30000000000000004"`, `output="0.3"`, `message="clean_json completed"`, "cleaned=1", "numbers=2", "logger=document"} {
		if !strings.Contains(got, want) {
			t.Errorf("logs missing %q:\n%s", want, got)
		}
	}
}
