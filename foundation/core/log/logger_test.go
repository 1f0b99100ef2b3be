// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context fields, immutability,
//              error logging and timers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	cferror "github.com/msto63/cleanfloat/foundation/core/error"
)

func newTestLogger(buf *bytes.Buffer, level Level) *Logger {
	return NewWithConfig(Config{Level: level, Format: FormatJSON, Output: buf})
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn)

	logger.Trace("trace")
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["message"] != "warn" || entries[1]["message"] != "error" {
		t.Errorf("unexpected entries: %v", entries)
	}

	if logger.IsLevelEnabled(LevelInfo) {
		t.Error("info should be disabled")
	}
	if logger.GetLevel() != LevelWarn {
		t.Errorf("GetLevel() = %v", logger.GetLevel())
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo).
		WithName("json").
		WithCorrelationID("run-1").
		WithField("file", "in.json").
		WithFields(Fields{"indent": 2})

	logger.Info("document cleaned", Int("numbers", 4), Field("file", "override.json"))

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["logger"] != "json" || e["correlation_id"] != "run-1" {
		t.Errorf("context missing: %v", e)
	}
	if e["file"] != "override.json" {
		t.Errorf("call fields should win over context fields, got %v", e["file"])
	}
	if e["indent"] != float64(2) || e["numbers"] != float64(4) {
		t.Errorf("fields missing: %v", e)
	}
}

func TestLoggerImmutability(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LevelInfo)
	_ = base.WithField("leaked", true).WithLevel(LevelError)

	base.Info("base")
	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("base logger level changed, got %d entries", len(entries))
	}
	if _, ok := entries[0]["leaked"]; ok {
		t.Error("fields of a derived logger leaked into its parent")
	}
}

func TestLoggerFormatAndOutput(t *testing.T) {
	var first, second bytes.Buffer
	logger := newTestLogger(&first, LevelInfo).WithFormat(FormatLogfmt).WithOutput(&second)

	logger.Info("hello")
	if first.Len() != 0 {
		t.Error("output should have been replaced")
	}
	if !strings.Contains(second.String(), `message="hello"`) {
		t.Errorf("expected logfmt output, got %q", second.String())
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"low severity", cferror.New("not a number").WithCode(cferror.CodeInvalidInput), "info"},
		{"medium severity", cferror.New("odd"), "warn"},
		{"high severity", cferror.New("write failed").WithCode(cferror.CodeOperationFailed), "error"},
		{"critical severity", cferror.New("bug").WithCode(cferror.CodeInternal), "error"},
		{"plain error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newTestLogger(&buf, LevelTrace).LogError(tt.err)

			entries := decodeLines(t, &buf)
			if len(entries) != 1 {
				t.Fatalf("got %d entries, want 1", len(entries))
			}
			if entries[0]["level"] != tt.level {
				t.Errorf("level = %v, want %s", entries[0]["level"], tt.level)
			}
		})
	}

	t.Run("structured fields", func(t *testing.T) {
		var buf bytes.Buffer
		err := cferror.New("bad").
			WithCode(cferror.CodeInvalidFormat).
			WithOperation("document.clean_json").
			WithDetail("module", "document")
		newTestLogger(&buf, LevelTrace).LogError(err)

		e := decodeLines(t, &buf)[0]
		if e["error_code"] != "INVALID_FORMAT" || e["error_operation"] != "document.clean_json" || e["error_module"] != "document" {
			t.Errorf("structured fields missing: %v", e)
		}
		if _, ok := e["error_root_cause"]; ok {
			t.Errorf("error without a cause should carry no root cause: %v", e)
		}
	})

	t.Run("root cause", func(t *testing.T) {
		var buf bytes.Buffer
		inner := cferror.Wrap(errors.New("disk full"), "flush failed")
		newTestLogger(&buf, LevelTrace).LogError(cferror.Wrap(inner, "write failed"))

		e := decodeLines(t, &buf)[0]
		if e["error_root_cause"] != "disk full" {
			t.Errorf("error_root_cause = %v, want disk full", e["error_root_cause"])
		}
	})

	t.Run("nil", func(t *testing.T) {
		var buf bytes.Buffer
		newTestLogger(&buf, LevelTrace).LogError(nil)
		if buf.Len() != 0 {
			t.Error("nil errors should not be logged")
		}
	})
}

func TestErrorWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo)
	logger.ErrorWithErr("read failed", errors.New("EOF"))
	logger.WarnWithErr("skipped", errors.New("NaN"))

	entries := decodeLines(t, &buf)
	if len(entries) != 2 || entries[0]["error"] != "EOF" || entries[1]["level"] != "warn" {
		t.Errorf("unexpected entries: %v", entries)
	}
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug)

	timer := logger.StartTimer("clean_json")
	timer.Stop(Int("numbers", 3))
	if d := timer.Stop(); d != 0 {
		t.Error("a stopped timer should not log again")
	}

	failing := logger.StartTimer("clean_yaml").WithLevel(LevelInfo)
	failing.StopWithError(errors.New("bad indent"))

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["message"] != "clean_json completed" || entries[0]["numbers"] != float64(3) {
		t.Errorf("completion entry = %v", entries[0])
	}
	if _, ok := entries[0]["duration_ms"]; !ok {
		t.Error("duration_ms missing")
	}
	if entries[1]["message"] != "clean_yaml failed" || entries[1]["level"] != "error" {
		t.Errorf("failure entry = %v", entries[1])
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard() should drop every level")
	}
	logger.Error("dropped")
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	custom := Discard()
	SetDefault(custom)
	if GetDefault() != custom {
		t.Error("SetDefault() did not replace the default logger")
	}
}

func TestLoggerConcurrency(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.WithField("worker", i).Info("tick")
		}(i)
	}
	wg.Wait()

	if got := len(decodeLines(t, &buf)); got != 20 {
		t.Errorf("got %d entries, want 20", got)
	}
}
