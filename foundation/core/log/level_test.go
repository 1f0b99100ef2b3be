// File: level_test.go
// Title: Log Level Tests
// Description: Tests for level parsing, naming and filtering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package log

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLevelError(t *testing.T) {
	_, err := ParseLevel("loud")
	if err == nil || err.Error() != "invalid log level: loud" {
		t.Errorf("ParseLevel() error = %v", err)
	}
}

func TestLevelStrings(t *testing.T) {
	levels := map[Level][2]string{
		LevelTrace: {"trace", "TRC"},
		LevelDebug: {"debug", "DBG"},
		LevelInfo:  {"info", "INF"},
		LevelWarn:  {"warn", "WRN"},
		LevelError: {"error", "ERR"},
		Level(42):  {"unknown", "???"},
	}
	for level, want := range levels {
		if level.String() != want[0] || level.ShortString() != want[1] {
			t.Errorf("Level(%d) = %q/%q, want %q/%q", level, level.String(), level.ShortString(), want[0], want[1])
		}
	}
}

func TestShouldLog(t *testing.T) {
	if !LevelError.ShouldLog(LevelInfo) {
		t.Error("error should pass an info threshold")
	}
	if LevelDebug.ShouldLog(LevelInfo) {
		t.Error("debug should not pass an info threshold")
	}
	if !LevelInfo.ShouldLog(LevelInfo) {
		t.Error("a level should pass its own threshold")
	}
}
