package log

import (
	"slices"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"text", FormatText},
		{" TEXT ", FormatText},
		{"yaml", DefaultFormat},
		{"", DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevels(t *testing.T) {
	got := slices.Collect(Levels())
	want := []string{"trace", "debug", "info", "warn", "error"}

	if !slices.Equal(got, want) {
		t.Errorf("Levels() = %v, want %v", got, want)
	}
}

func TestFormats(t *testing.T) {
	got := slices.Collect(Formats())
	want := []string{"json", "text"}

	if !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestWithTimeLayout_NamedLayouts(t *testing.T) {
	cfg := makeConfig(nil, WithTimeLayout("RFC3339Nano"))
	if cfg.timeLayout != time.RFC3339Nano {
		t.Errorf("timeLayout = %q, want %q", cfg.timeLayout, time.RFC3339Nano)
	}

	// Literal layouts pass through untouched.
	cfg = makeConfig(nil, WithTimeLayout("15:04:05"))
	if cfg.timeLayout != "15:04:05" {
		t.Errorf("timeLayout = %q, want %q", cfg.timeLayout, "15:04:05")
	}
}
