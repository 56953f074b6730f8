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
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"debug+2", Level(2 + LevelDebug)},
		{"bogus", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevel_StringRoundTrip(t *testing.T) {
	for name := range Levels() {
		if got := ParseLevel(name).String(); got != name {
			t.Errorf("ParseLevel(%q).String() = %q", name, got)
		}
	}
}

func TestFormat_UnmarshalText(t *testing.T) {
	var f Format

	if err := f.UnmarshalText([]byte(" JSON ")); err != nil || f != FormatJSON {
		t.Errorf("UnmarshalText(JSON) = %v, %v", f, err)
	}

	if err := f.UnmarshalText([]byte("xml")); err == nil {
		t.Error("UnmarshalText(xml) succeeded")
	}

	if got := slices.Collect(Formats()); !slices.Equal(got, []string{"text", "json"}) {
		t.Errorf("Formats() = %v", got)
	}

	if ParseFormat("xml") != DefaultFormat {
		t.Error("ParseFormat(xml) did not fall back to the default")
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	tests := []struct {
		layout string
		empty  bool
	}{
		{"RFC3339", false},
		{"rfc-3339-nano", false},
		{"Kitchen", false},
		{"15:04", false},
		{"none", true},
		{"", true},
		{"   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			t.Parallel()

			got := makeFormatTimeFunc(tt.layout)(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
			if (got == "") != tt.empty {
				t.Errorf("layout %q formatted %q", tt.layout, got)
			}
		})
	}
}
