package xsb

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatErrorMessage(t *testing.T) {
	err := formatErrorf(0x40, ErrUnexpectedEnd, "cannot read %d bytes", 8)

	if !strings.Contains(err.Error(), "cannot read 8 bytes") {
		t.Fatalf("message %q lacks the reason", err.Error())
	}

	if !strings.Contains(err.Error(), "0x40") {
		t.Fatalf("message %q lacks the offset", err.Error())
	}

	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Fatal("sentinel not reachable through Unwrap")
	}
}

func TestPitchFromRaw(t *testing.T) {
	tests := []struct {
		name string
		raw  int16
		want float32
	}{
		{"zero", 0, 0},
		{"one octave up", 4096, 12},
		{"one octave down", -4096, -12},
		{"clamped high", 32767, 24},
		{"clamped low", -32768, -24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pitchFromRaw(tt.raw); got != tt.want {
				t.Fatalf("pitchFromRaw(%d)=%v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestVolumeFromRaw(t *testing.T) {
	tests := []struct {
		name string
		raw  int16
		want float32
	}{
		{"zero", 0, 0},
		{"positive", 150, 1.5},
		{"negative", -6400, -64},
		{"clamped high", 32767, 64},
		{"clamped low", -32768, -64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := volumeFromRaw(tt.raw); got != tt.want {
				t.Fatalf("volumeFromRaw(%d)=%v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
