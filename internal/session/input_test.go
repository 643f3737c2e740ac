package session

import (
	"errors"
	"testing"

	"freqnote/internal/pitch"
)

func TestInputBuffer_Insert(t *testing.T) {
	var b InputBuffer
	for _, r := range "4a4.4.x0" {
		b.Insert(r)
	}
	if b.String() != "44.40" {
		t.Errorf("expected %q, got %q", "44.40", b.String())
	}
}

func TestInputBuffer_Backspace(t *testing.T) {
	var b InputBuffer
	b.Backspace()
	b.Insert('1')
	b.Insert('.')
	b.Backspace()
	if b.String() != "1" {
		t.Errorf("expected %q, got %q", "1", b.String())
	}
	// The dot can be typed again once removed.
	if !b.Insert('.') {
		t.Error("expected dot to be accepted after backspace")
	}
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr error
	}{
		{"440", 440, nil},
		{"523.25", 523.25, nil},
		{".5", 0.5, nil},
		{"4a4", 0, ErrParse},
		{"", 0, ErrParse},
		{".", 0, ErrParse},
		{"0", 0, pitch.ErrNonPositiveFrequency},
		{"0.0", 0, pitch.ErrNonPositiveFrequency},
		{"-440", 0, pitch.ErrNonPositiveFrequency},
	}

	for _, tt := range tests {
		got, err := ParseFrequency(tt.input)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseFrequency(%q): expected %v, got %v", tt.input, tt.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFrequency(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFrequency(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}
}
