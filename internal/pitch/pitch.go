package pitch

import (
	"errors"
	"fmt"
	"math"
)

const (
	// ReferenceFrequency is A4 in Hz.
	ReferenceFrequency = 440.0
	// ReferenceMIDI is the MIDI number of A4.
	ReferenceMIDI = 69

	MaxMIDI = 255
)

// ErrNonPositiveFrequency is returned when a frequency has no pitch.
var ErrNonPositiveFrequency = errors.New("frequency must be positive")

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Validate reports whether freq can be converted to a pitch.
func Validate(freq float64) error {
	if math.IsNaN(freq) || math.IsInf(freq, 0) {
		return fmt.Errorf("invalid frequency %v", freq)
	}
	if freq <= 0 {
		return fmt.Errorf("%v Hz: %w", freq, ErrNonPositiveFrequency)
	}
	return nil
}

// FrequencyToMIDI returns the nearest MIDI number to freq, rounding half away
// from zero. Results outside 0..MaxMIDI are clamped. Callers must reject
// non-positive frequencies with Validate first.
func FrequencyToMIDI(freq float64) int {
	return roundMIDI(ReferenceMIDI + 12*math.Log2(freq/ReferenceFrequency))
}

func roundMIDI(x float64) int {
	m := math.Round(x)
	if math.IsNaN(m) || m < 0 {
		return 0
	}
	if m > MaxMIDI {
		return MaxMIDI
	}
	return int(m)
}

// ClampMIDI limits midi to 0..MaxMIDI.
func ClampMIDI(midi int) int {
	return min(max(midi, 0), MaxMIDI)
}

// MIDIToFrequency returns the equal-temperament frequency of midi.
func MIDIToFrequency(midi int) float64 {
	return ReferenceFrequency * math.Pow(2, float64(midi-ReferenceMIDI)/12)
}

// MIDIToName returns the letter name, accidental and octave of midi, e.g. "C#3".
func MIDIToName(midi int) string {
	return fmt.Sprintf("%s%d", noteNames[midi%12], midi/12-1)
}

// Cents returns the signed distance from standard to freq in cents.
func Cents(freq, standard float64) float64 {
	return 1200 * math.Log2(freq/standard)
}
