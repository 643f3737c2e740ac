package notes

import (
	"fmt"

	"freqnote/internal/pitch"
)

// Note is one entered frequency and the pitch it rounds to. Notes are values;
// copies never share state.
type Note struct {
	ID                uint64  // Creation sequence number, assigned by the ledger
	SourceFrequency   float64 // As entered, unrounded
	StandardFrequency float64 // Equal-temperament frequency of MIDI
	MIDI              int
	Name              string // e.g. "C#3"
}

// FromFrequency builds a Note from a validated, positive frequency.
func FromFrequency(freq float64) Note {
	midi := pitch.FrequencyToMIDI(freq)
	return Note{
		SourceFrequency:   freq,
		StandardFrequency: pitch.MIDIToFrequency(midi),
		MIDI:              midi,
		Name:              pitch.MIDIToName(midi),
	}
}

// FromMIDI builds a Note that sits exactly on a MIDI pitch. Numbers outside
// 0..pitch.MaxMIDI are clamped.
func FromMIDI(midi int) Note {
	midi = pitch.ClampMIDI(midi)
	freq := pitch.MIDIToFrequency(midi)
	return Note{
		SourceFrequency:   freq,
		StandardFrequency: freq,
		MIDI:              midi,
		Name:              pitch.MIDIToName(midi),
	}
}

// Equal compares notes by source frequency only.
func (n Note) Equal(o Note) bool {
	return n.SourceFrequency == o.SourceFrequency
}

// Less orders notes by ascending source frequency.
func (n Note) Less(o Note) bool {
	return n.SourceFrequency < o.SourceFrequency
}

// Cents is the offset of the entered frequency from the standard pitch.
func (n Note) Cents() float64 {
	return pitch.Cents(n.SourceFrequency, n.StandardFrequency)
}

func (n Note) String() string {
	return fmt.Sprintf("%s : %.2f Hz -> %.2f Hz", n.Name, n.SourceFrequency, n.StandardFrequency)
}
