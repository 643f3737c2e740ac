package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"freqnote/internal/notes"
)

const (
	ticksPerQuarter = 960
	velocity        = 100
	DefaultTempo    = 120
)

// ErrNoNotes is returned when there is nothing to export.
var ErrNoNotes = errors.New("no notes to export")

// Build lays the notes out on one track as consecutive quarter notes, in the
// order given. MIDI numbers above 127 cannot be written and are skipped.
func Build(ns []notes.Note, bpm float64) (*smf.SMF, error) {
	if len(ns) == 0 {
		return nil, ErrNoNotes
	}
	if bpm <= 0 {
		bpm = DefaultTempo
	}

	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaMeter(4, 4))
	track.Add(0, smf.MetaTempo(bpm))

	var rest uint32
	for _, n := range ns {
		if n.MIDI > 127 {
			rest += ticksPerQuarter
			continue
		}
		key := uint8(n.MIDI)
		track.Add(rest, midi.NoteOn(0, key, velocity))
		track.Add(ticksPerQuarter, midi.NoteOff(0, key))
		rest = 0
	}
	track.Close(rest)

	if err := sm.Add(track); err != nil {
		return nil, fmt.Errorf("error adding track: %w", err)
	}
	return sm, nil
}

// WriteFile exports the notes to path.
func WriteFile(path string, ns []notes.Note, bpm float64) error {
	sm, err := Build(ns, bpm)
	if err != nil {
		return err
	}
	if err := sm.WriteFile(path); err != nil {
		return fmt.Errorf("error writing MIDI file: %w", err)
	}
	return nil
}

// FileName returns a timestamped export path inside dir.
func FileName(dir string, now time.Time) string {
	return filepath.Join(dir, "notes-"+now.Format("20060102-150405")+".mid")
}
