package ledger

import (
	"errors"
	"fmt"
	"slices"

	"freqnote/internal/notes"
)

var (
	// ErrIndexOutOfRange is returned for a position past the end of a view.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrViewDesync is returned when a view entry no longer exists in the ledger.
	ErrViewDesync = errors.New("view out of sync with ledger")
)

// Ledger holds entered notes in insertion order. It is the only owner of
// its notes; every read returns a copy.
type Ledger struct {
	notes  []notes.Note
	nextID uint64
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{nextID: 1}
}

// Append stamps n with the next creation id and stores it at the end.
func (l *Ledger) Append(n notes.Note) notes.Note {
	n.ID = l.nextID
	l.nextID++
	l.notes = append(l.notes, n)
	return n
}

// RemoveAt removes and returns the note at insertion position i.
func (l *Ledger) RemoveAt(i int) (notes.Note, error) {
	if i < 0 || i >= len(l.notes) {
		return notes.Note{}, fmt.Errorf("remove at %d of %d: %w", i, len(l.notes), ErrIndexOutOfRange)
	}
	n := l.notes[i]
	l.notes = slices.Delete(l.notes, i, i+1)
	return n, nil
}

// Snapshot returns a copy of the notes in insertion order.
func (l *Ledger) Snapshot() []notes.Note {
	return slices.Clone(l.notes)
}

// Len returns the number of notes.
func (l *Ledger) Len() int {
	return len(l.notes)
}

func (l *Ledger) indexOf(id uint64) int {
	return slices.IndexFunc(l.notes, func(n notes.Note) bool {
		return n.ID == id
	})
}
