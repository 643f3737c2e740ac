package ledger

import (
	"cmp"
	"fmt"
	"slices"

	"freqnote/internal/notes"
)

// View selects an ordering of the ledger.
type View int

const (
	InputOrder View = iota
	Sorted
)

func (v View) String() string {
	if v == Sorted {
		return "sorted"
	}
	return "input order"
}

// SortedView returns a fresh copy of the notes ordered by ascending source
// frequency. Equal frequencies keep their insertion order.
func (l *Ledger) SortedView() []notes.Note {
	sorted := l.Snapshot()
	slices.SortStableFunc(sorted, func(a, b notes.Note) int {
		return cmp.Compare(a.SourceFrequency, b.SourceFrequency)
	})
	return sorted
}

// Items returns the notes as ordered by v.
func (l *Ledger) Items(v View) []notes.Note {
	if v == Sorted {
		return l.SortedView()
	}
	return l.Snapshot()
}

// InsertionIndex translates position pos of view v into an insertion-order
// position. The note is matched by creation id, so duplicate frequencies
// resolve to the exact entry shown.
func (l *Ledger) InsertionIndex(v View, pos int) (int, error) {
	if v == InputOrder {
		if pos < 0 || pos >= len(l.notes) {
			return -1, fmt.Errorf("%s position %d of %d: %w", v, pos, len(l.notes), ErrIndexOutOfRange)
		}
		return pos, nil
	}
	items := l.SortedView()
	if pos < 0 || pos >= len(items) {
		return -1, fmt.Errorf("%s position %d of %d: %w", v, pos, len(items), ErrIndexOutOfRange)
	}
	return l.locate(items[pos])
}

func (l *Ledger) locate(n notes.Note) (int, error) {
	i := l.indexOf(n.ID)
	if i < 0 {
		return -1, fmt.Errorf("note %d (%.3f Hz): %w", n.ID, n.SourceFrequency, ErrViewDesync)
	}
	return i, nil
}

// RemoveFromView removes the note shown at position pos of view v. On any
// error the ledger is left untouched.
func (l *Ledger) RemoveFromView(v View, pos int) (notes.Note, error) {
	i, err := l.InsertionIndex(v, pos)
	if err != nil {
		return notes.Note{}, err
	}
	return l.RemoveAt(i)
}
