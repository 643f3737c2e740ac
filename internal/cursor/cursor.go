package cursor

import "freqnote/internal/ledger"

// Unset marks a cursor with no selection.
const Unset = -1

// DualCursor keeps one selection per view and tracks which view is active.
// Toggling the active view never moves either selection.
type DualCursor struct {
	input        int
	sorted       int
	SortedActive bool
}

// New returns a cursor pair with both selections unset.
func New() DualCursor {
	return DualCursor{input: Unset, sorted: Unset}
}

// ActiveView returns the view the active selection belongs to.
func (c *DualCursor) ActiveView() ledger.View {
	if c.SortedActive {
		return ledger.Sorted
	}
	return ledger.InputOrder
}

// Toggle switches which view is active.
func (c *DualCursor) Toggle() {
	c.SortedActive = !c.SortedActive
}

// Position returns the selection in view v, or Unset.
func (c *DualCursor) Position(v ledger.View) int {
	if v == ledger.Sorted {
		return c.sorted
	}
	return c.input
}

// Active returns the selection in the active view, or Unset.
func (c *DualCursor) Active() int {
	return c.Position(c.ActiveView())
}

func (c *DualCursor) set(v ledger.View, pos int) {
	if v == ledger.Sorted {
		c.sorted = pos
	} else {
		c.input = pos
	}
}

// Select places the active selection at pos if it lies within length.
func (c *DualCursor) Select(pos, length int) bool {
	if pos < 0 || pos >= length {
		return false
	}
	c.set(c.ActiveView(), pos)
	return true
}

// MoveUp moves the active selection towards the top of a view of the given
// length. An unset selection jumps to the last row.
func (c *DualCursor) MoveUp(length int) {
	if length == 0 {
		return
	}
	v := c.ActiveView()
	pos := c.Position(v)
	switch {
	case pos == Unset || pos >= length:
		pos = length - 1
	case pos > 0:
		pos--
	}
	c.set(v, pos)
}

// MoveDown moves the active selection towards the bottom. An unset selection
// jumps to the first row.
func (c *DualCursor) MoveDown(length int) {
	if length == 0 {
		return
	}
	v := c.ActiveView()
	pos := c.Position(v)
	switch {
	case pos == Unset:
		pos = 0
	case pos < length-1:
		pos++
	default:
		pos = length - 1
	}
	c.set(v, pos)
}

// Clamp brings both selections back inside views of the given length: a
// selection past the end moves to the last row, or is cleared when the view
// is empty. Both views always hold the same number of notes.
func (c *DualCursor) Clamp(length int) {
	c.input = clamp(c.input, length)
	c.sorted = clamp(c.sorted, length)
}

// Reconcile clamps both selections and selects the first row of any view
// that has notes but no selection.
func (c *DualCursor) Reconcile(length int) {
	c.Clamp(length)
	if length == 0 {
		return
	}
	if c.input == Unset {
		c.input = 0
	}
	if c.sorted == Unset {
		c.sorted = 0
	}
}

func clamp(pos, length int) int {
	if length == 0 {
		return Unset
	}
	if pos >= length {
		return length - 1
	}
	return pos
}
