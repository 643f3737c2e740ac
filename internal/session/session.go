package session

import (
	"freqnote/internal/cursor"
	"freqnote/internal/ledger"
	"freqnote/internal/logs"
	"freqnote/internal/notes"
	"freqnote/internal/pitch"
)

// Screen is the input mode of the session.
type Screen int

const (
	Main Screen = iota
	NoteInput
)

// KeyKind identifies a logical key. Terminal escape sequences never reach
// this package.
type KeyKind int

const (
	KeyRune KeyKind = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyQuit
)

// Key is one logical key press. Rune is set for KeyRune only.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Rune returns a KeyRune for r.
func Rune(r rune) Key {
	return Key{Kind: KeyRune, Rune: r}
}

// Session is the whole mutable state of one run: the ledger, both
// selections and the input mode. It is owned by the event loop; renderers
// only use the read accessors.
type Session struct {
	ledger  *ledger.Ledger
	cursor  cursor.DualCursor
	screen  Screen
	input   InputBuffer
	running bool
	lastErr error
}

// New returns a session in Main with an empty ledger.
func New() *Session {
	return &Session{
		ledger:  ledger.New(),
		cursor:  cursor.New(),
		running: true,
	}
}

// Handle applies one key and reports whether the session is still running.
// In Main, 'q', 'n', 's' and 'd' quit, begin input, toggle the sort and
// delete the selection.
func (s *Session) Handle(k Key) bool {
	if k.Kind == KeyQuit {
		s.Quit()
		return s.running
	}

	switch s.screen {
	case Main:
		s.handleMain(k)
	case NoteInput:
		s.handleInput(k)
	}
	return s.running
}

func (s *Session) handleMain(k Key) {
	switch k.Kind {
	case KeyUp:
		s.MoveUp()
	case KeyDown:
		s.MoveDown()
	case KeyRune:
		switch k.Rune {
		case 'q':
			s.Quit()
		case 'n':
			s.BeginInput()
		case 's':
			s.ToggleSort()
		case 'd':
			s.DeleteSelected()
		}
	}
}

func (s *Session) handleInput(k Key) {
	switch k.Kind {
	case KeyRune:
		s.input.Insert(k.Rune)
	case KeyBackspace:
		s.input.Backspace()
	case KeyEscape:
		s.CancelInput()
	case KeyEnter:
		s.Commit()
	}
}

// MoveUp moves the active selection up one row.
func (s *Session) MoveUp() {
	s.cursor.MoveUp(s.ledger.Len())
}

// MoveDown moves the active selection down one row.
func (s *Session) MoveDown() {
	s.cursor.MoveDown(s.ledger.Len())
}

// ToggleSort switches between the input-order and sorted views.
func (s *Session) ToggleSort() {
	s.cursor.Toggle()
}

// Select moves the active selection to pos of the active view.
func (s *Session) Select(pos int) bool {
	return s.cursor.Select(pos, s.ledger.Len())
}

// DeleteSelected removes the note under the active selection. Failures leave
// the ledger untouched and are kept in LastError.
func (s *Session) DeleteSelected() {
	pos := s.cursor.Active()
	if pos == cursor.Unset {
		return
	}
	view := s.cursor.ActiveView()
	removed, err := s.ledger.RemoveFromView(view, pos)
	if err != nil {
		s.lastErr = err
		logs.Logger.Printf("Error deleting %s row %d: %v", view, pos, err)
	} else {
		logs.Logger.Printf("Deleted %s (id %d)", removed, removed.ID)
	}
	s.cursor.Clamp(s.ledger.Len())
}

// BeginInput switches to frequency entry.
func (s *Session) BeginInput() {
	s.screen = NoteInput
	s.input.Clear()
}

// CancelInput discards the buffer and returns to Main.
func (s *Session) CancelInput() {
	s.input.Clear()
	s.screen = Main
}

// Commit parses the buffer and appends a note on success. Input that does
// not parse is dropped without a note. Either way the session returns to
// Main with an empty buffer.
func (s *Session) Commit() {
	text := s.input.String()
	s.input.Clear()
	s.screen = Main

	freq, err := ParseFrequency(text)
	if err != nil {
		logs.Logger.Printf("Discarding input: %v", err)
		return
	}
	n := s.ledger.Append(notes.FromFrequency(freq))
	s.cursor.Reconcile(s.ledger.Len())
	logs.Logger.Printf("Added %s (id %d)", n, n.ID)
}

// Add appends a note for freq directly, bypassing the input buffer.
func (s *Session) Add(freq float64) (notes.Note, error) {
	if err := pitch.Validate(freq); err != nil {
		return notes.Note{}, err
	}
	n := s.ledger.Append(notes.FromFrequency(freq))
	s.cursor.Reconcile(s.ledger.Len())
	return n, nil
}

// Quit ends the session.
func (s *Session) Quit() {
	s.running = false
}

// Running reports whether quit has been requested.
func (s *Session) Running() bool {
	return s.running
}

// Screen returns the current input mode.
func (s *Session) Screen() Screen {
	return s.screen
}

// InputText returns the live input buffer.
func (s *Session) InputText() string {
	return s.input.String()
}

// SortedActive reports whether the sorted view is shown.
func (s *Session) SortedActive() bool {
	return s.cursor.SortedActive
}

// Rows returns the notes of the active view.
func (s *Session) Rows() []notes.Note {
	return s.ledger.Items(s.cursor.ActiveView())
}

// Selected returns the active selection, or cursor.Unset.
func (s *Session) Selected() int {
	return s.cursor.Active()
}

// Notes returns the notes in insertion order.
func (s *Session) Notes() []notes.Note {
	return s.ledger.Snapshot()
}

// Len returns the number of notes.
func (s *Session) Len() int {
	return s.ledger.Len()
}

// LastError returns the most recent internal error, if any.
func (s *Session) LastError() error {
	return s.lastErr
}
