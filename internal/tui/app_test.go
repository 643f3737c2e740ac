package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"freqnote/internal/config"
	"freqnote/internal/session"
)

func newTestModel(t *testing.T) AppModel {
	cfg := &config.Config{ExportDir: t.TempDir(), TempoBPM: 120}
	m := NewAppModel(cfg)
	m.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(AppModel)
}

func press(m AppModel, keys ...string) (AppModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(AppModel)
	}
	return m, cmd
}

func addNote(m AppModel, freq string) AppModel {
	m, _ = press(m, "n", freq, "enter")
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestAddNote(t *testing.T) {
	m := newTestModel(t)
	m = addNote(m, "523.25")

	rows := m.sess.Rows()
	if len(rows) != 1 || rows[0].Name != "C5" {
		t.Fatalf("expected one C5, got %+v", rows)
	}
	if !strings.Contains(m.View(), "C5") {
		t.Error("expected note in view")
	}
}

func TestPromptIgnoresCommandKeys(t *testing.T) {
	m := newTestModel(t)
	m, cmd := press(m, "n", "4", "q", "4", "d", "0")
	if isQuit(cmd) {
		t.Fatal("q must not quit while typing a frequency")
	}
	if m.sess.InputText() != "440" {
		t.Errorf("expected buffer 440, got %q", m.sess.InputText())
	}
	if !strings.Contains(m.View(), "Input Frequency") {
		t.Error("expected prompt in view")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	if _, cmd := press(m, "q"); !isQuit(cmd) {
		t.Error("expected q to quit from the main screen")
	}

	m = newTestModel(t)
	m, _ = press(m, "n", "4")
	if _, cmd := press(m, "ctrl+c"); !isQuit(cmd) {
		t.Error("expected ctrl+c to quit while typing")
	}
}

func TestSortAndDelete(t *testing.T) {
	m := newTestModel(t)
	for _, f := range []string{"300", "100", "200"} {
		m = addNote(m, f)
	}

	m, _ = press(m, "s")
	if !strings.Contains(m.View(), "Sorted") {
		t.Error("expected sorted indicator")
	}
	m, _ = press(m, "j", "d")

	if got := m.sess.Rows(); len(got) != 2 || got[0].SourceFrequency != 100 || got[1].SourceFrequency != 300 {
		t.Errorf("expected 200 Hz deleted, got %+v", got)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "?")
	if !strings.Contains(m.View(), "Press any key to close") {
		t.Fatal("expected help overlay")
	}
	m, _ = press(m, "n")
	if m.showHelp || m.sess.Screen() != session.Main {
		t.Error("expected key to only dismiss the overlay")
	}
}

func TestSearchJumpsToMatch(t *testing.T) {
	m := newTestModel(t)
	for _, f := range []string{"440", "261.63", "523.25"} {
		m = addNote(m, f)
	}

	m, _ = press(m, "/", "C", "5", "enter")
	if m.searching {
		t.Error("expected search closed")
	}
	if m.sess.Selected() != 2 {
		t.Errorf("expected C5 row selected, got %d", m.sess.Selected())
	}
	if m.sess.Len() != 3 {
		t.Errorf("search must not change notes, got %d", m.sess.Len())
	}
}

func TestSearchNoMatch(t *testing.T) {
	m := newTestModel(t)
	m = addNote(m, "440")
	m, _ = press(m, "/", "x", "y", "z", "enter")
	if m.sess.Selected() != 0 || !m.statusErr {
		t.Errorf("expected unchanged selection and error status, got %d %q", m.sess.Selected(), m.status)
	}
}

func TestSearchCancel(t *testing.T) {
	m := newTestModel(t)
	m = addNote(m, "440")
	m = addNote(m, "880")
	m, _ = press(m, "/", "8", "esc")
	if m.searching || m.sess.Selected() != 0 {
		t.Errorf("expected cancelled search, selection %d", m.sess.Selected())
	}
}

func TestExport(t *testing.T) {
	m := newTestModel(t)
	m = addNote(m, "440")
	m, _ = press(m, "w")

	want := filepath.Join(m.cfg.ExportDir, "notes-20260102-030405.mid")
	if m.statusErr || !strings.Contains(m.status, want) {
		t.Errorf("expected export to %s, got %q", want, m.status)
	}
}

func TestExport_Empty(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "w")
	if !m.statusErr {
		t.Errorf("expected error status, got %q", m.status)
	}
}

func TestMainKey(t *testing.T) {
	keys := newKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want session.Key
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, session.Key{Kind: session.KeyUp}},
		{tea.KeyMsg{Type: tea.KeyDown}, session.Key{Kind: session.KeyDown}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, session.Rune('q')},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, session.Rune('n')},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, session.Rune('d')},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, session.Rune('s')},
	}

	for _, tt := range tests {
		got, ok := keys.mainKey(tt.msg)
		if !ok || got != tt.want {
			t.Errorf("mainKey(%q): expected %+v, got %+v (%v)", tt.msg.String(), tt.want, got, ok)
		}
	}

	for _, k := range []string{"w", "?", "/"} {
		if _, ok := keys.mainKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}); ok {
			t.Errorf("mainKey(%q): expected TUI-owned key", k)
		}
	}
}

func TestVimKeysMoveSelection(t *testing.T) {
	m := newTestModel(t)
	m = addNote(m, "100")
	m = addNote(m, "200")
	m, _ = press(m, "j")
	if m.sess.Selected() != 1 {
		t.Errorf("expected j to move down, got %d", m.sess.Selected())
	}
	m, _ = press(m, "k")
	if m.sess.Selected() != 0 {
		t.Errorf("expected k to move up, got %d", m.sess.Selected())
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		sel, total, height int
		start, end         int
	}{
		{0, 3, 10, 0, 3},
		{0, 20, 5, 0, 5},
		{4, 20, 5, 0, 5},
		{5, 20, 5, 1, 6},
		{19, 20, 5, 15, 20},
		{-1, 20, 5, 0, 5},
	}

	for _, tt := range tests {
		start, end := visibleRange(tt.sel, tt.total, tt.height)
		if start != tt.start || end != tt.end {
			t.Errorf("visibleRange(%d, %d, %d): expected [%d,%d), got [%d,%d)",
				tt.sel, tt.total, tt.height, tt.start, tt.end, start, end)
		}
	}
}

func TestStartSorted(t *testing.T) {
	m := NewAppModel(&config.Config{StartSorted: true})
	if !m.sess.SortedActive() {
		t.Error("expected sorted view active")
	}
}
