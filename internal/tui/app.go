package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"freqnote/internal/config"
	"freqnote/internal/export"
	"freqnote/internal/logs"
	"freqnote/internal/session"
)

// AppModel adapts a session to bubbletea. Each key event is applied to the
// session in full before the next render.
type AppModel struct {
	cfg       *config.Config
	sess      *session.Session
	keys      keyMap
	help      help.Model
	search    textinput.Model
	searching bool
	showHelp  bool
	status    string
	statusErr bool
	width     int
	height    int
	ready     bool
	now       func() time.Time
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config) AppModel {
	sess := session.New()
	if cfg.StartSorted {
		sess.ToggleSort()
	}

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "note or frequency"
	search.CharLimit = 32

	return AppModel{
		cfg:    cfg,
		sess:   sess,
		keys:   newKeyMap(),
		help:   help.New(),
		search: search,
		now:    time.Now,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.Type == tea.KeyCtrlC {
			m.sess.Quit()
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if m.searching {
			return m.updateSearch(msg)
		}

		if m.sess.Screen() == session.NoteInput {
			for _, k := range sessionKeys(msg) {
				m.sess.Handle(k)
			}
			return m, m.quitIfDone()
		}

		return m.updateMain(msg)
	}

	return m, nil
}

func (m AppModel) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	if k, ok := m.keys.mainKey(msg); ok {
		m.sess.Handle(k)
		return m, m.quitIfDone()
	}

	switch {
	case key.Matches(msg, m.keys.Export):
		m.exportNotes()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Reset()
		return m, m.search.Focus()
	}

	return m, m.quitIfDone()
}

func (m AppModel) quitIfDone() tea.Cmd {
	if !m.sess.Running() {
		return tea.Quit
	}
	return nil
}

func (m AppModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeSearch()
		return m, nil
	case key.Matches(msg, m.keys.Accept):
		m.jumpTo(m.search.Value())
		m.closeSearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *AppModel) closeSearch() {
	m.searching = false
	m.search.Blur()
	m.search.Reset()
}

// jumpTo selects the best fuzzy match for query in the active view.
func (m *AppModel) jumpTo(query string) {
	if query == "" {
		return
	}
	rows := m.sess.Rows()
	lines := make([]string, len(rows))
	for i, n := range rows {
		lines[i] = n.String()
	}

	matches := fuzzy.Find(query, lines)
	if len(matches) == 0 {
		m.setStatus(fmt.Sprintf("No note matches %q", query), true)
		return
	}
	m.sess.Select(matches[0].Index)
}

func (m *AppModel) exportNotes() {
	path := export.FileName(m.cfg.ExportDir, m.now())
	if err := export.WriteFile(path, m.sess.Notes(), m.cfg.TempoBPM); err != nil {
		logs.Logger.Printf("Error exporting notes: %v", err)
		m.setStatus("Export failed: "+err.Error(), true)
		return
	}
	logs.Logger.Printf("Exported %d notes to %s", m.sess.Len(), path)
	m.setStatus("Exported to "+path, false)
}

func (m *AppModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}
