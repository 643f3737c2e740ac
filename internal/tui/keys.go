package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"freqnote/internal/session"
	"freqnote/internal/tui/shared"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	New    key.Binding
	Delete key.Binding
	Sort   key.Binding
	Search key.Binding
	Export key.Binding
	Help   key.Binding
	Quit   key.Binding

	Accept key.Binding
	Cancel key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new note"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete selected"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort list"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "jump to"),
		),
		Export: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "export midi"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// mainBindings is the status-bar hint list for the main screen. The sort
// hint reflects what pressing it will do.
func (k keyMap) mainBindings(sorted bool) []key.Binding {
	sort := k.Sort
	if sorted {
		sort.SetHelp("s", "unsort list")
	}
	return []key.Binding{k.Quit, k.New, k.Up, k.Down, k.Delete, sort, k.Help}
}

func (k keyMap) promptBindings() []key.Binding {
	return []key.Binding{k.Accept, k.Cancel}
}

func (k keyMap) helpSections() []shared.HelpSection {
	section := func(title string, binds ...key.Binding) shared.HelpSection {
		s := shared.HelpSection{Title: title}
		for _, b := range binds {
			h := b.Help()
			s.Binds = append(s.Binds, shared.HelpBind{Key: h.Key, Desc: h.Desc})
		}
		return s
	}
	return []shared.HelpSection{
		section("Notes", k.New, k.Delete, k.Sort, k.Export),
		section("Navigation", k.Up, k.Down, k.Search),
		section("Prompts", k.Accept, k.Cancel),
		{Title: "General", Binds: []shared.HelpBind{
			{Key: "?", Desc: "Show this help"},
			{Key: "q", Desc: "Quit"},
			{Key: "ctrl+c", Desc: "Quit from anywhere"},
		}},
	}
}

// mainKey translates a main-screen binding into the logical key the
// session expects. Bindings owned by the TUI itself report false.
func (k keyMap) mainKey(msg tea.KeyMsg) (session.Key, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return session.Rune('q'), true
	case key.Matches(msg, k.Up):
		return session.Key{Kind: session.KeyUp}, true
	case key.Matches(msg, k.Down):
		return session.Key{Kind: session.KeyDown}, true
	case key.Matches(msg, k.New):
		return session.Rune('n'), true
	case key.Matches(msg, k.Delete):
		return session.Rune('d'), true
	case key.Matches(msg, k.Sort):
		return session.Rune('s'), true
	}
	return session.Key{}, false
}

// sessionKeys translates a terminal key event into logical keys for the
// note prompt. A paste arrives as several runes at once.
func sessionKeys(msg tea.KeyMsg) []session.Key {
	switch msg.Type {
	case tea.KeyUp:
		return []session.Key{{Kind: session.KeyUp}}
	case tea.KeyDown:
		return []session.Key{{Kind: session.KeyDown}}
	case tea.KeyEnter:
		return []session.Key{{Kind: session.KeyEnter}}
	case tea.KeyEsc:
		return []session.Key{{Kind: session.KeyEscape}}
	case tea.KeyBackspace:
		return []session.Key{{Kind: session.KeyBackspace}}
	case tea.KeyRunes:
		keys := make([]session.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, session.Rune(r))
		}
		return keys
	}
	return nil
}
