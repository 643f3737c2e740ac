package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"freqnote/internal/cursor"
	"freqnote/internal/notes"
	"freqnote/internal/session"
	"freqnote/internal/tui/shared"
	"freqnote/internal/tui/theme"
)

const maxWidth = 85

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup(m.keys.helpSections(), m.width, m.height)
	}

	width := min(m.width, maxWidth)

	header := theme.Header.Width(width - 2).Render(theme.Title.Render("Note / Frequency Converter"))
	prompt := m.renderPrompt(width)
	footer := m.renderFooter(width)

	// The list box border takes two lines.
	listHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer) - 2
	if prompt != "" {
		listHeight -= lipgloss.Height(prompt)
	}
	list := m.renderList(width, max(listHeight, 1))

	parts := []string{header}
	if prompt != "" {
		parts = append(parts, prompt)
	}
	parts = append(parts, list, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m AppModel) renderPrompt(width int) string {
	switch {
	case m.sess.Screen() == session.NoteInput:
		title := theme.InputTitle.Render("Input Frequency (Hz)")
		value := m.sess.InputText() + "█"
		return theme.InputBox.Width(width).Render(title + "\n" + value)
	case m.searching:
		return theme.InputBox.Width(width).Render(m.search.View())
	}
	return ""
}

func (m AppModel) renderList(width, height int) string {
	box := theme.ListBox
	var lines []string
	if m.sess.SortedActive() {
		box = theme.ListBoxSorted
		lines = append(lines, theme.SortedBadge.Render("Sorted"))
		height--
	}

	// Border and padding take four columns.
	inner := width - 4
	rows := m.sess.Rows()
	if len(rows) == 0 {
		empty := theme.Muted.Render("No notes yet. Press n to add one.")
		lines = append(lines, shared.CenterContent(empty, max(height, 1)))
		return box.Width(width - 2).Render(strings.Join(lines, "\n"))
	}

	sel := m.sess.Selected()
	start, end := visibleRange(sel, len(rows), max(height, 1))
	for i := start; i < end; i++ {
		lines = append(lines, renderRow(rows[i], i == sel, inner))
	}
	return box.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func renderRow(n notes.Note, selected bool, width int) string {
	name := fmt.Sprintf("%-4s", n.Name)
	rest := fmt.Sprintf(" : %.2f Hz -> %.2f Hz", n.SourceFrequency, n.StandardFrequency)
	if selected {
		return theme.Selected.Width(width).Render(name + rest)
	}
	return theme.NoteName.Render(name) + rest
}

// visibleRange returns the window of rows to draw so that sel stays on
// screen.
func visibleRange(sel, total, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	start := 0
	if sel != cursor.Unset && sel >= height {
		start = sel - height + 1
	}
	return start, start + height
}

func (m AppModel) renderFooter(width int) string {
	var binds string
	switch {
	case m.sess.Screen() == session.NoteInput, m.searching:
		binds = m.help.ShortHelpView(m.keys.promptBindings())
	default:
		binds = m.help.ShortHelpView(m.keys.mainBindings(m.sess.SortedActive()))
	}

	lines := binds
	if m.status != "" {
		style := theme.Ok
		if m.statusErr {
			style = theme.Error
		}
		lines = style.Render(m.status) + "\n" + binds
	}
	return theme.StatusBar.Width(width).Render(lines)
}
