// Package searchbar is the fixed search input at the top of the screen.
// Its bottom edge is the anchor the sheet geometry hangs from.
package searchbar

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mapdeck/internal/ui/styles"
)

// Height is the rendered height in rows, border included.
const Height = 3

// Model is the search bar state.
type Model struct {
	input     textinput.Model
	spin      spinner.Model
	searching bool
}

// New creates an unfocused search bar.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Search places"
	ti.Prompt = "⌕ "
	ti.CharLimit = 80

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{input: ti, spin: sp}
}

// Focus moves keyboard input to the bar.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur releases keyboard input.
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the bar has keyboard input.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Value returns the current query text.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the query text.
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

// Reset clears the query text.
func (m *Model) Reset() {
	m.input.Reset()
}

// StartSearching shows the in-flight spinner; returns the tick command
// that drives it.
func (m *Model) StartSearching() tea.Cmd {
	m.searching = true
	return m.spin.Tick
}

// StopSearching hides the spinner.
func (m *Model) StopSearching() {
	m.searching = false
}

// Searching reports whether a search is in flight.
func (m Model) Searching() bool {
	return m.searching
}

// Update routes messages to the input and, while searching, the spinner.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if m.searching {
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// View renders the bar at the given total width.
func (m Model) View(width int) string {
	inner := width - 2
	if inner < 4 {
		return ""
	}

	border := styles.SearchBorder
	if m.input.Focused() {
		border = styles.SearchBorderFocused
	}

	m.input.Width = inner - 6
	content := m.input.View()
	if m.searching {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, " ", m.spin.View())
	}
	return border.Width(inner).Render(content)
}
