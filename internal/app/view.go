package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"mapdeck/internal/overlay"
	"mapdeck/internal/ui/compose"
	"mapdeck/internal/ui/sheetview"
	"mapdeck/internal/ui/styles"
)

// View implements tea.Model. The map fills the screen; visible sheets
// are spliced over it by row, the focused one painted last, and the
// search bar always sits on top.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	base := m.Map.View()

	active, hasActive := m.Coord.ActiveKey()
	for _, key := range overlay.Keys() {
		if hasActive && key == active {
			continue
		}
		base = m.composeSheet(base, key, false)
	}
	if hasActive {
		base = m.composeSheet(base, active, true)
	}

	base = compose.AtRow(base, m.Search.View(m.Width), 0)
	return compose.AtRow(base, m.statusLine(), m.Height-1)
}

// composeSheet paints one sheet into the base view at its current
// offset. Hidden sheets and sheets entirely below the screen draw
// nothing.
func (m Model) composeSheet(base string, key overlay.Key, focused bool) string {
	sh := m.Coord.Sheet(key)
	if sh.Hidden() {
		return base
	}
	top := m.sheetTopRow(key)
	height := m.Height - top
	if height < 1 {
		return base
	}
	bodyRows := height - 2 // top border and title
	if bodyRows < 0 {
		bodyRows = 0
	}
	body := m.overlayBody(key, m.Width-4, bodyRows)
	frame := sheetview.Frame(m.overlayTitle(key), body, m.Width, height, focused)
	return compose.AtRow(base, frame, top)
}

// statusLine renders the bottom row: an error if one is pending,
// otherwise key hints, right-aligned over the map.
func (m Model) statusLine() string {
	text := m.ErrorMsg
	style := styles.Hint
	if text == "" {
		text = "/ search · tab overlays · J/K tier · esc dismiss · q quit"
	} else {
		style = styles.Selected
	}
	line := style.Render(sheetview.Truncate(text, m.Width))
	pad := m.Width - ansi.StringWidth(line)
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + line
}
