// Package sheetview renders the chrome around a bottom sheet: the grab
// handle, title row, and body lines, sized to whatever slice of the
// sheet is currently on screen.
package sheetview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"mapdeck/internal/ui/styles"
)

// Frame renders a sheet occupying `height` rows at `width` columns. The
// sheet visually continues past the bottom of the screen, so only the
// top edge is bordered. A focused sheet gets the highlighted border.
func Frame(title string, body []string, width, height int, focused bool) string {
	if width < 8 || height < 1 {
		return ""
	}
	inner := width - 4 // border, padding each side

	borderColor := styles.Border
	if focused {
		borderColor = styles.BorderHot
	}
	edge := lipgloss.NewStyle().Foreground(borderColor)
	bg := lipgloss.NewStyle().Background(styles.SheetBG)

	lines := make([]string, 0, height)

	// Top border with a centered grab handle.
	handle := styles.GrabHandle.Render("━━━")
	sideLen := (width - 2 - 5) / 2
	top := edge.Render("╭"+strings.Repeat("─", sideLen)+" ") +
		handle +
		edge.Render(" "+strings.Repeat("─", width-2-sideLen-5)+"╮")
	lines = append(lines, top)

	if height > 1 {
		t := Truncate(title, inner)
		pad := inner - ansi.StringWidth(t)
		lines = append(lines, edge.Render("│")+bg.Render(" "+styles.Title.Render(t)+strings.Repeat(" ", pad+1))+edge.Render("│"))
	}

	for i := 0; len(lines) < height; i++ {
		var row string
		if i < len(body) {
			row = Truncate(body[i], inner)
		}
		pad := inner - ansi.StringWidth(row)
		if pad < 0 {
			pad = 0
		}
		lines = append(lines, edge.Render("│")+bg.Render(" "+row+strings.Repeat(" ", pad+1))+edge.Render("│"))
	}

	return strings.Join(lines, "\n")
}

// Truncate shortens a string to the given display width, appending an
// ellipsis. Styled strings are cut ANSI-aware; plain strings are cut on
// grapheme boundaries so combining marks are never split.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if !strings.Contains(s, "\x1b") {
		return truncatePlain(s, width)
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width-1, "…")
}

func truncatePlain(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if used+w > width-1 {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String() + "…"
}
