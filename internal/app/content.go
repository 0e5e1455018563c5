package app

import (
	"fmt"

	humanize "github.com/dustin/go-humanize"

	"mapdeck/internal/overlay"
	"mapdeck/internal/places"
	"mapdeck/internal/ui/sheetview"
	"mapdeck/internal/ui/styles"
)

// listLen returns how many selectable rows the overlay's list has.
func (m Model) listLen(key overlay.Key) int {
	switch key {
	case overlay.KeyResults:
		return len(m.Results)
	case overlay.KeyPolls:
		return len(m.Polls)
	case overlay.KeyBookmarks:
		return len(m.Marks)
	case overlay.KeySaveList:
		return len(m.Lists)
	}
	return 0
}

// overlayTitle returns the header line for the overlay's sheet.
func (m Model) overlayTitle(key overlay.Key) string {
	switch key {
	case overlay.KeyResults:
		if m.Query == "" {
			return "Results"
		}
		return fmt.Sprintf("Results · %q", m.Query)
	case overlay.KeyPolls:
		return "Polls"
	case overlay.KeyBookmarks:
		return "Bookmarks"
	case overlay.KeyProfile:
		return "Profile"
	case overlay.KeySaveList:
		return "Save lists"
	}
	return ""
}

// overlayBody renders the overlay's list, scrolled so the selection
// stays visible within rows lines of width columns.
func (m Model) overlayBody(key overlay.Key, width, rows int) []string {
	switch key {
	case overlay.KeyResults:
		return m.resultRows(width, rows)
	case overlay.KeyPolls:
		return m.pollRows(width, rows)
	case overlay.KeyBookmarks:
		return m.bookmarkRows(width, rows)
	case overlay.KeyProfile:
		return m.profileRows(width)
	case overlay.KeySaveList:
		return m.saveListRows(width, rows)
	}
	return nil
}

func (m Model) resultRows(width, rows int) []string {
	if len(m.Results) == 0 {
		return []string{styles.Subtle.Render("No matches.")}
	}
	cam := m.Map.Camera()
	cur := m.scroll.cur(overlay.KeyResults)
	selected := cur.Pos()
	first, last := cur.VisibleRange(len(m.Results), rows)

	out := make([]string, 0, rows)
	for i := first; i < last; i++ {
		r := m.Results[i]
		meters := places.Distance(cam.Lat, cam.Lon, r.Lat, r.Lon)
		dist := styles.Distance.Render(humanDistance(meters))
		kind := styles.Kind.Render(r.Kind)
		line := fmt.Sprintf("%s  %s  %s", r.Name, kind, dist)
		if i == selected {
			line = styles.Selected.Render("▸ " + r.Name + "  " + r.Kind + "  " + humanDistance(meters))
		}
		out = append(out, sheetview.Truncate(line, width))
	}
	return out
}

func (m Model) pollRows(width, rows int) []string {
	selected := m.scroll.cur(overlay.KeyPolls).Pos()
	out := make([]string, 0, rows)
	for i, p := range m.Polls {
		if len(out) >= rows {
			break
		}
		q := p.Question
		if i == selected {
			q = styles.Selected.Render("▸ " + q)
		} else {
			q = styles.Title.Render(q)
		}
		out = append(out, sheetview.Truncate(q, width))
		for _, opt := range p.Options {
			if len(out) >= rows {
				break
			}
			line := fmt.Sprintf("  %s %s", opt.Label,
				styles.Subtle.Render(humanize.Comma(int64(opt.Votes))+" votes"))
			out = append(out, sheetview.Truncate(line, width))
		}
	}
	return out
}

func (m Model) bookmarkRows(width, rows int) []string {
	if len(m.Marks) == 0 {
		return []string{styles.Subtle.Render("Nothing bookmarked yet. Press b on a result.")}
	}
	cur := m.scroll.cur(overlay.KeyBookmarks)
	selected := cur.Pos()
	first, last := cur.VisibleRange(len(m.Marks), rows)

	out := make([]string, 0, rows)
	for i := first; i < last; i++ {
		b := m.Marks[i]
		when := styles.Subtle.Render(humanize.Time(b.CreatedAt))
		line := fmt.Sprintf("%s  %s  %s", b.Name, styles.Kind.Render(b.Kind), when)
		if i == selected {
			line = styles.Selected.Render("▸ " + b.Name + "  " + b.Kind)
		}
		out = append(out, sheetview.Truncate(line, width))
	}
	return out
}

func (m Model) profileRows(width int) []string {
	lines := []string{
		styles.Title.Render("Local explorer"),
		"",
		fmt.Sprintf("Bookmarks      %s", humanize.Comma(int64(len(m.Marks)))),
		fmt.Sprintf("Save lists     %s", humanize.Comma(int64(len(m.Lists)))),
		"",
		styles.Subtle.Render("Recent searches"),
	}
	for _, r := range m.Recents {
		lines = append(lines, sheetview.Truncate("  "+r.Query, width))
	}
	if len(m.Recents) == 0 {
		lines = append(lines, styles.Subtle.Render("  none yet"))
	}
	return lines
}

func (m Model) saveListRows(width, rows int) []string {
	if len(m.Lists) == 0 {
		return []string{styles.Subtle.Render("No lists yet. Press s on a result.")}
	}
	selected := m.scroll.cur(overlay.KeySaveList).Pos()
	out := make([]string, 0, rows)
	for i, l := range m.Lists {
		if len(out) >= rows {
			break
		}
		count := styles.Subtle.Render(fmt.Sprintf("%s places", humanize.Comma(int64(l.Count))))
		line := fmt.Sprintf("%s  %s", l.Name, count)
		if i == selected {
			line = styles.Selected.Render(fmt.Sprintf("▸ %s  %d places", l.Name, l.Count))
		}
		out = append(out, sheetview.Truncate(line, width))
	}
	return out
}

// humanDistance formats a great-circle distance in meters for a list row.
func humanDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}
