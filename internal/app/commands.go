package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mapdeck/internal/overlay"
	"mapdeck/internal/places"
)

// scrollIdleDelay is how long wheel input must be quiet before the
// results-scrolling flag clears.
const scrollIdleDelay = 250 * time.Millisecond

// cameraSyncDelay is the settle window before the camera re-centers on
// the selected result after a gesture.
const cameraSyncDelay = 400 * time.Millisecond

// frameCmd schedules the next animation frame.
func (m Model) frameCmd() tea.Cmd {
	interval := time.Second / time.Duration(m.Cfg.Spring.FPS)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// maybeTick starts the frame loop when sheets are in motion and it is
// not already running. Mutates m.ticking; call on the pointer receiver
// path of Update.
func (m *Model) maybeTick() tea.Cmd {
	if m.ticking || !m.Coord.AnyActive() {
		return nil
	}
	m.ticking = true
	return m.frameCmd()
}

// submitSearch cancels any in-flight search and launches the query.
func (m *Model) submitSearch(query string) tea.Cmd {
	m.sess.cancelInFlight()
	m.sess.seq++
	seq := m.sess.seq

	ctx, cancel := context.WithCancel(context.Background())
	m.sess.cancel = cancel
	index := m.Index

	start := m.Search.StartSearching()
	search := func() tea.Msg {
		matches, err := index.Search(ctx, query)
		return searchResultMsg{seq: seq, query: query, matches: matches, err: err}
	}
	return tea.Batch(start, search)
}

// scrollIdleCmd arms the debounce timer for the scrolling flag.
func (m *Model) scrollIdleCmd() tea.Cmd {
	m.scroll.resultsGen++
	gen := m.scroll.resultsGen
	return tea.Tick(scrollIdleDelay, func(time.Time) tea.Msg {
		return scrollIdleMsg{gen: gen}
	})
}

// cameraToSelected returns a deferred camera sync toward the selected
// result, or nil when there is nothing to center on.
func (m *Model) cameraToSelected() tea.Cmd {
	match, ok := m.selectedResult()
	if !ok {
		return nil
	}
	cam := m.Map.Camera()
	cam.Lat = match.Lat
	cam.Lon = match.Lon
	return m.Map.ScheduleCameraSync(cameraSyncDelay, cam)
}

// selectedResult returns the highlighted search result.
func (m Model) selectedResult() (places.Match, bool) {
	idx := m.scroll.cur(overlay.KeyResults).Pos()
	if idx < 0 || idx >= len(m.Results) {
		return places.Match{}, false
	}
	return m.Results[idx], true
}
