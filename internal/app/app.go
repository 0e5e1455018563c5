// Package app wires the map, search, and sheet coordinator into the
// root bubbletea model.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"mapdeck/internal/config"
	"mapdeck/internal/geom"
	"mapdeck/internal/mapview"
	"mapdeck/internal/overlay"
	"mapdeck/internal/places"
	"mapdeck/internal/sheet"
	"mapdeck/internal/state"
	"mapdeck/internal/ui/cursor"
	"mapdeck/internal/ui/searchbar"
)

// Model is the root application model containing all state.
type Model struct {
	Cfg      *config.Config
	StateMgr state.Interface
	Index    *places.Index
	Map      *mapview.Model
	Coord    *overlay.Coordinator
	Search   searchbar.Model
	Keys     KeyMap

	Width  int
	Height int

	// anchorTop is the geometry anchor in points. Geometry is only
	// recomputed when it moves by more than half a point, so sub-point
	// layout noise cannot cause churn.
	anchorTop    float64
	screenPoints float64

	Results        []places.Match
	Query          string
	ResultsMounted bool
	Polls          []places.Poll
	Marks          []state.Bookmark
	Lists          []state.SaveList
	Recents        []state.RecentSearch

	// sess and scroll are stable pointers so overlay dismissors can
	// reach the live session state from their closures.
	sess   *searchSession
	scroll *scrollState

	drag     dragTracker
	ticking  bool
	ErrorMsg string
}

// searchSession tracks the in-flight search so a dismissal or a newer
// query can cancel it. seq is the request generation: stale results
// are discarded on arrival.
type searchSession struct {
	seq    int
	cancel context.CancelFunc
}

func (s *searchSession) cancelInFlight() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// scrollState holds per-overlay list cursors. An overlay's dismissor
// resets its entry.
type scrollState struct {
	cursors map[overlay.Key]*cursor.Cursor

	// resultsGen invalidates the scroll-idle timer that clears the
	// results-scrolling interaction flag.
	resultsGen int
}

func newScrollState() *scrollState {
	s := &scrollState{cursors: make(map[overlay.Key]*cursor.Cursor)}
	for _, key := range overlay.Keys() {
		c := cursor.New(1)
		s.cursors[key] = &c
	}
	return s
}

func (s *scrollState) cur(key overlay.Key) *cursor.Cursor {
	return s.cursors[key]
}

func (s *scrollState) reset(key overlay.Key) {
	s.cursors[key].Reset()
}

// New creates the application model from configuration.
func New(cfg *config.Config, stateMgr state.Interface) (Model, error) {
	mp := mapview.New(cfg.MapSeed, mapview.Camera{Lat: 44.97, Lon: -1.52, Zoom: 2})
	coord := overlay.New(mp)

	m := Model{
		Cfg:      cfg,
		StateMgr: stateMgr,
		Index:    places.DefaultIndex(),
		Map:      mp,
		Coord:    coord,
		Search:   searchbar.New(),
		Keys:     DefaultKeyMap(),
		Polls:    places.SamplePolls(),
		sess:     &searchSession{},
		scroll:   newScrollState(),
	}

	// Placeholder geometry until the first WindowSizeMsg arrives.
	placeholder := geom.Opts{ScreenHeight: 800, AnchorTop: 120}
	sess, scroll := m.sess, m.scroll
	for _, key := range overlay.Keys() {
		tunables := cfg.OverlayTunables()
		if key == overlay.KeyResults {
			tunables = cfg.ResultsTunables()
		}
		sh := sheet.New(geom.Compute(placeholder, tunables), cfg.Thresholds(), cfg.SpringFor())

		k := key
		var dismiss overlay.Dismissor
		if key == overlay.KeyResults {
			dismiss = func() {
				sess.cancelInFlight()
				scroll.reset(k)
			}
		} else {
			dismiss = func() { scroll.reset(k) }
		}
		coord.Register(key, sh, dismiss)
	}

	if marks, err := stateMgr.Bookmarks(); err == nil {
		m.Marks = marks
	}
	if lists, err := stateMgr.SaveLists(); err == nil {
		m.Lists = lists
	}
	if recents, err := stateMgr.RecentSearches(8); err == nil {
		m.Recents = recents
	}

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// pointsPerRow returns the vertical scale between terminal rows and
// sheet points.
func (m Model) pointsPerRow() float64 {
	return m.Cfg.PointsPerRow
}

// updateGeometry recomputes the snap positions from the current window
// size. The anchor is the search bar's bottom edge. Geometry is left
// alone when the anchor moved by half a point or less and the screen
// height is unchanged.
func (m *Model) updateGeometry() {
	anchor := float64(searchbar.Height) * m.pointsPerRow()
	screen := float64(m.Height) * m.pointsPerRow()
	if m.screenPoints == screen && abs(anchor-m.anchorTop) <= 0.5 {
		return
	}
	m.anchorTop = anchor
	m.screenPoints = screen

	opts := geom.Opts{ScreenHeight: screen, AnchorTop: anchor}
	resultsSnap := geom.Compute(opts, m.Cfg.ResultsTunables())
	overlaySnap := geom.Compute(opts, m.Cfg.OverlayTunables())

	for _, key := range overlay.Keys() {
		snap := overlaySnap
		if key == overlay.KeyResults {
			snap = resultsSnap
		}
		m.Coord.Sheet(key).SetGeometry(snap)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
