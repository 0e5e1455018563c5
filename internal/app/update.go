package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mapdeck/internal/errmsg"
	"mapdeck/internal/mapview"
	"mapdeck/internal/overlay"
	"mapdeck/internal/sheet"
	"mapdeck/internal/state"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Map.SetSize(msg.Width, msg.Height)
		m.updateGeometry()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		return m.handleFrame()

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case mapview.CameraSyncMsg:
		m.Map.ApplySync(msg)
		return m, nil

	case scrollIdleMsg:
		if msg.gen == m.scroll.resultsGen {
			m.Coord.SetResultsScrolling(false)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Search.Focused() {
		switch {
		case key.Matches(msg, m.Keys.Dismiss):
			m.Search.Blur()
			return m, nil
		case key.Matches(msg, m.Keys.Submit):
			query := strings.TrimSpace(m.Search.Value())
			m.Search.Blur()
			if query == "" {
				return m, nil
			}
			return m, m.submitSearch(query)
		}
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.sess.cancelInFlight()
		m.Coord.Teardown()
		return m, tea.Quit

	case key.Matches(msg, m.Keys.FocusSearch):
		// Dock the results out of the way while typing a new query.
		if active, ok := m.Coord.ActiveKey(); ok && active == overlay.KeyResults {
			m.Coord.SelectOverlay(overlay.KeyResults, overlay.ReasonDocked)
			return m, tea.Batch(m.Search.Focus(), m.maybeTick())
		}
		return m, m.Search.Focus()

	case key.Matches(msg, m.Keys.Dismiss):
		m.Coord.DismissAll()
		m.ResultsMounted = false
		m.Results = nil
		m.Map.SetMarkers(nil)
		return m, m.maybeTick()

	case key.Matches(msg, m.Keys.NextOverlay):
		m.cycleOverlay(1)
		return m, m.maybeTick()

	case key.Matches(msg, m.Keys.PrevOverlay):
		m.cycleOverlay(-1)
		return m, m.maybeTick()

	case key.Matches(msg, m.Keys.SheetUp):
		return m, m.nudgeSheet(-1)

	case key.Matches(msg, m.Keys.SheetDown):
		return m, m.nudgeSheet(1)

	case key.Matches(msg, m.Keys.Up):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.Keys.Down):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.Keys.Center):
		m.centerSelected()
		return m, nil

	case key.Matches(msg, m.Keys.Bookmark):
		m.bookmarkSelected()
		return m, nil

	case key.Matches(msg, m.Keys.SaveTo):
		m.saveSelected()
		return m, nil

	case key.Matches(msg, m.Keys.ZoomIn):
		m.Map.ZoomBy(1.5)
		return m, nil

	case key.Matches(msg, m.Keys.ZoomOut):
		m.Map.ZoomBy(1.0 / 1.5)
		return m, nil

	case key.Matches(msg, m.Keys.PanKeys):
		switch msg.String() {
		case "h", "left":
			m.Map.Pan(0, -0.2)
		case "l", "right":
			m.Map.Pan(0, 0.2)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if key, ok := m.sheetAt(msg.Y); ok {
				m.drag.begin(key, msg.Y, now)
				m.Coord.BeginDrag(key)
			}
		case tea.MouseButtonWheelUp:
			return m.handleWheel(msg.Y, -1)
		case tea.MouseButtonWheelDown:
			return m.handleWheel(msg.Y, 1)
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.drag.active {
			ty := m.drag.move(msg.Y, now, m.pointsPerRow())
			m.Coord.Drag(m.drag.key, ty)
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.drag.active {
			ty, vy := m.drag.end(msg.Y, now, m.pointsPerRow())
			m.Coord.EndDrag(m.drag.key, ty, vy)
			return m, m.maybeTick()
		}
		return m, nil
	}
	return m, nil
}

// handleWheel scrolls the list when the pointer is over the active
// sheet's body, and zooms the map otherwise.
func (m Model) handleWheel(row, direction int) (tea.Model, tea.Cmd) {
	active, ok := m.Coord.ActiveKey()
	if ok && row >= m.sheetTopRow(active) {
		m.moveSelection(direction)
		if active == overlay.KeyResults {
			m.Coord.SetResultsScrolling(true)
			return m, m.scrollIdleCmd()
		}
		return m, nil
	}
	if direction < 0 {
		m.Map.ZoomBy(1.25)
	} else {
		m.Map.ZoomBy(1.0 / 1.25)
	}
	return m, nil
}

func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, settle := range m.Coord.Step() {
		if settle.Key != overlay.KeyResults {
			continue
		}
		if settle.FullyHidden {
			m.sess.cancelInFlight()
			m.ResultsMounted = false
			m.Results = nil
			m.Map.SetMarkers(nil)
			continue
		}
		// Re-center once the sheet has settled somewhere visible.
		if cmd := m.cameraToSelected(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if m.Coord.AnyActive() {
		cmds = append(cmds, m.frameCmd())
	} else {
		m.ticking = false
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.sess.seq {
		return m, nil
	}
	m.sess.cancel = nil
	m.Search.StopSearching()

	if msg.err != nil {
		if !errors.Is(msg.err, context.Canceled) {
			m.ErrorMsg = errmsg.Format(errmsg.OpSearch, msg.err)
		}
		return m, nil
	}

	m.ErrorMsg = ""
	m.Query = msg.query
	m.Results = msg.matches
	m.ResultsMounted = true
	m.scroll.reset(overlay.KeyResults)
	m.syncMarkers()
	m.Coord.ShowSheet(overlay.KeyResults, sheet.Middle)

	if err := m.StateMgr.AddRecentSearch(msg.query); err == nil {
		if recents, err := m.StateMgr.RecentSearches(8); err == nil {
			m.Recents = recents
		}
	}
	return m, m.maybeTick()
}

// cycleOverlay opens the next or previous overlay in declaration order.
func (m *Model) cycleOverlay(direction int) {
	keys := overlay.Keys()
	next := 0
	if active, ok := m.Coord.ActiveKey(); ok {
		for i, key := range keys {
			if key == active {
				next = (i + direction + len(keys)) % len(keys)
				break
			}
		}
	} else if direction < 0 {
		next = len(keys) - 1
	}
	m.Coord.SelectOverlay(keys[next], overlay.ReasonNavigate)
}

// nudgeSheet moves the active sheet one tier up or down.
func (m *Model) nudgeSheet(direction int) tea.Cmd {
	active, ok := m.Coord.ActiveKey()
	if !ok {
		return nil
	}
	sh := m.Coord.Sheet(active)
	m.Coord.ShowSheet(active, sh.TargetTier().Step(direction))
	return m.maybeTick()
}

// moveSelection moves the list cursor of the active overlay.
func (m *Model) moveSelection(direction int) {
	active, ok := m.Coord.ActiveKey()
	if !ok {
		return
	}
	m.scroll.cur(active).Move(direction, m.listLen(active), m.bodyRowsFor(active))
	if active == overlay.KeyResults {
		m.syncMarkers()
	}
}

// bodyRowsFor returns how many list rows the overlay's sheet currently
// shows, given its live offset.
func (m *Model) bodyRowsFor(key overlay.Key) int {
	rows := m.Height - m.sheetTopRow(key) - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// centerSelected pans the camera to the highlighted entry of the
// active overlay.
func (m *Model) centerSelected() {
	active, ok := m.Coord.ActiveKey()
	if !ok {
		return
	}
	cam := m.Map.Camera()
	switch active {
	case overlay.KeyResults:
		match, ok := m.selectedResult()
		if !ok {
			return
		}
		cam.Lat, cam.Lon = match.Lat, match.Lon
	case overlay.KeyBookmarks:
		idx := m.scroll.cur(active).Pos()
		if idx < 0 || idx >= len(m.Marks) {
			return
		}
		cam.Lat, cam.Lon = m.Marks[idx].Lat, m.Marks[idx].Lon
	default:
		return
	}
	m.Map.SetCamera(cam)
}

// bookmarkSelected saves the highlighted search result.
func (m *Model) bookmarkSelected() {
	match, ok := m.selectedResult()
	if !ok {
		return
	}
	err := m.StateMgr.AddBookmark(state.Bookmark{
		PlaceID: match.ID,
		Name:    match.Name,
		Kind:    match.Kind,
		Lat:     match.Lat,
		Lon:     match.Lon,
	})
	if err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpBookmarkAdd, match.Name, err)
		return
	}
	if marks, err := m.StateMgr.Bookmarks(); err == nil {
		m.Marks = marks
	}
}

// saveSelected adds the highlighted result to the first save-list,
// creating a default list when none exist.
func (m *Model) saveSelected() {
	match, ok := m.selectedResult()
	if !ok {
		return
	}
	var listID int64
	if len(m.Lists) > 0 {
		listID = m.Lists[0].ID
	} else {
		id, err := m.StateMgr.CreateSaveList("Saved places")
		if err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpListCreate, err)
			return
		}
		listID = id
	}
	err := m.StateMgr.AddToSaveList(listID, state.SavedPlace{
		Name: match.Name,
		Lat:  match.Lat,
		Lon:  match.Lon,
	})
	if err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpListAdd, match.Name, err)
		return
	}
	if lists, err := m.StateMgr.SaveLists(); err == nil {
		m.Lists = lists
	}
}

// syncMarkers pushes the current results to the map, highlighting the
// selected one.
func (m *Model) syncMarkers() {
	markers := make([]mapview.Marker, 0, len(m.Results))
	selected := m.scroll.cur(overlay.KeyResults).Pos()
	for i, match := range m.Results {
		markers = append(markers, mapview.Marker{
			Lat:      match.Lat,
			Lon:      match.Lon,
			Label:    match.Name,
			Selected: i == selected,
		})
	}
	m.Map.SetMarkers(markers)
}
