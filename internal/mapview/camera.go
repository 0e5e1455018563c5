// Package mapview renders the background map and owns the camera. The
// camera honors the freeze protocol: while any sheet is dragging or
// settling, updates are deferred and only the latest one lands when the
// map thaws.
package mapview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Camera is the map viewpoint.
type Camera struct {
	Lat  float64
	Lon  float64
	Zoom float64
}

// Marker is a point of interest drawn over the terrain.
type Marker struct {
	Lat      float64
	Lon      float64
	Label    string
	Selected bool
}

// CameraSyncMsg is the delayed delivery of a scheduled camera sync. It
// carries the generation it was issued under; stale syncs are dropped.
type CameraSyncMsg struct {
	Camera     Camera
	Generation uint64
}

// Model is the map view state.
type Model struct {
	cam      Camera
	deferred *Camera
	frozen   bool

	// syncGen invalidates scheduled camera syncs: a sync only applies
	// if its generation still matches.
	syncGen uint64

	seed    uint64
	width   int
	height  int
	markers []Marker
}

// New creates a map view with a deterministic terrain seed.
func New(seed uint64, cam Camera) *Model {
	if cam.Zoom <= 0 {
		cam.Zoom = 1
	}
	return &Model{cam: cam, seed: seed}
}

// SetSize updates the render dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Camera returns the current viewpoint.
func (m *Model) Camera() Camera { return m.cam }

// Frozen reports whether updates are currently deferred.
func (m *Model) Frozen() bool { return m.frozen }

// SetCamera moves the viewpoint. While frozen the move is deferred;
// only the latest deferred move applies on resume.
func (m *Model) SetCamera(cam Camera) {
	if cam.Zoom <= 0 {
		cam.Zoom = m.cam.Zoom
	}
	if m.frozen {
		c := cam
		m.deferred = &c
		return
	}
	m.cam = cam
}

// Pan moves the camera by a fraction of the visible span.
func (m *Model) Pan(dLatFrac, dLonFrac float64) {
	latSpan, lonSpan := m.span()
	cam := m.cam
	cam.Lat += dLatFrac * latSpan
	cam.Lon += dLonFrac * lonSpan
	m.SetCamera(cam)
}

// ZoomBy multiplies the zoom level, clamped to a sane range.
func (m *Model) ZoomBy(factor float64) {
	cam := m.cam
	cam.Zoom *= factor
	if cam.Zoom < 0.25 {
		cam.Zoom = 0.25
	}
	if cam.Zoom > 64 {
		cam.Zoom = 64
	}
	m.SetCamera(cam)
}

// FreezeUpdates suspends camera movement. Implements overlay.MapFreezer.
func (m *Model) FreezeUpdates() {
	m.frozen = true
}

// ResumeUpdates thaws the camera and applies the latest deferred move.
func (m *Model) ResumeUpdates() {
	m.frozen = false
	if m.deferred != nil {
		m.cam = *m.deferred
		m.deferred = nil
	}
}

// CancelDeferred invalidates every scheduled camera sync and drops any
// deferred move.
func (m *Model) CancelDeferred() {
	m.syncGen++
	m.deferred = nil
}

// ScheduleCameraSync returns a command that delivers the camera after
// the delay, tagged with the current generation.
func (m *Model) ScheduleCameraSync(delay time.Duration, cam Camera) tea.Cmd {
	gen := m.syncGen
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return CameraSyncMsg{Camera: cam, Generation: gen}
	})
}

// ApplySync applies a delivered camera sync. Returns false when the
// sync was superseded and discarded.
func (m *Model) ApplySync(msg CameraSyncMsg) bool {
	if msg.Generation != m.syncGen {
		return false
	}
	m.SetCamera(msg.Camera)
	return true
}

// SetMarkers replaces the markers drawn over the terrain.
func (m *Model) SetMarkers(markers []Marker) {
	m.markers = markers
}

// span returns the latitude/longitude extent currently visible.
func (m *Model) span() (latSpan, lonSpan float64) {
	// Terminal cells are roughly twice as tall as wide, so a cell
	// covers two longitude units per latitude unit.
	latSpan = baseSpan / m.cam.Zoom
	if m.height > 0 && m.width > 0 {
		lonSpan = latSpan * float64(m.width) / (2 * float64(m.height))
	} else {
		lonSpan = latSpan
	}
	return latSpan, lonSpan
}

// baseSpan is the latitude extent visible at zoom 1.
const baseSpan = 8.0
