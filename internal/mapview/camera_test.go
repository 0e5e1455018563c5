package mapview

import (
	"strings"
	"testing"
)

func testModel() *Model {
	m := New(42, Camera{Lat: 45.0, Lon: -1.5, Zoom: 2})
	m.SetSize(40, 12)
	return m
}

func TestSetCameraApplied(t *testing.T) {
	m := testModel()
	m.SetCamera(Camera{Lat: 10, Lon: 20, Zoom: 4})
	if got := m.Camera(); got != (Camera{Lat: 10, Lon: 20, Zoom: 4}) {
		t.Errorf("Camera = %+v", got)
	}
}

func TestFreezeDefersLatestMove(t *testing.T) {
	m := testModel()
	before := m.Camera()

	m.FreezeUpdates()
	m.SetCamera(Camera{Lat: 1, Lon: 1, Zoom: 2})
	m.SetCamera(Camera{Lat: 2, Lon: 2, Zoom: 2})
	if m.Camera() != before {
		t.Fatal("camera must not move while frozen")
	}

	m.ResumeUpdates()
	if got := m.Camera(); got != (Camera{Lat: 2, Lon: 2, Zoom: 2}) {
		t.Errorf("Camera after resume = %+v, want the latest deferred move", got)
	}
}

func TestResumeWithoutDeferredKeepsCamera(t *testing.T) {
	m := testModel()
	before := m.Camera()
	m.FreezeUpdates()
	m.ResumeUpdates()
	if m.Camera() != before {
		t.Error("resume with nothing deferred must not move the camera")
	}
}

func TestCancelDeferredDropsBufferedMove(t *testing.T) {
	m := testModel()
	before := m.Camera()

	m.FreezeUpdates()
	m.SetCamera(Camera{Lat: 5, Lon: 5, Zoom: 2})
	m.CancelDeferred()
	m.ResumeUpdates()

	if m.Camera() != before {
		t.Error("cancelled deferred move must not apply on resume")
	}
}

func TestStaleSyncDiscarded(t *testing.T) {
	m := testModel()
	before := m.Camera()

	// Simulate a scheduled sync that is superseded by a new drag before
	// it lands.
	msg := CameraSyncMsg{Camera: Camera{Lat: 9, Lon: 9, Zoom: 2}, Generation: m.syncGen}
	m.CancelDeferred()

	if m.ApplySync(msg) {
		t.Error("stale sync must be discarded")
	}
	if m.Camera() != before {
		t.Error("stale sync must not move the camera")
	}
}

func TestCurrentSyncApplies(t *testing.T) {
	m := testModel()
	msg := CameraSyncMsg{Camera: Camera{Lat: 9, Lon: 9, Zoom: 2}, Generation: m.syncGen}
	if !m.ApplySync(msg) {
		t.Fatal("current-generation sync must apply")
	}
	if got := m.Camera(); got.Lat != 9 || got.Lon != 9 {
		t.Errorf("Camera = %+v, want lat/lon 9/9", got)
	}
}

func TestZoomClamped(t *testing.T) {
	m := testModel()
	for i := 0; i < 20; i++ {
		m.ZoomBy(0.5)
	}
	if m.Camera().Zoom != 0.25 {
		t.Errorf("Zoom = %v, want floor 0.25", m.Camera().Zoom)
	}
	for i := 0; i < 40; i++ {
		m.ZoomBy(2)
	}
	if m.Camera().Zoom != 64 {
		t.Errorf("Zoom = %v, want ceiling 64", m.Camera().Zoom)
	}
}

func TestViewDeterministicPerSeed(t *testing.T) {
	a := New(7, Camera{Lat: 45, Lon: -1.5, Zoom: 2})
	a.SetSize(30, 10)
	b := New(7, Camera{Lat: 45, Lon: -1.5, Zoom: 2})
	b.SetSize(30, 10)

	if a.View() != b.View() {
		t.Error("same seed and camera must render identically")
	}

	// Seed sensitivity is asserted on the noise field rather than the
	// rendered frame: color support varies per terminal, and a profile
	// that strips backgrounds would collapse both frames to the same
	// glyphs.
	c := New(8, Camera{Lat: 45, Lon: -1.5, Zoom: 2})
	c.SetSize(30, 10)
	differs := false
	for _, p := range []struct{ lat, lon float64 }{
		{45, -1.5}, {44.2, -0.7}, {46.8, -2.3}, {45.5, -1.1},
	} {
		if a.elevation(p.lat, p.lon) != c.elevation(p.lat, p.lon) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("different seeds should produce different terrain elevations")
	}
}

func TestViewDrawsMarker(t *testing.T) {
	m := testModel()
	m.SetMarkers([]Marker{{Lat: m.Camera().Lat, Lon: m.Camera().Lon, Label: "here"}})
	if !strings.Contains(m.View(), "●") {
		t.Error("marker at the camera center should be visible")
	}
}

func TestViewEmptyWhenUnsized(t *testing.T) {
	m := New(1, Camera{Zoom: 1})
	if m.View() != "" {
		t.Error("unsized map should render empty")
	}
}
