package overlay

import (
	"testing"

	"mapdeck/internal/geom"
	"mapdeck/internal/sheet"
)

// freezeRecorder is a MapFreezer that counts hook invocations.
type freezeRecorder struct {
	freezes   int
	resumes   int
	cancelled int
}

func (f *freezeRecorder) FreezeUpdates()  { f.freezes++ }
func (f *freezeRecorder) ResumeUpdates()  { f.resumes++ }
func (f *freezeRecorder) CancelDeferred() { f.cancelled++ }

func testSnap() geom.Snap {
	return geom.Compute(geom.Opts{ScreenHeight: 800, AnchorTop: 120}, geom.Defaults())
}

func newTestCoordinator() (*Coordinator, *freezeRecorder, map[Key]*int) {
	rec := &freezeRecorder{}
	c := New(rec)
	dismissals := make(map[Key]*int)
	for _, key := range Keys() {
		sh := sheet.New(testSnap(), sheet.DefaultThresholds(), sheet.DefaultSpring())
		count := new(int)
		dismissals[key] = count
		c.Register(key, sh, func() { *count++ })
	}
	return c, rec, dismissals
}

// settle drives the coordinator until every sheet is at rest.
func settle(t *testing.T, c *Coordinator) {
	t.Helper()
	for i := 0; i < 1200; i++ {
		c.Step()
		if !c.AnyActive() {
			return
		}
	}
	t.Fatal("sheets did not settle within 1200 frames")
}

func TestSelectOverlayOpensExpanded(t *testing.T) {
	c, _, _ := newTestCoordinator()

	c.SelectOverlay(KeyPolls, ReasonNavigate)
	settle(t, c)

	if got := c.Sheet(KeyPolls).Tier(); got != sheet.Expanded {
		t.Errorf("polls tier = %v, want Expanded", got)
	}
}

func TestSelectOverlayDockedOpensCollapsed(t *testing.T) {
	c, _, _ := newTestCoordinator()

	c.SelectOverlay(KeyBookmarks, ReasonDocked)
	settle(t, c)

	if got := c.Sheet(KeyBookmarks).Tier(); got != sheet.Collapsed {
		t.Errorf("bookmarks tier = %v, want Collapsed", got)
	}
}

func TestExclusivity(t *testing.T) {
	c, _, _ := newTestCoordinator()

	c.ShowSheet(KeyBookmarks, sheet.Middle)
	settle(t, c)
	if got := c.Sheet(KeyBookmarks).Tier(); got != sheet.Middle {
		t.Fatalf("bookmarks tier = %v, want Middle", got)
	}

	c.SelectOverlay(KeyPolls, ReasonNavigate)
	settle(t, c)

	if got := c.Sheet(KeyBookmarks).Tier(); got != sheet.Hidden {
		t.Errorf("bookmarks tier = %v, want Hidden", got)
	}
	if got := c.Sheet(KeyPolls).Tier(); got == sheet.Hidden {
		t.Error("polls must not be hidden after selection")
	}

	// At committed rest exactly one overlay is non-hidden.
	nonHidden := 0
	for _, key := range Keys() {
		if c.Sheet(key).Tier() != sheet.Hidden {
			nonHidden++
		}
	}
	if nonHidden != 1 {
		t.Errorf("non-hidden overlays at rest = %d, want 1", nonHidden)
	}
}

func TestSwitchDuringGestureDelaysDismissal(t *testing.T) {
	c, _, dismissals := newTestCoordinator()

	c.ShowSheet(KeyBookmarks, sheet.Middle)
	settle(t, c)

	// Displacing a mid-gesture overlay must not lose the dismissal:
	// the gesture wins the race, the Hidden request follows its release.
	c.BeginDrag(KeyBookmarks)
	c.ShowSheet(KeyPolls, sheet.Middle)

	if got := c.Sheet(KeyBookmarks).TargetTier(); got == sheet.Hidden {
		t.Fatal("dismissal must not interrupt an active gesture")
	}
	if got := *dismissals[KeyBookmarks]; got != 1 {
		t.Fatalf("bookmarks dismissor ran %d times, want 1", got)
	}

	c.EndDrag(KeyBookmarks, 10, 0)
	settle(t, c)

	if got := c.Sheet(KeyBookmarks).Tier(); got != sheet.Hidden {
		t.Errorf("bookmarks tier = %v, want Hidden after gesture released", got)
	}
	if got := c.Sheet(KeyPolls).Tier(); got != sheet.Middle {
		t.Errorf("polls tier = %v, want Middle", got)
	}

	nonHidden := 0
	for _, key := range Keys() {
		if !c.Sheet(key).Hidden() {
			nonHidden++
		}
	}
	if nonHidden != 1 {
		t.Errorf("%d overlays non-hidden at committed rest, want 1", nonHidden)
	}
}

func TestReselectingDraggedOverlayCancelsDeferredDismissal(t *testing.T) {
	c, _, _ := newTestCoordinator()

	c.ShowSheet(KeyBookmarks, sheet.Middle)
	settle(t, c)
	c.BeginDrag(KeyBookmarks)
	c.ShowSheet(KeyPolls, sheet.Middle)
	c.ShowSheet(KeyBookmarks, sheet.Middle)
	c.EndDrag(KeyBookmarks, 10, 0)
	settle(t, c)

	if got := c.Sheet(KeyBookmarks).Tier(); got == sheet.Hidden {
		t.Error("re-selected overlay must not be dismissed by a stale deferral")
	}
	if got := c.Sheet(KeyPolls).Tier(); got != sheet.Hidden {
		t.Errorf("polls tier = %v, want Hidden after being displaced back", got)
	}
}

func TestDismissorsInvokedForOthersOnly(t *testing.T) {
	c, _, dismissals := newTestCoordinator()

	c.ShowSheet(KeyBookmarks, sheet.Middle)
	settle(t, c)
	c.SelectOverlay(KeyPolls, ReasonNavigate)

	if *dismissals[KeyBookmarks] != 1 {
		t.Errorf("bookmarks dismissor calls = %d, want 1", *dismissals[KeyBookmarks])
	}
	if *dismissals[KeyPolls] != 0 {
		t.Errorf("polls dismissor calls = %d, want 0", *dismissals[KeyPolls])
	}
	// Overlays already hidden are not re-dismissed.
	if *dismissals[KeyProfile] != 0 {
		t.Errorf("profile dismissor calls = %d, want 0", *dismissals[KeyProfile])
	}
}

func TestActiveKey(t *testing.T) {
	c, _, _ := newTestCoordinator()

	if _, ok := c.ActiveKey(); ok {
		t.Error("no overlay should be active initially")
	}

	c.ShowSheet(KeyResults, sheet.Middle)
	key, ok := c.ActiveKey()
	if !ok || key != KeyResults {
		t.Errorf("ActiveKey = %v/%v, want results/true", key, ok)
	}
}

func TestFreezeOnBusyEdge(t *testing.T) {
	c, rec, _ := newTestCoordinator()

	c.ShowSheet(KeyResults, sheet.Middle)
	if rec.freezes != 1 {
		t.Fatalf("freezes = %d, want 1 after animation starts", rec.freezes)
	}
	if rec.resumes != 0 {
		t.Fatalf("resumes = %d, want 0 while settling", rec.resumes)
	}

	settle(t, c)
	if rec.resumes != 1 {
		t.Errorf("resumes = %d, want 1 after settle", rec.resumes)
	}
	// The freeze edge fires once, not per frame.
	if rec.freezes != 1 {
		t.Errorf("freezes = %d, want 1", rec.freezes)
	}
}

func TestBeginDragCancelsDeferredCameraWork(t *testing.T) {
	c, rec, _ := newTestCoordinator()

	c.ShowSheet(KeyResults, sheet.Middle)
	settle(t, c)

	c.BeginDrag(KeyResults)
	if rec.cancelled != 1 {
		t.Errorf("cancelled = %d, want 1", rec.cancelled)
	}
	if !c.Flags().AnyDragging {
		t.Error("AnyDragging should be set during a gesture")
	}

	c.Drag(KeyResults, 60)
	if got := c.EndDrag(KeyResults, 60, 0); got != sheet.Collapsed {
		t.Errorf("EndDrag = %v, want Collapsed", got)
	}
	settle(t, c)
	if c.Flags().Busy() {
		t.Error("flags should clear once the sheet settles")
	}
}

func TestFlagsAggregation(t *testing.T) {
	c, _, _ := newTestCoordinator()

	f := c.Flags()
	if f.AnyDragging || f.Settling || f.ResultsScrolling {
		t.Errorf("initial flags = %+v, want all false", f)
	}

	c.SetResultsScrolling(true)
	if !c.Flags().ResultsScrolling {
		t.Error("ResultsScrolling should be set")
	}
	if c.Flags().Busy() {
		t.Error("list scrolling alone must not freeze the map")
	}

	c.ShowSheet(KeyProfile, sheet.Expanded)
	if !c.Flags().Settling {
		t.Error("Settling should aggregate from any sheet")
	}
}

func TestTeardownResetsEverything(t *testing.T) {
	c, rec, _ := newTestCoordinator()

	c.ShowSheet(KeyResults, sheet.Middle)
	c.SetResultsScrolling(true)
	c.Teardown()

	f := c.Flags()
	if f.AnyDragging || f.Settling || f.ResultsScrolling {
		t.Errorf("flags after teardown = %+v, want all false", f)
	}
	if c.AnyActive() {
		t.Error("no sheet should be active after teardown")
	}
	for _, key := range Keys() {
		if got := c.Sheet(key).Tier(); got != sheet.Hidden {
			t.Errorf("%s tier = %v, want Hidden", key, got)
		}
	}
	if rec.resumes != 1 {
		t.Errorf("resumes = %d, want 1 (map released on teardown)", rec.resumes)
	}
}

func TestShowSheetUnknownKeyIsNoop(t *testing.T) {
	rec := &freezeRecorder{}
	c := New(rec)
	c.ShowSheet(Key("bogus"), sheet.Middle)
	if rec.freezes != 0 {
		t.Error("unknown key must not touch the map")
	}
}
