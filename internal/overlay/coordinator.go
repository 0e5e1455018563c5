// Package overlay enforces single-primary-overlay semantics across the
// bottom sheets and publishes the aggregated interaction flags the map
// freeze policy consumes.
package overlay

import (
	"github.com/sirupsen/logrus"

	"mapdeck/internal/sheet"
)

// Key identifies one of the mutually exclusive primary overlays.
type Key string

const (
	KeyResults   Key = "results"
	KeyPolls     Key = "polls"
	KeyBookmarks Key = "bookmarks"
	KeyProfile   Key = "profile"
	KeySaveList  Key = "savelist"
)

// Keys returns the overlay keys in registration-stable display order.
func Keys() []Key {
	return []Key{KeyResults, KeyPolls, KeyBookmarks, KeyProfile, KeySaveList}
}

// Reason describes why an overlay is being selected, which decides the
// tier it opens at.
type Reason int

const (
	// ReasonNavigate is an explicit navigation tap: open expanded.
	ReasonNavigate Reason = iota
	// ReasonDocked returns the overlay to its docked peek: open collapsed.
	ReasonDocked
)

// Dismissor is a closure an overlay registers so that switching
// overlays can ask it to abandon transient state (blur inputs, cancel
// in-flight loads) without the coordinator knowing its internals.
type Dismissor func()

// MapFreezer is the hook surface of the map/camera collaborator.
type MapFreezer interface {
	// FreezeUpdates suspends camera updates; ResumeUpdates applies the
	// latest deferred one.
	FreezeUpdates()
	ResumeUpdates()
	// CancelDeferred invalidates any scheduled camera sync so a stale
	// update cannot land mid-gesture.
	CancelDeferred()
}

// Flags is the aggregated interaction state. It has exactly one writer
// (the coordinator) and many readers; readers must not cache it across
// a frame boundary.
type Flags struct {
	AnyDragging      bool
	ResultsScrolling bool
	Settling         bool
}

// Busy reports whether sheet motion is in progress, the signal that
// gates deferred camera updates.
func (f Flags) Busy() bool {
	return f.AnyDragging || f.Settling
}

// Settle pairs a sheet settle event with the overlay it belongs to.
type Settle struct {
	Key Key
	sheet.SettleEvent
}

// Coordinator owns the registry of overlay sheets and their dismissors.
// All methods are called from the single UI update loop; the type does
// no locking of its own.
type Coordinator struct {
	order      []Key
	sheets     map[Key]*sheet.Sheet
	dismissors map[Key]Dismissor

	mapCtl           MapFreezer
	resultsScrolling bool
	frozen           bool

	// deferredDismiss marks overlays that were displaced while their
	// sheet was mid-gesture. The gesture wins the race, so the
	// dismissal is delayed until the gesture ends rather than dropped.
	deferredDismiss map[Key]bool

	log *logrus.Entry
}

// New creates an empty coordinator wired to the map collaborator.
func New(mapCtl MapFreezer) *Coordinator {
	return &Coordinator{
		sheets:          make(map[Key]*sheet.Sheet),
		dismissors:      make(map[Key]Dismissor),
		deferredDismiss: make(map[Key]bool),
		mapCtl:          mapCtl,
		log:             logrus.WithField("component", "overlay"),
	}
}

// Register adds an overlay's sheet and its dismissor. Registration
// order fixes iteration order.
func (c *Coordinator) Register(key Key, sh *sheet.Sheet, dismiss Dismissor) {
	if _, ok := c.sheets[key]; !ok {
		c.order = append(c.order, key)
	}
	c.sheets[key] = sh
	c.dismissors[key] = dismiss
}

// Sheet returns the registered sheet for a key, or nil.
func (c *Coordinator) Sheet(key Key) *sheet.Sheet {
	return c.sheets[key]
}

// SelectOverlay makes one overlay the primary: every other overlay is
// dismissed through its registered dismissor and its sheet is sent to
// Hidden, then the target opens at the tier the reason implies. During
// the transition both sheets may be briefly non-hidden; at committed
// rest only the target remains.
func (c *Coordinator) SelectOverlay(key Key, reason Reason) {
	target := sheet.Expanded
	if reason == ReasonDocked {
		target = sheet.Collapsed
	}
	c.showSheet(key, target)
}

// ShowSheet opens an overlay at an explicit tier, dismissing the
// others. Used by business logic such as a successful search.
func (c *Coordinator) ShowSheet(key Key, tier sheet.Tier) {
	c.showSheet(key, tier)
}

func (c *Coordinator) showSheet(key Key, tier sheet.Tier) {
	sh, ok := c.sheets[key]
	if !ok {
		return
	}
	for _, other := range c.order {
		if other == key {
			continue
		}
		c.dismiss(other)
	}
	delete(c.deferredDismiss, key)
	c.log.WithFields(logrus.Fields{"overlay": key, "tier": tier}).Debug("show sheet")
	sh.Request(tier)
	c.sync()
}

// DismissAll hides every overlay.
func (c *Coordinator) DismissAll() {
	for _, key := range c.order {
		c.dismiss(key)
	}
	c.sync()
}

func (c *Coordinator) dismiss(key Key) {
	sh := c.sheets[key]
	if sh == nil {
		return
	}
	if sh.TargetTier() == sheet.Hidden && !sh.Dragging() {
		return
	}
	if d := c.dismissors[key]; d != nil {
		d()
	}
	if sh.Dragging() {
		// The gesture wins the race; re-assert once it releases.
		c.deferredDismiss[key] = true
		return
	}
	sh.Request(sheet.Hidden)
}

// ActiveKey returns the overlay whose sheet is headed anywhere but
// Hidden. At committed rest at most one such overlay exists.
func (c *Coordinator) ActiveKey() (Key, bool) {
	for _, key := range c.order {
		if c.sheets[key].TargetTier() != sheet.Hidden || c.sheets[key].Dragging() {
			return key, true
		}
	}
	return "", false
}

// BeginDrag starts a gesture on one overlay's sheet. Any deferred map
// camera work is cancelled immediately so a stale camera update cannot
// land mid-gesture.
func (c *Coordinator) BeginDrag(key Key) {
	sh, ok := c.sheets[key]
	if !ok {
		return
	}
	c.mapCtl.CancelDeferred()
	sh.BeginDrag()
	c.sync()
}

// Drag forwards finger tracking to the dragged sheet.
func (c *Coordinator) Drag(key Key, translationY float64) {
	if sh, ok := c.sheets[key]; ok {
		sh.Drag(translationY)
	}
}

// EndDrag resolves and commits the gesture's target tier.
func (c *Coordinator) EndDrag(key Key, translationY, velocityY float64) sheet.Tier {
	sh, ok := c.sheets[key]
	if !ok {
		return sheet.Hidden
	}
	target := sh.EndDrag(translationY, velocityY)
	c.log.WithFields(logrus.Fields{"overlay": key, "tier": target}).Debug("gesture committed")
	if c.deferredDismiss[key] {
		delete(c.deferredDismiss, key)
		// Queues Hidden behind the settle the gesture just started; the
		// dismissor already ran when the overlay was displaced.
		sh.Request(sheet.Hidden)
		c.log.WithField("overlay", key).Debug("deferred dismissal re-asserted")
	}
	c.sync()
	return target
}

// SetResultsScrolling records whether the results list is scrolling.
// The flag never freezes the map on its own, but the aggregate is
// re-synced so every flag write stays edge-driven.
func (c *Coordinator) SetResultsScrolling(scrolling bool) {
	c.resultsScrolling = scrolling
	c.sync()
}

// Step advances every sheet's animation by one frame and returns the
// settles that occurred, in registration order.
func (c *Coordinator) Step() []Settle {
	var settles []Settle
	for _, key := range c.order {
		if ev, done := c.sheets[key].Step(); done {
			settles = append(settles, Settle{Key: key, SettleEvent: ev})
		}
	}
	c.sync()
	return settles
}

// AnyActive reports whether any sheet is dragging or settling, i.e.
// whether the frame tick must keep running.
func (c *Coordinator) AnyActive() bool {
	for _, key := range c.order {
		if c.sheets[key].Active() {
			return true
		}
	}
	return false
}

// Flags returns the aggregated interaction flags.
func (c *Coordinator) Flags() Flags {
	f := Flags{ResultsScrolling: c.resultsScrolling}
	for _, key := range c.order {
		sh := c.sheets[key]
		f.AnyDragging = f.AnyDragging || sh.Dragging()
		f.Settling = f.Settling || sh.Settling()
	}
	return f
}

// Teardown drops every sheet synchronously and resets the interaction
// flags, releasing the map if it was frozen. Used when the screen goes
// away.
func (c *Coordinator) Teardown() {
	for _, key := range c.order {
		c.sheets[key].Teardown()
	}
	clear(c.deferredDismiss)
	c.resultsScrolling = false
	c.sync()
}

// sync recomputes the busy aggregate and drives the map freeze hooks on
// its edge transitions.
func (c *Coordinator) sync() {
	busy := c.Flags().Busy()
	switch {
	case busy && !c.frozen:
		c.frozen = true
		c.mapCtl.FreezeUpdates()
	case !busy && c.frozen:
		c.frozen = false
		c.mapCtl.ResumeUpdates()
	}
}
