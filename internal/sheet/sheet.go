package sheet

import "mapdeck/internal/geom"

// Sheet is the runtime state machine for one draggable bottom sheet.
// The committed tier only changes through the animator (gesture release
// or programmatic request) except for the synchronous teardown path.
//
// Transition sources race in a fixed priority order: an in-progress
// gesture always wins, a programmatic request issued while the sheet is
// settling is deferred as the pending tier rather than interrupting the
// spring, and teardown cancels everything unconditionally.
type Sheet struct {
	anim     animator
	resolver Resolver

	tier     Tier
	dragging bool
	session  Session
	pending  *Tier
}

// SettleEvent reports that a settle animation arrived at its target.
type SettleEvent struct {
	// Tier is the tier the sheet just committed.
	Tier Tier

	// FullyHidden is set when the sheet came to rest at Hidden with no
	// follow-up animation queued, so the caller can unmount its content.
	FullyHidden bool

	// Generation identifies the animation request this settle belongs
	// to. Consumers holding deferred work compare it against the
	// sheet's current generation and discard stale effects.
	Generation uint64
}

// New creates a sheet resting at Hidden.
func New(snap geom.Snap, th Thresholds, spring SpringConfig) *Sheet {
	return &Sheet{
		anim:     newAnimator(snap, spring),
		resolver: NewResolver(snap, th),
		tier:     Hidden,
	}
}

// Tier returns the committed tier. During a settle this is still the
// previous tier; it changes when the spring arrives.
func (s *Sheet) Tier() Tier { return s.tier }

// Offset returns the live offset in points from the top of the screen.
func (s *Sheet) Offset() float64 { return s.anim.offset }

// Dragging reports whether a gesture session is active.
func (s *Sheet) Dragging() bool { return s.dragging }

// Settling reports whether the sheet is animating toward a committed
// tier it has not yet reached.
func (s *Sheet) Settling() bool { return s.anim.settling }

// Active reports whether the sheet is being dragged or settling.
func (s *Sheet) Active() bool { return s.dragging || s.anim.settling }

// Hidden reports whether the sheet is committed hidden and at rest.
func (s *Sheet) Hidden() bool { return s.tier == Hidden && !s.Active() }

// Generation returns the current animation generation. It advances on
// every new target and every cancellation.
func (s *Sheet) Generation() uint64 { return s.anim.generation }

// TargetTier returns where the sheet is headed: the animation target
// while settling, the committed tier otherwise.
func (s *Sheet) TargetTier() Tier {
	if s.anim.settling {
		return s.anim.targetTier
	}
	return s.tier
}

// SetGeometry re-anchors the sheet after the snap positions change. An
// in-flight animation retargets to the tier's new snap point; a sheet
// at rest snaps its offset synchronously.
func (s *Sheet) SetGeometry(snap geom.Snap) {
	s.anim.setSnap(snap)
	s.resolver.SetSnap(snap)
	if !s.dragging && !s.anim.settling {
		s.anim.setOffset(snap.At(int(s.tier)))
	}
}

// BeginDrag starts a gesture session. If a settle animation is running,
// the session captures the animating offset, not the stale target, so
// the sheet stays under the finger with no jump. A gesture supersedes
// any pending programmatic request.
func (s *Sheet) BeginDrag() {
	s.session = s.resolver.Start(s.anim.offset, s.tier)
	s.anim.cancel()
	s.pending = nil
	s.dragging = true
}

// Drag tracks the finger 1:1 for the given net translation since the
// gesture began. No-op outside a gesture session.
func (s *Sheet) Drag(translationY float64) {
	if !s.dragging {
		return
	}
	s.anim.setOffset(s.resolver.Move(s.session, translationY))
}

// EndDrag resolves the release into a target tier and starts the settle
// spring with the clamped release velocity. Returns the resolved tier.
func (s *Sheet) EndDrag(translationY, velocityY float64) Tier {
	if !s.dragging {
		return s.tier
	}
	s.dragging = false
	target, handoff := s.resolver.End(s.session, translationY, velocityY)
	s.session = Session{}
	s.anim.start(target, handoff)
	return target
}

// Request asks for a tier change on behalf of business logic (search
// submitted, overlay switched). Requests lose to an active gesture,
// defer behind an in-flight settle as the pending tier, and otherwise
// start the animation immediately. Deferred requests are never dropped,
// only delayed; a later request overwrites an earlier deferred one.
// Returns true when the animation started now.
func (s *Sheet) Request(tier Tier) bool {
	if s.dragging {
		return false
	}
	if s.anim.settling {
		t := tier
		s.pending = &t
		return false
	}
	if tier == s.tier {
		return false
	}
	s.anim.start(tier, 0)
	return true
}

// Teardown drops the sheet to Hidden synchronously, bypassing the
// animator. Used only when the whole screen is going away.
func (s *Sheet) Teardown() {
	s.dragging = false
	s.session = Session{}
	s.pending = nil
	s.tier = Hidden
	s.anim.setOffset(s.anim.snap.Hidden)
}

// Step advances the settle animation by one frame. On the frame the
// spring arrives it commits the tier, consumes a pending request by
// immediately starting the next animation, and reports the settle.
func (s *Sheet) Step() (SettleEvent, bool) {
	if !s.anim.step() {
		return SettleEvent{}, false
	}

	committed := s.anim.targetTier
	ev := SettleEvent{Tier: committed, Generation: s.anim.generation}
	s.tier = committed

	if s.pending != nil {
		next := *s.pending
		s.pending = nil
		if next != committed {
			s.anim.start(next, 0)
			return ev, true
		}
	}

	ev.FullyHidden = committed == Hidden
	return ev, true
}
