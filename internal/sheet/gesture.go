package sheet

import (
	"math"

	"mapdeck/internal/geom"
)

// Thresholds tunes how a released drag is converted into a target tier.
// Velocities are in points per second, distances in points.
type Thresholds struct {
	// FlingVelocity is the release speed above which the gesture is
	// treated as a flick and distance is ignored.
	FlingVelocity float64

	// SmallMovement is the minimum net translation for the single-step
	// rule to apply.
	SmallMovement float64

	// ProjectionDamping scales release velocity when projecting the
	// final resting offset for nearest-tier resolution.
	ProjectionDamping float64

	// MaxSpringVelocity caps the velocity handed to the spring as its
	// initial condition, so noisy input cannot blow up the overshoot.
	MaxSpringVelocity float64
}

// DefaultThresholds returns the stock gesture tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FlingVelocity:     1200,
		SmallMovement:     40,
		ProjectionDamping: 0.05,
		MaxSpringVelocity: 2500,
	}
}

// Session captures the state of one continuous drag. It is created on
// gesture start and discarded on gesture end, never persisted.
type Session struct {
	// StartOffset is the sheet's live offset when the gesture began. If
	// a settle animation was running this is the animating value, not
	// the stale target, so the sheet does not visibly jump.
	StartOffset float64

	// StartTier is the committed tier when the gesture began. The
	// single-step rule steps from here, not from the release position.
	StartTier Tier
}

// Resolver converts one continuous drag into exactly one committed tier
// change. It is stateless apart from its configuration; all per-gesture
// state lives in the Session the caller threads through.
type Resolver struct {
	snap geom.Snap
	th   Thresholds
}

// NewResolver creates a resolver over the given snap positions.
func NewResolver(snap geom.Snap, th Thresholds) Resolver {
	return Resolver{snap: snap, th: th}
}

// SetSnap replaces the snap positions after a geometry change.
func (r *Resolver) SetSnap(snap geom.Snap) {
	r.snap = snap
}

// Start captures a session from the sheet's live offset and committed
// tier.
func (r Resolver) Start(liveOffset float64, tier Tier) Session {
	return Session{StartOffset: finite(liveOffset), StartTier: tier}
}

// Move returns the offset the sheet should track for the given net
// translation: 1:1 finger tracking clamped to the draggable range. It
// is side-effect free and idempotent for a given input.
func (r Resolver) Move(s Session, translationY float64) float64 {
	return r.snap.Clamp(s.StartOffset + finite(translationY))
}

// End resolves the release of a drag into a target tier and the initial
// velocity to hand to the spring. The decision order, first match wins:
//
//  1. fast downward flick resolves to Hidden, except a small flick from
//     Expanded steps down a single tier
//  2. fast upward flick resolves to Expanded
//  3. a deliberate movement past the small-movement threshold moves
//     exactly one tier in the drag direction from the start tier, no
//     matter how far past a further tier the release point lies
//  4. otherwise the release velocity is projected onto the offset and
//     the numerically nearest tier wins
func (r Resolver) End(s Session, translationY, velocityY float64) (Tier, float64) {
	ty := finite(translationY)
	vy := finite(velocityY)

	handoff := vy
	if handoff > r.th.MaxSpringVelocity {
		handoff = r.th.MaxSpringVelocity
	} else if handoff < -r.th.MaxSpringVelocity {
		handoff = -r.th.MaxSpringVelocity
	}

	switch {
	case vy > r.th.FlingVelocity:
		if s.StartTier == Expanded && math.Abs(ty) <= r.th.SmallMovement {
			return s.StartTier.Step(1), handoff
		}
		return Hidden, handoff

	case vy < -r.th.FlingVelocity:
		return Expanded, handoff

	case math.Abs(ty) > r.th.SmallMovement:
		if ty > 0 {
			return s.StartTier.Step(1), handoff
		}
		return s.StartTier.Step(-1), handoff
	}

	projected := r.Move(s, ty) + vy*r.th.ProjectionDamping
	return Tier(r.snap.Nearest(projected)), handoff
}

// finite maps NaN and infinities to zero. A non-finite value written
// into the offset cell would freeze the sheet off screen for good.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
