package sheet

import (
	"github.com/charmbracelet/harmonica"

	"mapdeck/internal/geom"
)

// SpringConfig tunes the settle animation. Frequency is the spring's
// angular frequency; Damping 1.0 is critically damped, slightly below
// gives a touch of overshoot.
type SpringConfig struct {
	FPS       int
	Frequency float64
	Damping   float64
}

// DefaultSpring returns a critically damped spring stepped at 60fps.
func DefaultSpring() SpringConfig {
	return SpringConfig{FPS: 60, Frequency: 7.0, Damping: 1.0}
}

// Settle detection epsilons: the spring is considered arrived once the
// offset is within restDistance of the target and the velocity has
// decayed below restVelocity.
const (
	restDistance = 0.5
	restVelocity = 4.0
)

// animator drives one sheet's offset toward a target tier with spring
// physics. It is stepped by the owner once per frame; it never schedules
// work of its own.
type animator struct {
	spring harmonica.Spring
	snap   geom.Snap

	offset   float64
	velocity float64

	target     float64
	targetTier Tier
	settling   bool

	// generation increments on every new animation target and on every
	// cancellation. Completion effects are tagged with the generation
	// they were issued under so a stale settle can be discarded.
	generation uint64
}

func newAnimator(snap geom.Snap, cfg SpringConfig) animator {
	return animator{
		spring: harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
		snap:   snap,
		offset: snap.Hidden,
	}
}

// start begins a spring toward the tier's snap point from the current
// live offset. Starting while already settling keeps the live offset as
// the new start point and supersedes the previous completion.
func (a *animator) start(tier Tier, initialVelocity float64) uint64 {
	a.generation++
	a.target = a.snap.At(int(tier))
	a.targetTier = tier
	a.velocity = finite(initialVelocity)
	a.settling = true
	return a.generation
}

// cancel stops any in-flight animation, leaving the offset where it is.
func (a *animator) cancel() {
	if a.settling {
		a.generation++
		a.settling = false
		a.velocity = 0
	}
}

// setOffset writes the offset directly, used for 1:1 finger tracking
// during a drag and for the synchronous teardown path. Any in-flight
// animation is cancelled first.
func (a *animator) setOffset(offset float64) {
	a.cancel()
	a.offset = finite(offset)
}

// step advances the spring by one frame. It returns true exactly once
// per animation, on the frame the spring settles.
func (a *animator) step() bool {
	if !a.settling {
		return false
	}
	a.offset, a.velocity = a.spring.Update(a.offset, a.velocity, a.target)

	dist := a.offset - a.target
	if dist < 0 {
		dist = -dist
	}
	vel := a.velocity
	if vel < 0 {
		vel = -vel
	}
	if dist < restDistance && vel < restVelocity {
		a.offset = a.target
		a.velocity = 0
		a.settling = false
		return true
	}
	return false
}

// setSnap re-anchors the animator after a geometry change. If an
// animation is in flight the target moves to the tier's new snap point.
func (a *animator) setSnap(snap geom.Snap) {
	a.snap = snap
	if a.settling {
		a.target = snap.At(int(a.targetTier))
	}
}
