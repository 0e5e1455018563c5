// Package geom provides pure functions for computing the snap positions
// shared by all bottom sheets. All values are vertical offsets in points
// measured from the top of the screen, so smaller means higher.
package geom

import "math"

// Tunables controls how the four snap positions are derived from the
// screen dimensions. The zero value is not usable; start from Defaults.
type Tunables struct {
	// MiddleRatio positions the middle tier at this fraction of the
	// screen height. Typical values are 0.4 (results) to 0.5 (secondary
	// overlays).
	MiddleRatio float64

	// MinMiddleGap is the minimum separation between the expanded and
	// middle positions, so the two tiers stay visually distinct on
	// small screens.
	MinMiddleGap float64

	// CollapsedVisible is the height of the "peek" strip left on screen
	// when the sheet is collapsed.
	CollapsedVisible float64

	// HiddenOvershoot pushes the hidden position past the bottom edge so
	// shadow and blur bleed are fully off screen.
	HiddenOvershoot float64

	// MiddleClampGap is the minimum distance kept between the middle and
	// hidden positions. It prevents inverted ordering on tiny screens.
	MiddleClampGap float64
}

// Defaults returns the standard tunables used by the results sheet.
func Defaults() Tunables {
	return Tunables{
		MiddleRatio:      0.4,
		MinMiddleGap:     96,
		CollapsedVisible: 160,
		HiddenOvershoot:  80,
		MiddleClampGap:   120,
	}
}

// Opts contains the screen measurements needed to compute snap positions.
type Opts struct {
	ScreenHeight float64
	AnchorTop    float64 // bottom edge of the fixed search bar
	TopInset     float64 // safe-area inset at the top of the screen
	BottomNavTop float64 // top edge of the bottom nav bar, 0 if absent
	ExtraOffset  float64 // space consumed by a docked secondary sheet
}

// Snap holds the four canonical sheet offsets. The ordering invariant
// Expanded < Middle < Collapsed < Hidden always holds for values produced
// by Compute; a violation elsewhere is a configuration bug, not a runtime
// case callers should handle.
type Snap struct {
	Expanded  float64
	Middle    float64
	Collapsed float64
	Hidden    float64
}

// TierCount is the number of snap positions a sheet can rest at.
const TierCount = 4

// Compute derives the snap positions for one sheet.
func Compute(opts Opts, t Tunables) Snap {
	expanded := math.Max(opts.AnchorTop, opts.TopInset)
	if expanded < 0 {
		expanded = 0
	}

	middle := math.Max(expanded+t.MinMiddleGap, opts.ScreenHeight*t.MiddleRatio)

	collapsedBase := opts.ScreenHeight
	if opts.BottomNavTop > 0 {
		collapsedBase = opts.BottomNavTop
	}
	collapsed := collapsedBase - t.CollapsedVisible - opts.ExtraOffset

	hidden := opts.ScreenHeight + t.HiddenOvershoot

	// Clamp middle away from the bottom, then force strict ordering on
	// degenerate inputs. The descending clamp keeps Hidden authoritative
	// since it is the only position that must stay off screen.
	if middle > hidden-t.MiddleClampGap {
		middle = hidden - t.MiddleClampGap
	}
	if collapsed > hidden-1 {
		collapsed = hidden - 1
	}
	if middle > collapsed-1 {
		middle = collapsed - 1
	}
	if expanded > middle-1 {
		expanded = middle - 1
	}

	return Snap{
		Expanded:  expanded,
		Middle:    middle,
		Collapsed: collapsed,
		Hidden:    hidden,
	}
}

// At returns the offset for the tier index (0 = expanded .. 3 = hidden).
// Out-of-range indices are clamped.
func (s Snap) At(i int) float64 {
	switch {
	case i <= 0:
		return s.Expanded
	case i == 1:
		return s.Middle
	case i == 2:
		return s.Collapsed
	default:
		return s.Hidden
	}
}

// Clamp limits an offset to the draggable range [Expanded, Hidden].
func (s Snap) Clamp(offset float64) float64 {
	if offset < s.Expanded {
		return s.Expanded
	}
	if offset > s.Hidden {
		return s.Hidden
	}
	return offset
}

// Nearest returns the tier index whose offset is numerically closest to
// the given offset. Ties resolve to the higher (smaller-offset) tier.
func (s Snap) Nearest(offset float64) int {
	best := 0
	bestDist := math.Abs(offset - s.Expanded)
	for i := 1; i < TierCount; i++ {
		d := math.Abs(offset - s.At(i))
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Increasing reports whether the snap positions are strictly increasing.
// Compute always returns increasing snaps; this exists for callers that
// assemble a Snap by hand.
func (s Snap) Increasing() bool {
	return s.Expanded < s.Middle && s.Middle < s.Collapsed && s.Collapsed < s.Hidden
}
