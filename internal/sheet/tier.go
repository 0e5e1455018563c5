// Package sheet implements the draggable bottom sheet runtime: tier
// state, gesture resolution, and spring-driven settling. It is pure
// state and math; rendering and input decoding live with the caller.
package sheet

// Tier is one of the four canonical sheet positions. The order matches
// the vertical snap order: Expanded sits highest on screen, Hidden is
// fully off screen. Tier is the authoritative logical position; the
// animated offset is a derived, possibly in-flight value converging
// toward the tier's snap point.
type Tier int

const (
	Expanded Tier = iota
	Middle
	Collapsed
	Hidden
)

func (t Tier) String() string {
	switch t {
	case Expanded:
		return "expanded"
	case Middle:
		return "middle"
	case Collapsed:
		return "collapsed"
	case Hidden:
		return "hidden"
	}
	return "unknown"
}

// clampTier limits a tier index to the valid range.
func clampTier(i int) Tier {
	if i < int(Expanded) {
		return Expanded
	}
	if i > int(Hidden) {
		return Hidden
	}
	return Tier(i)
}

// Step returns the tier one position in the given direction: positive
// means downward (toward Hidden), negative upward. Steps past either
// end stay at the end.
func (t Tier) Step(direction int) Tier {
	switch {
	case direction > 0:
		return clampTier(int(t) + 1)
	case direction < 0:
		return clampTier(int(t) - 1)
	}
	return t
}
