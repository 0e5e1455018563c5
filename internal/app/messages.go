package app

import (
	"time"

	"mapdeck/internal/places"
)

// frameMsg drives one animation frame while any sheet is in motion.
type frameMsg time.Time

// searchResultMsg delivers an async search. seq is the request
// generation; results from a superseded search are discarded.
type searchResultMsg struct {
	seq     int
	query   string
	matches []places.Match
	err     error
}

// scrollIdleMsg clears the results-scrolling flag once wheel input has
// been quiet for the debounce window. gen guards against a newer
// scroll restarting the timer.
type scrollIdleMsg struct {
	gen int
}
