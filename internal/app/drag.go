package app

import (
	"math"
	"time"

	"mapdeck/internal/overlay"
)

// velocitySmoothing is the EWMA weight given to the newest velocity
// sample during a drag.
const velocitySmoothing = 0.7

// grabRows is how many rows below a sheet's top edge accept a drag.
const grabRows = 2

// dragTracker converts mouse rows into translation and velocity in
// points for the sheet under the pointer.
type dragTracker struct {
	key      overlay.Key
	active   bool
	startRow int
	lastRow  int
	lastTime time.Time
	velocity float64
}

// begin starts tracking a press on the given sheet.
func (d *dragTracker) begin(key overlay.Key, row int, now time.Time) {
	d.key = key
	d.active = true
	d.startRow = row
	d.lastRow = row
	d.lastTime = now
	d.velocity = 0
}

// move records a motion sample and returns the translation since the
// press, in points. Positive is downward.
func (d *dragTracker) move(row int, now time.Time, pointsPerRow float64) float64 {
	dt := now.Sub(d.lastTime).Seconds()
	if dt > 0 {
		sample := float64(row-d.lastRow) * pointsPerRow / dt
		if d.velocity == 0 {
			d.velocity = sample
		} else {
			d.velocity = velocitySmoothing*sample + (1-velocitySmoothing)*d.velocity
		}
	}
	d.lastRow = row
	d.lastTime = now
	return float64(row-d.startRow) * pointsPerRow
}

// end stops tracking and returns the final translation and velocity in
// points. A long pause before release zeroes the velocity so a slow
// drop is not treated as a fling.
func (d *dragTracker) end(row int, now time.Time, pointsPerRow float64) (translation, velocity float64) {
	translation = float64(row-d.startRow) * pointsPerRow
	velocity = d.velocity
	if now.Sub(d.lastTime) > 120*time.Millisecond {
		velocity = 0
	}
	d.active = false
	d.velocity = 0
	return translation, velocity
}

// sheetAt hit-tests the pointer row against the grab regions of the
// visible sheets. The frontmost sheet wins; at rest there is at most
// one non-hidden sheet anyway.
func (m *Model) sheetAt(row int) (overlay.Key, bool) {
	var (
		found   overlay.Key
		ok      bool
		bestTop = math.MaxInt
	)
	for _, key := range overlay.Keys() {
		sh := m.Coord.Sheet(key)
		if sh.Hidden() {
			continue
		}
		top := m.sheetTopRow(key)
		if row >= top && row < top+grabRows && top <= bestTop {
			found, ok, bestTop = key, true, top
		}
	}
	return found, ok
}

// sheetTopRow maps a sheet's offset in points to its top terminal row.
func (m *Model) sheetTopRow(key overlay.Key) int {
	offset := m.Coord.Sheet(key).Offset()
	return int(math.Round(offset / m.pointsPerRow()))
}
