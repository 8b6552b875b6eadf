// Package gesture turns polled pointer state into viewer events for
// front ends that only report which buttons are down each frame.
package gesture

import (
	"math"
	"time"

	fractal "github.com/marben/fractal_view"
)

const (
	// DoubleClickInterval is the longest gap between two presses of the
	// same button that still counts as a double click.
	DoubleClickInterval = 300 * time.Millisecond

	// ClickSlop is how far, in points, the pointer may travel between
	// press and release before the press becomes a drag.
	ClickSlop = 3.0
)

// Pointer is one poll of the pointer. Pos is in points.
type Pointer struct {
	Pos         fractal.ScreenPoint
	Left, Right bool
}

// Recognizer keeps the state between polls. The zero value is ready to use.
type Recognizer struct {
	prev      Pointer
	pressAt   fractal.ScreenPoint
	dragging  bool
	doubled   bool
	lastLeft  time.Time
	lastRight time.Time
}

// Update consumes one poll and returns the events it completes, in order.
func (r *Recognizer) Update(p Pointer, now time.Time) []fractal.Event {
	var events []fractal.Event

	switch {
	case p.Left && !r.prev.Left:
		r.pressAt = p.Pos
		r.dragging = false
		r.doubled = false
		if !r.lastLeft.IsZero() && now.Sub(r.lastLeft) < DoubleClickInterval {
			r.doubled = true
			r.lastLeft = time.Time{}
			events = append(events, fractal.PrimaryDoubleClick{})
		} else {
			r.lastLeft = now
		}

	case p.Left && r.prev.Left:
		if !r.dragging && distance(p.Pos, r.pressAt) > ClickSlop {
			r.dragging = true
			// A press that became a drag does not start a double click.
			r.lastLeft = time.Time{}
			// The movement inside the slop is not lost.
			events = append(events, fractal.Drag{Delta: p.Pos.Sub(r.pressAt)})
		} else if r.dragging {
			if d := p.Pos.Sub(r.prev.Pos); d != (fractal.ScreenPoint{}) {
				events = append(events, fractal.Drag{Delta: d})
			}
		}

	case !p.Left && r.prev.Left:
		if !r.dragging && !r.doubled {
			events = append(events, fractal.PrimaryClick{At: p.Pos})
		}
		r.dragging = false
	}

	if p.Right && !r.prev.Right {
		if !r.lastRight.IsZero() && now.Sub(r.lastRight) < DoubleClickInterval {
			r.lastRight = time.Time{}
			events = append(events, fractal.SecondaryDoubleClick{})
		} else {
			r.lastRight = now
		}
	}

	r.prev = p
	return events
}

func distance(a, b fractal.ScreenPoint) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
