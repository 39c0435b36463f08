// Package pointer turns raw per-frame mouse and touch readings into
// companion events. It holds no reference to a windowing library, so both
// frontends feed it and tests drive it directly.
package pointer

import (
	"time"

	"github.com/automoto/pethub/shared/companion"
)

// ID identifies one finger for as long as it is down.
type ID int

// Touch is a finger and where it is this frame.
type Touch struct {
	ID ID
	At companion.Vec
}

// Frame is one frame of raw input.
type Frame struct {
	Cursor   companion.Vec
	MouseUp  bool    // left button released this frame
	Pressed  []Touch // fingers that went down this frame
	Held     []Touch // every finger currently down
	Released []ID    // fingers lifted this frame
}

type track struct {
	last   companion.Vec
	began  time.Time
	travel float64
}

// Tracker keeps the state that spans frames: the last cursor position and
// each finger from press to release.
type Tracker struct {
	TapDuration time.Duration
	TapTravel   float64

	// Blocked reports points covered by something drawn above the pet,
	// e.g. an open settings panel. Clicks there are dropped.
	Blocked func(companion.Vec) bool

	cursor    companion.Vec
	hasCursor bool
	touches   map[ID]*track
	order     []ID
}

func NewTracker(tapDuration time.Duration, tapTravel float64) *Tracker {
	return &Tracker{
		TapDuration: tapDuration,
		TapTravel:   tapTravel,
		touches:     make(map[ID]*track),
	}
}

// Cursor is the last mouse position seen, if any.
func (t *Tracker) Cursor() (companion.Vec, bool) {
	return t.cursor, t.hasCursor
}

// Update consumes one frame. Events come out in the order mouse move,
// mouse click, touch move, touch end, taps. active is true when the frame
// carried any user input, clicks on a blocked area included.
func (t *Tracker) Update(f Frame, now time.Time) (events []companion.Event, active bool) {
	switch {
	case !t.hasCursor:
		// The first reading is where the cursor happened to be, not a move.
		t.cursor, t.hasCursor = f.Cursor, true
	case f.Cursor != t.cursor:
		t.cursor = f.Cursor
		active = true
		events = append(events, companion.PointerMove{At: f.Cursor})
	}

	if f.MouseUp {
		active = true
		if !t.blocked(f.Cursor) {
			events = append(events, companion.Click{At: f.Cursor})
		}
	}

	if t.touches == nil {
		t.touches = make(map[ID]*track)
	}
	moved := false
	for _, p := range f.Pressed {
		if _, dup := t.touches[p.ID]; dup {
			continue
		}
		t.touches[p.ID] = &track{last: p.At, began: now}
		t.order = append(t.order, p.ID)
		moved = true
	}
	for _, h := range f.Held {
		tr, ok := t.touches[h.ID]
		if !ok || h.At == tr.last {
			continue
		}
		tr.travel += h.At.Sub(tr.last).Len()
		tr.last = h.At
		moved = true
	}
	if moved {
		active = true
		events = append(events, companion.TouchMove{Touches: t.Active()})
	}

	var taps []companion.Vec
	ended := false
	for _, id := range f.Released {
		tr, ok := t.touches[id]
		if !ok {
			continue
		}
		ended = true
		delete(t.touches, id)
		t.order = removeID(t.order, id)

		if now.Sub(tr.began) <= t.TapDuration && tr.travel <= t.TapTravel {
			taps = append(taps, tr.last)
		}
	}
	if !ended {
		return events, active
	}

	active = true
	events = append(events, companion.TouchEnd{Remaining: t.Active()})
	for _, at := range taps {
		if !t.blocked(at) {
			events = append(events, companion.Click{At: at})
		}
	}
	return events, active
}

// Active lists the fingers still down in press order, first touch first.
func (t *Tracker) Active() []companion.Vec {
	out := make([]companion.Vec, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.touches[id].last)
	}
	return out
}

func (t *Tracker) blocked(at companion.Vec) bool {
	return t.Blocked != nil && t.Blocked(at)
}

func removeID(order []ID, id ID) []ID {
	for i, o := range order {
		if o == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
