package pointer

import (
	"reflect"
	"testing"
	"time"

	"github.com/automoto/pethub/shared/companion"
)

var epoch = time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)

func v(x, y float64) companion.Vec { return companion.Vec{X: x, Y: y} }

// newHubTracker matches the hub's tap rule: 300 ms, 12 px.
func newHubTracker() *Tracker {
	tr := NewTracker(300*time.Millisecond, 12)
	tr.Update(Frame{}, epoch) // prime the cursor
	return tr
}

func TestTapBecomesClick(t *testing.T) {
	tests := []struct {
		name    string
		hold    time.Duration
		moveTo  companion.Vec
		wantTap bool
	}{
		{"quick still tap", 120 * time.Millisecond, v(100, 100), true},
		{"limit duration", 300 * time.Millisecond, v(100, 100), true},
		{"held too long", 301 * time.Millisecond, v(100, 100), false},
		{"small wobble", 100 * time.Millisecond, v(108, 100), true},
		{"limit travel", 100 * time.Millisecond, v(112, 100), true},
		{"dragged", 100 * time.Millisecond, v(113, 100), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newHubTracker()
			tr.Update(Frame{Pressed: []Touch{{ID: 1, At: v(100, 100)}}, Held: []Touch{{ID: 1, At: v(100, 100)}}}, epoch)
			tr.Update(Frame{Held: []Touch{{ID: 1, At: tt.moveTo}}}, epoch.Add(tt.hold/2))

			events, active := tr.Update(Frame{Released: []ID{1}}, epoch.Add(tt.hold))
			if !active {
				t.Fatalf("release not reported as input")
			}
			if len(events) == 0 {
				t.Fatalf("no events on release")
			}
			end, ok := events[0].(companion.TouchEnd)
			if !ok || len(end.Remaining) != 0 {
				t.Fatalf("first event = %#v, want empty TouchEnd", events[0])
			}

			clicks := events[1:]
			if tt.wantTap {
				want := []companion.Event{companion.Click{At: tt.moveTo}}
				if !reflect.DeepEqual(clicks, want) {
					t.Fatalf("after TouchEnd got %v, want %v", clicks, want)
				}
			} else if len(clicks) != 0 {
				t.Fatalf("unexpected click %v", clicks)
			}
		})
	}
}

func TestFirstTouchSurvivesOtherReleases(t *testing.T) {
	tr := newHubTracker()

	events, _ := tr.Update(Frame{
		Pressed: []Touch{{ID: 7, At: v(10, 10)}},
		Held:    []Touch{{ID: 7, At: v(10, 10)}},
	}, epoch)
	want := []companion.Event{companion.TouchMove{Touches: []companion.Vec{v(10, 10)}}}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("press A = %v, want %v", events, want)
	}

	events, _ = tr.Update(Frame{
		Pressed: []Touch{{ID: 3, At: v(50, 50)}},
		Held:    []Touch{{ID: 7, At: v(10, 10)}, {ID: 3, At: v(50, 50)}},
	}, epoch.Add(time.Second))
	want = []companion.Event{companion.TouchMove{Touches: []companion.Vec{v(10, 10), v(50, 50)}}}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("press B = %v, want A first: %v", events, want)
	}

	// Lifting the first finger hands the lead to the second one.
	events, _ = tr.Update(Frame{
		Held:     []Touch{{ID: 3, At: v(50, 50)}},
		Released: []ID{7},
	}, epoch.Add(2*time.Second))
	want = []companion.Event{companion.TouchEnd{Remaining: []companion.Vec{v(50, 50)}}}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("release A = %v, want %v", events, want)
	}
}

func TestTouchEndComesBeforeTap(t *testing.T) {
	tr := newHubTracker()
	tr.Update(Frame{
		Pressed: []Touch{{ID: 1, At: v(10, 10)}, {ID: 2, At: v(40, 40)}},
		Held:    []Touch{{ID: 1, At: v(10, 10)}, {ID: 2, At: v(40, 40)}},
	}, epoch)

	events, _ := tr.Update(Frame{
		Held:     []Touch{{ID: 2, At: v(40, 40)}},
		Released: []ID{1},
	}, epoch.Add(50*time.Millisecond))
	want := []companion.Event{
		companion.TouchEnd{Remaining: []companion.Vec{v(40, 40)}},
		companion.Click{At: v(10, 10)},
	}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
}

func TestUnknownReleaseIsIgnored(t *testing.T) {
	tr := newHubTracker()
	events, active := tr.Update(Frame{Released: []ID{9}}, epoch)
	if len(events) != 0 || active {
		t.Fatalf("release of untracked touch = %v, active %v", events, active)
	}
}

func TestMouse(t *testing.T) {
	tr := NewTracker(300*time.Millisecond, 12)

	events, active := tr.Update(Frame{Cursor: v(300, 200)}, epoch)
	if len(events) != 0 || active {
		t.Fatalf("first reading = %v, active %v; want nothing", events, active)
	}
	if at, ok := tr.Cursor(); !ok || at != v(300, 200) {
		t.Fatalf("cursor = %v, %v", at, ok)
	}

	events, _ = tr.Update(Frame{Cursor: v(300, 200)}, epoch)
	if len(events) != 0 {
		t.Fatalf("still cursor emitted %v", events)
	}

	events, _ = tr.Update(Frame{Cursor: v(320, 210), MouseUp: true}, epoch)
	want := []companion.Event{
		companion.PointerMove{At: v(320, 210)},
		companion.Click{At: v(320, 210)},
	}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("move and release = %v, want %v", events, want)
	}
}

func TestBlockedClicksAreDropped(t *testing.T) {
	panel := companion.Rect{X: 900, Y: 0, W: 380, H: 300}
	tr := newHubTracker()
	tr.Blocked = panel.Contains

	// Mouse click on the panel: the move still leads the pet, the click does not.
	events, active := tr.Update(Frame{Cursor: v(1000, 100), MouseUp: true}, epoch)
	want := []companion.Event{companion.PointerMove{At: v(1000, 100)}}
	if !reflect.DeepEqual(events, want) || !active {
		t.Fatalf("panel click = %v (active %v), want %v", events, active, want)
	}

	// Tap on the panel: the touch still ends, no click.
	tr.Update(Frame{Cursor: v(1000, 100), Pressed: []Touch{{ID: 1, At: v(950, 50)}}, Held: []Touch{{ID: 1, At: v(950, 50)}}}, epoch)
	events, _ = tr.Update(Frame{Cursor: v(1000, 100), Released: []ID{1}}, epoch.Add(50*time.Millisecond))
	if len(events) != 1 {
		t.Fatalf("panel tap = %v, want only TouchEnd", events)
	}
	if _, ok := events[0].(companion.TouchEnd); !ok {
		t.Fatalf("panel tap = %v, want TouchEnd", events)
	}

	// Outside the panel clicks go through.
	events, _ = tr.Update(Frame{Cursor: v(100, 500), MouseUp: true}, epoch)
	want = []companion.Event{
		companion.PointerMove{At: v(100, 500)},
		companion.Click{At: v(100, 500)},
	}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("hub click = %v, want %v", events, want)
	}
}
