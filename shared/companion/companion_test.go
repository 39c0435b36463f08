package companion

import (
	"math"
	"testing"
	"time"
)

func TestNewSpawnsBottomLeft(t *testing.T) {
	pet, _ := newTestPet()
	want := Vec{X: 80, Y: 660}
	if pet.Position != want || pet.Target != want {
		t.Fatalf("position %+v target %+v, want %+v", pet.Position, pet.Target, want)
	}
	if pet.State() != Idle || pet.Mode != Following || pet.Facing != Right {
		t.Fatalf("unexpected initial state %v/%v/%v", pet.State(), pet.Mode, pet.Facing)
	}
}

func TestPointerScenarioRuns(t *testing.T) {
	pet, clock := newTestPet()

	out := pet.Handle(PointerMove{At: Vec{X: 500, Y: 300}}, clock.Now(), hubViewport, station)
	if out != OutcomeRetarget {
		t.Fatalf("outcome = %v, want retarget", out)
	}
	if want := (Vec{X: 452, Y: 280}); pet.Target != want {
		t.Fatalf("target = %+v, want %+v", pet.Target, want)
	}

	m := pet.Tick(clock.Advance(16 * time.Millisecond))
	if m.Distance <= 175 {
		t.Fatalf("distance %v should be far beyond the cap", m.Distance)
	}
	if m.Speed != 14 {
		t.Fatalf("speed = %v, want 14", m.Speed)
	}
	if pet.State() != Running {
		t.Fatalf("state = %v, want running", pet.State())
	}
	if pet.Facing != Right {
		t.Fatalf("facing = %v, want right", pet.Facing)
	}
}

func TestIdleThenSleeping(t *testing.T) {
	pet, clock := newTestPet()

	for elapsed := 100 * time.Millisecond; elapsed <= 6000*time.Millisecond; elapsed += 100 * time.Millisecond {
		pet.Tick(clock.Advance(100 * time.Millisecond))
		if pet.State() != Idle {
			t.Fatalf("at %v state = %v, want idle", elapsed, pet.State())
		}
	}

	pet.Tick(clock.Advance(100 * time.Millisecond))
	if pet.State() != Sleeping {
		t.Fatalf("at 6100ms state = %v, want sleeping", pet.State())
	}
}

func TestNewTargetWakesSleepingPet(t *testing.T) {
	pet, clock := newTestPet()
	pet.Tick(clock.Advance(7 * time.Second))
	if pet.State() != Sleeping {
		t.Fatalf("state = %v, want sleeping", pet.State())
	}

	pet.Handle(PointerMove{At: Vec{X: 900, Y: 400}}, clock.Now(), hubViewport, station)
	pet.Tick(clock.Advance(16 * time.Millisecond))
	if pet.State() == Sleeping {
		t.Fatal("still sleeping after a new target")
	}
}

func TestPointerIgnoredWhileAnchored(t *testing.T) {
	pet, clock := newTestPet()
	pet.Handle(Click{At: Vec{X: 980, Y: 732}}, clock.Now(), hubViewport, station)
	target := pet.Target
	motion := pet.LastMotion

	clock.Advance(time.Second)
	out := pet.Handle(PointerMove{At: Vec{X: 10, Y: 10}}, clock.Now(), hubViewport, station)
	if out != OutcomeNone {
		t.Fatalf("outcome = %v, want none", out)
	}
	if pet.Target != target || !pet.LastMotion.Equal(motion) {
		t.Fatal("pointer motion changed an anchored pet")
	}
}

func TestPlayLastsFromLastClick(t *testing.T) {
	pet, clock := newTestPet()
	onPet := pet.Bounds().Center()

	if out := pet.Handle(Click{At: onPet}, clock.Now(), hubViewport, station); out != OutcomePlay {
		t.Fatalf("outcome = %v, want play", out)
	}

	pet.Tick(clock.Advance(2000 * time.Millisecond))
	if pet.State() != Playing {
		t.Fatalf("state = %v, want playing", pet.State())
	}
	pet.Handle(Click{At: pet.Bounds().Center()}, clock.Now(), hubViewport, station)

	pet.Tick(clock.Advance(2999 * time.Millisecond))
	if pet.State() != Playing {
		t.Fatalf("second click did not extend play, state = %v", pet.State())
	}
	pet.Tick(clock.Advance(time.Millisecond))
	if pet.State() != Idle {
		t.Fatalf("state = %v after play window, want idle", pet.State())
	}
}

func TestRestAnchorToggles(t *testing.T) {
	pet, clock := newTestPet()
	rest := station[RestAnchor]

	out := pet.Handle(Click{At: rest.Center()}, clock.Now(), hubViewport, station)
	if out != OutcomeAnchor {
		t.Fatalf("outcome = %v, want anchor", out)
	}
	if pet.Mode != Anchored || pet.AnchorID != RestAnchor {
		t.Fatalf("mode = %v anchor = %q", pet.Mode, pet.AnchorID)
	}
	if pet.State() != Idle {
		t.Fatalf("state = %v, want idle", pet.State())
	}
	if want := (Vec{X: 932, Y: 712}); pet.Target != want {
		t.Fatalf("target = %+v, want %+v", pet.Target, want)
	}

	clock.Advance(500 * time.Millisecond)
	at := Vec{X: 950, Y: 710}
	out = pet.Handle(Click{At: at}, clock.Now(), hubViewport, station)
	if out != OutcomeFollow {
		t.Fatalf("outcome = %v, want follow", out)
	}
	if pet.Mode != Following || pet.AnchorID != "" {
		t.Fatalf("mode = %v anchor = %q", pet.Mode, pet.AnchorID)
	}
	if want := (Vec{X: 902, Y: 690}); pet.Target != want {
		t.Fatalf("target = %+v, want %+v", pet.Target, want)
	}
	if !pet.LastMotion.Equal(clock.Now()) {
		t.Fatal("last motion not reset on leaving the anchor")
	}
}

func TestFeedIsStickyUntilModeFlips(t *testing.T) {
	pet, clock := newTestPet()

	out := pet.Handle(Click{At: station[FeedAnchor].Center()}, clock.Now(), hubViewport, station)
	if out != OutcomeFeed {
		t.Fatalf("outcome = %v, want feed", out)
	}
	if pet.Mode != Anchored || pet.State() != Eating {
		t.Fatalf("mode = %v state = %v", pet.Mode, pet.State())
	}

	for i := 0; i < 120; i++ {
		pet.Tick(clock.Advance(time.Second))
		if pet.State() != Eating {
			t.Fatalf("eating expired after %ds: %v", i+1, pet.State())
		}
	}

	// The pet has arrived at the bowl, far from the house button.
	out = pet.Handle(Click{At: Vec{X: 905, Y: 760}}, clock.Now(), hubViewport, station)
	if out != OutcomeFollow {
		t.Fatalf("outcome = %v, want follow", out)
	}
	pet.Tick(clock.Advance(16 * time.Millisecond))
	if pet.State() == Eating {
		t.Fatal("still eating after leaving anchored mode")
	}
}

func TestPetClickSupersedesEating(t *testing.T) {
	pet, clock := newTestPet()
	pet.Handle(Click{At: station[FeedAnchor].Center()}, clock.Now(), hubViewport, station)

	pet.Handle(Click{At: pet.Bounds().Center()}, clock.Now(), hubViewport, station)
	if pet.State() != Playing {
		t.Fatalf("state = %v, want playing", pet.State())
	}
	pet.Tick(clock.Advance(3 * time.Second))
	if pet.State() == Playing || pet.State() == Eating {
		t.Fatalf("state = %v, want a derived state", pet.State())
	}
}

func TestMissingAnchorsMiss(t *testing.T) {
	pet, clock := newTestPet()
	before := *pet

	out := pet.Handle(Click{At: Vec{X: 980, Y: 732}}, clock.Now(), hubViewport, StaticAnchors{})
	if out != OutcomeNone {
		t.Fatalf("outcome = %v, want none", out)
	}
	out = pet.Handle(Click{At: Vec{X: 980, Y: 732}}, clock.Now(), hubViewport, nil)
	if out != OutcomeNone {
		t.Fatalf("outcome with nil anchors = %v, want none", out)
	}
	if pet.Mode != before.Mode || pet.Behavior != before.Behavior || pet.Target != before.Target {
		t.Fatal("a miss changed state")
	}
}

func TestClassifyPriority(t *testing.T) {
	overlap := StaticAnchors{
		RestAnchor: {X: 0, Y: 0, W: 500, H: 500},
		FeedAnchor: {X: 0, Y: 0, W: 1000, H: 1000},
	}
	pet := Rect{X: 100, Y: 100, W: 120, H: 80}
	tests := []struct {
		at   Vec
		want Hit
	}{
		{Vec{X: 150, Y: 150}, HitPet},
		{Vec{X: 100, Y: 100}, HitPet},
		{Vec{X: 220, Y: 180}, HitPet},
		{Vec{X: 400, Y: 400}, HitRest},
		{Vec{X: 800, Y: 800}, HitFeed},
		{Vec{X: 1200, Y: 10}, HitMiss},
	}
	for _, tt := range tests {
		if got := Classify(tt.at, pet, overlap); got != tt.want {
			t.Errorf("Classify(%+v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestTouchUsesFirstPoint(t *testing.T) {
	pet, clock := newTestPet()

	if out := pet.Handle(TouchMove{}, clock.Now(), hubViewport, station); out != OutcomeNone {
		t.Fatalf("empty touch outcome = %v", out)
	}

	touches := []Vec{{X: 600, Y: 400}, {X: 100, Y: 100}}
	pet.Handle(TouchMove{Touches: touches}, clock.Now(), hubViewport, station)
	if want := (Vec{X: 552, Y: 380}); pet.Target != want {
		t.Fatalf("target = %+v, want %+v", pet.Target, want)
	}

	motion := pet.LastMotion
	clock.Advance(time.Second)
	if out := pet.Handle(TouchEnd{}, clock.Now(), hubViewport, station); out != OutcomeNone {
		t.Fatalf("touch end outcome = %v, want none", out)
	}
	if !pet.LastMotion.Equal(motion) {
		t.Fatal("touch end counted as motion")
	}
	if pet.State() == Playing {
		t.Fatal("touch end was treated as a click")
	}
}

func TestTickIsFrameRateAdaptive(t *testing.T) {
	run := func(hz int) Vec {
		clock := NewManualClock(epoch)
		pet := New(hubViewport, clock.Now(), DefaultTuning())
		pet.Handle(PointerMove{At: Vec{X: 5000, Y: 680}}, clock.Now(), hubViewport, nil)
		pet.Tick(clock.Now())

		frame := time.Second / time.Duration(hz)
		for i := 0; i < hz; i++ {
			pet.Tick(clock.Advance(frame))
		}
		return pet.Position
	}

	at60 := run(60)
	at30 := run(30)
	if math.Abs(at60.X-at30.X) > 0.01 || math.Abs(at60.Y-at30.Y) > 0.01 {
		t.Fatalf("positions diverge: 60Hz %+v, 30Hz %+v", at60, at30)
	}
	if want := 80 + 14*61.0; math.Abs(at60.X-want) > 0.01 {
		t.Fatalf("x = %v, want %v", at60.X, want)
	}
}
