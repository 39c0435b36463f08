package systems

import (
	"github.com/automoto/pethub/components"
	cfg "github.com/automoto/pethub/config"
	"github.com/automoto/pethub/shared/companion"
	"github.com/automoto/pethub/shared/pointer"
	"github.com/automoto/pethub/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for touch IDs to avoid allocations
var (
	touchIDs         []ebiten.TouchID
	pressedTouchIDs  []ebiten.TouchID
	releasedTouchIDs []ebiten.TouchID
)

// UpdatePointer reads this frame's mouse and touches and routes the
// resulting companion events to the pet. The tap rule and touch ordering
// live in pointer.Tracker.
func UpdatePointer(ecs *ecs.ECS) {
	p := getOrCreatePointer(ecs)
	now := Clock.Now()

	p.Tracker.Blocked = func(at companion.Vec) bool { return IsPanelUnder(ecs, at) }
	events, active := p.Tracker.Update(readPointerFrame(), now)
	if active {
		p.LastInput = now
	}
	for _, ev := range events {
		dispatch(ecs, ev)
	}

	updateCursorShape(ecs, p)
}

func readPointerFrame() pointer.Frame {
	x, y := ebiten.CursorPosition()
	f := pointer.Frame{
		Cursor:  companion.Vec{X: float64(x), Y: float64(y)},
		MouseUp: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}

	pressedTouchIDs = inpututil.AppendJustPressedTouchIDs(pressedTouchIDs[:0])
	for _, id := range pressedTouchIDs {
		f.Pressed = append(f.Pressed, pointer.Touch{ID: pointer.ID(id), At: touchPosition(id)})
	}
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		f.Held = append(f.Held, pointer.Touch{ID: pointer.ID(id), At: touchPosition(id)})
	}
	releasedTouchIDs = inpututil.AppendJustReleasedTouchIDs(releasedTouchIDs[:0])
	for _, id := range releasedTouchIDs {
		f.Released = append(f.Released, pointer.ID(id))
	}
	return f
}

func touchPosition(id ebiten.TouchID) companion.Vec {
	x, y := ebiten.TouchPosition(id)
	return companion.Vec{X: float64(x), Y: float64(y)}
}

// updateCursorShape shows a hand over anything clickable, found through the
// resolv space rather than by asking every entity.
func updateCursorShape(ecs *ecs.ECS, p *components.PointerData) {
	cursor, _ := p.Tracker.Cursor()
	over := false
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			if !obj.HasTags(tags.ResolvPet) && !obj.HasTags(tags.ResolvAnchor) {
				continue
			}
			r := companion.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
			if r.Contains(cursor) {
				over = true
				break
			}
		}
	}
	markAnchorHover(ecs, cursor)

	if over == p.OverTarget {
		return
	}
	p.OverTarget = over
	if over {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

func getOrCreatePointer(ecs *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pointer))
		components.Pointer.SetValue(entry, components.PointerData{
			Tracker:   pointer.NewTracker(cfg.Tap.MaxDuration, cfg.Tap.MaxTravel),
			LastInput: Clock.Now(),
		})
	}
	return components.Pointer.Get(entry)
}

// markInput records non-pointer activity so power saving wakes up.
func markInput(ecs *ecs.ECS) {
	getOrCreatePointer(ecs).LastInput = Clock.Now()
}
