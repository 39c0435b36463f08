package systems

import (
	"github.com/automoto/pethub/components"
	"github.com/automoto/pethub/shared/companion"
	"github.com/automoto/pethub/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnchors re-docks every station button after the viewport changed.
// Pets are not touched: an anchored pet keeps its frozen target until the
// next click, which is then classified against the new rectangles.
func UpdateAnchors(ecs *ecs.ECS) {
	vp, ok := components.Viewport.First(ecs.World)
	if !ok {
		return
	}
	view := components.Viewport.Get(vp)
	if !view.Changed {
		return
	}
	view.Changed = false

	tags.Anchor.Each(ecs.World, func(e *donburi.Entry) {
		anchor := components.Anchor.Get(e)
		components.Object.Get(e).MoveTo(anchor.Region.Resolve(view.Viewport))
	})
}

func markAnchorHover(ecs *ecs.ECS, cursor companion.Vec) {
	tags.Anchor.Each(ecs.World, func(e *donburi.Entry) {
		components.Anchor.Get(e).Hovered = components.Object.Get(e).Rect().Contains(cursor)
	})
}

// SetViewport records the drawable size reported by Layout.
func SetViewport(ecs *ecs.ECS, width, height int) {
	entry, ok := components.Viewport.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Viewport))
	}
	view := components.Viewport.Get(entry)
	next := companion.Viewport{Width: float64(width), Height: float64(height)}
	if view.Viewport != next {
		view.Viewport = next
		view.Changed = true
	}
}

// CurrentViewport is the last size recorded by SetViewport.
func CurrentViewport(ecs *ecs.ECS) companion.Viewport {
	if entry, ok := components.Viewport.First(ecs.World); ok {
		return components.Viewport.Get(entry).Viewport
	}
	return companion.Viewport{}
}
