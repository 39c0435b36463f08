package factory

import (
	"github.com/automoto/pethub/archetypes"
	"github.com/automoto/pethub/components"
	"github.com/automoto/pethub/shared/companion"
	"github.com/automoto/pethub/shared/layout"
	"github.com/automoto/pethub/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAnchor spawns a station button for region, placed for vp.
func CreateAnchor(ecs *ecs.ECS, region layout.Region, vp companion.Viewport) *donburi.Entry {
	anchor := archetypes.Anchor.Spawn(ecs)

	r := region.Resolve(vp)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvAnchor, region.ID)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = anchor // Link for O(1) lookup

	components.Object.SetValue(anchor, components.ObjectData{Object: obj})
	components.Anchor.SetValue(anchor, components.AnchorData{Region: region})
	addToSpace(ecs, obj)

	return anchor
}

// CreateAnchors spawns one button per region of hub.
func CreateAnchors(ecs *ecs.ECS, hub *layout.Hub, vp companion.Viewport) {
	for _, region := range hub.Regions {
		CreateAnchor(ecs, region, vp)
	}
}
