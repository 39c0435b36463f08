package archetypes

import (
	"github.com/automoto/pethub/components"
	"github.com/automoto/pethub/config/layers"
	"github.com/automoto/pethub/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Pet = newArchetype(
		tags.Pet,
		components.Pet,
		components.Object,
		components.Animation,
		components.Tween,
	)
	Anchor = newArchetype(
		tags.Anchor,
		components.Anchor,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		layers.Default,
		append(a.components, cs...)...,
	))
	return e
}
