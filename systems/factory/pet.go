package factory

import (
	"time"

	"github.com/automoto/pethub/archetypes"
	"github.com/automoto/pethub/components"
	cfg "github.com/automoto/pethub/config"
	"github.com/automoto/pethub/shared/companion"
	"github.com/automoto/pethub/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePet mounts a companion at its spawn point for vp.
func CreatePet(ecs *ecs.ECS, vp companion.Viewport, species companion.Species, now time.Time) *donburi.Entry {
	pet := archetypes.Pet.Spawn(ecs)

	c := companion.New(vp, now, cfg.Pet.Tuning)
	b := c.Bounds()

	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tags.ResolvPet)
	obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	obj.Data = pet

	components.Object.SetValue(pet, components.ObjectData{Object: obj})
	components.Pet.SetValue(pet, components.PetData{
		Companion: c,
		Species:   species,
		TweenPose: companion.Idle,
	})
	components.Animation.Set(pet, GeneratePoses())
	components.Tween.Set(pet, gween.NewSequence())
	addToSpace(ecs, obj)

	return pet
}

// DestroyPet unmounts the pet and drops its hit region from the space.
func DestroyPet(ecs *ecs.ECS, pet *donburi.Entry) {
	if !pet.Valid() {
		return
	}
	if pet.HasComponent(components.Object) {
		obj := components.Object.Get(pet)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(pet.Entity())
}
