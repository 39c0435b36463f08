package systems

import (
	"github.com/automoto/pethub/components"
	"github.com/automoto/pethub/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePetLifecycle mounts the pet when the settings enable it and
// unmounts it when they disable it. The species selector only touches the
// renderer, so switching it keeps position and behavior.
func UpdatePetLifecycle(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	entry, mounted := FindPet(ecs)

	switch {
	case settings.PetEnabled && !mounted:
		factory.CreatePet(ecs, CurrentViewport(ecs), settings.Species, Clock.Now())
	case !settings.PetEnabled && mounted:
		factory.DestroyPet(ecs, entry)
	case mounted:
		components.Pet.Get(entry).Species = settings.Species
	}
}
