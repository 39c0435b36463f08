package systems

import (
	"testing"

	"github.com/automoto/pethub/components"
	"github.com/automoto/pethub/shared/companion"
	"github.com/automoto/pethub/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newHubECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 1280, 800, 32, 32)
	SetViewport(e, 1280, 800)
	return e
}

func spaceObjects(e *ecs.ECS) int {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return 0
	}
	return len(components.Space.Get(entry).Objects())
}

func TestPetLifecycleFollowsEnabled(t *testing.T) {
	e := newHubECS(t)
	settings := GetOrCreateSettings(e)
	settings.PetEnabled = false
	settings.Species = companion.Bunny

	UpdatePetLifecycle(e)
	if _, ok := FindPet(e); ok {
		t.Fatalf("pet mounted while disabled")
	}

	settings.PetEnabled = true
	UpdatePetLifecycle(e)
	entry, ok := FindPet(e)
	if !ok {
		t.Fatalf("pet not mounted after enabling")
	}
	pet := components.Pet.Get(entry)
	if want := (companion.Vec{X: 80, Y: 660}); pet.Position != want {
		t.Fatalf("spawn = %+v, want %+v", pet.Position, want)
	}
	if pet.State() != companion.Idle || pet.Mode != companion.Following {
		t.Fatalf("spawned %v/%v, want Idle/Following", pet.State(), pet.Mode)
	}
	if n := spaceObjects(e); n != 1 {
		t.Fatalf("space holds %d objects, want the pet", n)
	}

	// Staying enabled keeps the same pet.
	UpdatePetLifecycle(e)
	if again, _ := FindPet(e); again.Entity() != entry.Entity() {
		t.Fatalf("pet remounted while still enabled")
	}

	settings.PetEnabled = false
	UpdatePetLifecycle(e)
	if _, ok := FindPet(e); ok {
		t.Fatalf("pet still mounted after disabling")
	}
	if entry.Valid() {
		t.Fatalf("old pet entry still valid")
	}
	if n := spaceObjects(e); n != 0 {
		t.Fatalf("space holds %d objects after unmount, want 0", n)
	}
}

func TestPetRemountStartsFresh(t *testing.T) {
	e := newHubECS(t)
	settings := GetOrCreateSettings(e)
	settings.PetEnabled = true
	UpdatePetLifecycle(e)

	entry, _ := FindPet(e)
	pet := components.Pet.Get(entry)
	pet.Handle(companion.PointerMove{At: companion.Vec{X: 600, Y: 400}}, Clock.Now(), CurrentViewport(e), nil)
	pet.Position = companion.Vec{X: 500, Y: 300}

	settings.PetEnabled = false
	UpdatePetLifecycle(e)
	settings.PetEnabled = true
	UpdatePetLifecycle(e)

	entry, ok := FindPet(e)
	if !ok {
		t.Fatalf("pet not remounted")
	}
	pet = components.Pet.Get(entry)
	if want := (companion.Vec{X: 80, Y: 660}); pet.Position != want || pet.Target != want {
		t.Fatalf("remount at %+v -> %+v, want fresh spawn %+v", pet.Position, pet.Target, want)
	}
}

func TestSpeciesChangeKeepsPet(t *testing.T) {
	e := newHubECS(t)
	settings := GetOrCreateSettings(e)
	settings.PetEnabled = true
	settings.Species = companion.Bunny
	UpdatePetLifecycle(e)

	entry, _ := FindPet(e)
	pet := components.Pet.Get(entry)
	pet.Position = companion.Vec{X: 321, Y: 456}

	CycleSpecies(settings)
	UpdatePetLifecycle(e)

	again, ok := FindPet(e)
	if !ok || again.Entity() != entry.Entity() {
		t.Fatalf("species change remounted the pet")
	}
	pet = components.Pet.Get(again)
	if pet.Species != companion.Cat {
		t.Fatalf("species = %v, want cat", pet.Species)
	}
	if want := (companion.Vec{X: 321, Y: 456}); pet.Position != want {
		t.Fatalf("position = %+v, want %+v", pet.Position, want)
	}
}
