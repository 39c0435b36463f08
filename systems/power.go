package systems

import (
	"github.com/automoto/pethub/components"
	cfg "github.com/automoto/pethub/config"
	"github.com/automoto/pethub/shared/companion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePower drops the tick rate while nothing is happening: no pet or a
// sleeping one, no input for a while, and no panel open. Steering scales
// with the real frame time, so the pet moves the same at any rate.
func UpdatePower(ecs *ecs.ECS) {
	want := cfg.Power.ActiveTPS
	if idle(ecs) {
		want = cfg.Power.IdleTPS
	}
	if ebiten.TPS() != want {
		ebiten.SetTPS(want)
	}
}

func idle(ecs *ecs.ECS) bool {
	if IsPanelOpen(ecs) {
		return false
	}
	p := getOrCreatePointer(ecs)
	if Clock.Now().Sub(p.LastInput) < cfg.Power.IdleAfter {
		return false
	}
	if entry, ok := FindPet(ecs); ok {
		return components.Pet.Get(entry).State() == companion.Sleeping
	}
	return true
}

// frameScale converts one tick at the current rate into active-rate ticks
// for purely cosmetic timers.
func frameScale() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 1
	}
	return float64(cfg.Power.ActiveTPS) / float64(tps)
}
