package components

import (
	"github.com/automoto/pethub/shared/companion"
	"github.com/yohamta/donburi"
)

// PetData is the mounted companion plus what the renderer needs on top of it.
type PetData struct {
	*companion.Companion
	Species companion.Species

	// Offset is the cosmetic vertical offset from the active tween.
	Offset      float64
	TweenPose   companion.BehaviorState
	TweenActive bool
}

var Pet = donburi.NewComponentType[PetData]()
