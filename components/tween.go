package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives a vertical offset (hop or breathing) on top of the steered
// position. It never feeds back into the simulation.
var Tween = donburi.NewComponentType[gween.Sequence]()
