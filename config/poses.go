package config

import "github.com/automoto/pethub/shared/companion"

// PoseDef describes the procedural cycle played for a behavior state.
type PoseDef struct {
	Frames int
	Speed  float32 // ticks per frame
}

// Poses maps each behavior to its cycle. Walking and running swing the legs,
// idle flicks the tail, sleeping breathes.
var Poses = map[companion.BehaviorState]PoseDef{
	companion.Idle:     {Frames: 2, Speed: 40},
	companion.Walking:  {Frames: 4, Speed: 8},
	companion.Running:  {Frames: 4, Speed: 4},
	companion.Playing:  {Frames: 2, Speed: 10},
	companion.Sleeping: {Frames: 2, Speed: 60},
	companion.Eating:   {Frames: 2, Speed: 12},
}
