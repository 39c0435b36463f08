package factory

import (
	"github.com/automoto/pethub/assets/animations"
	"github.com/automoto/pethub/components"
	cfg "github.com/automoto/pethub/config"
	"github.com/automoto/pethub/shared/companion"
)

// GeneratePoses builds an AnimationData with one cycle per behavior state
// from cfg.Poses.
func GeneratePoses() *components.AnimationData {
	animData := &components.AnimationData{
		Animations:  make(map[companion.BehaviorState]*animations.Animation, len(cfg.Poses)),
		CurrentPose: companion.Idle,
	}
	for state, def := range cfg.Poses {
		animData.Animations[state] = animations.NewAnimation(def.Frames, def.Speed)
	}
	animData.CurrentAnimation = animData.Animations[companion.Idle]
	return animData
}
