package components

import (
	"github.com/automoto/pethub/assets/animations"
	"github.com/automoto/pethub/shared/companion"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentPose      companion.BehaviorState
	Animations       map[companion.BehaviorState]*animations.Animation
}

// SetAnimation switches to the cycle for pose, restarting it only when the
// pose actually changes.
func (a *AnimationData) SetAnimation(pose companion.BehaviorState) {
	if a.CurrentPose == pose && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[pose]
	if !ok {
		a.CurrentAnimation = nil
		a.CurrentPose = pose
		return
	}
	a.CurrentAnimation = anim
	a.CurrentPose = pose
	a.CurrentAnimation.Restart()
}

var Animation = donburi.NewComponentType[AnimationData]()
