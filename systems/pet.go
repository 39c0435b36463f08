package systems

import (
	"log"

	"github.com/automoto/pethub/components"
	cfg "github.com/automoto/pethub/config"
	"github.com/automoto/pethub/shared/companion"
	"github.com/automoto/pethub/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Clock is the time source every system reads.
var Clock companion.Clock = companion.SystemClock{}

// UpdatePet advances every mounted pet and mirrors its bounds into resolv.
func UpdatePet(ecs *ecs.ECS) {
	now := Clock.Now()
	scale := float32(frameScale())

	tags.Pet.Each(ecs.World, func(e *donburi.Entry) {
		pet := components.Pet.Get(e)
		pet.Tick(now)

		obj := components.Object.Get(e)
		obj.MoveTo(pet.Bounds())

		anim := components.Animation.Get(e)
		anim.SetAnimation(pet.State())
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(scale)
		}

		updatePetTween(e, pet, scale)
	})
}

// updatePetTween runs the cosmetic hop or breathing offset for the current
// state. The sequence is rebuilt whenever the state changes.
func updatePetTween(e *donburi.Entry, pet *components.PetData, scale float32) {
	seq := components.Tween.Get(e)
	state := pet.State()

	if state != pet.TweenPose {
		pet.TweenPose = state
		next, active := poseTween(state)
		*seq = *next
		pet.TweenActive = active
		pet.Offset = 0
	}
	if !pet.TweenActive {
		return
	}

	dt := scale / float32(cfg.Power.ActiveTPS)
	value, _, done := seq.Update(dt)
	pet.Offset = float64(value)
	if done {
		seq.Reset()
	}
}

func poseTween(state companion.BehaviorState) (*gween.Sequence, bool) {
	switch state {
	case companion.Playing:
		h, d := float32(cfg.Pet.HopHeight), cfg.Pet.HopDuration
		return gween.NewSequence(
			gween.New(0, -h, d, ease.OutQuad),
			gween.New(-h, 0, d, ease.InQuad),
		), true
	case companion.Sleeping:
		h, d := float32(cfg.Pet.BobHeight), cfg.Pet.BobDuration
		return gween.NewSequence(
			gween.New(0, h, d, ease.InOutSine),
			gween.New(h, 0, d, ease.InOutSine),
		), true
	}
	return gween.NewSequence(), false
}

// dispatch routes one input event to every mounted pet.
func dispatch(ecs *ecs.ECS, ev companion.Event) {
	now := Clock.Now()
	vp := CurrentViewport(ecs)
	anchors := anchorSource(ecs)

	tags.Pet.Each(ecs.World, func(e *donburi.Entry) {
		pet := components.Pet.Get(e)
		out := pet.Handle(ev, now, vp, anchors)
		if cfg.Debug.LogEvents && out != companion.OutcomeNone {
			log.Printf("pet: %T -> %v (state %v, mode %v)", ev, out, pet.State(), pet.Mode)
		}
	})
}

// anchorSource looks anchors up in the world on every call, so a click is
// always classified against where the station is drawn right now.
func anchorSource(ecs *ecs.ECS) companion.AnchorSource {
	return companion.AnchorFunc(func(id string) (companion.Rect, bool) {
		var (
			found companion.Rect
			ok    bool
		)
		tags.Anchor.Each(ecs.World, func(e *donburi.Entry) {
			if ok || components.Anchor.Get(e).Region.ID != id {
				return
			}
			found, ok = components.Object.Get(e).Rect(), true
		})
		return found, ok
	})
}

// FindPet returns the mounted pet entry, if any.
func FindPet(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Pet.First(ecs.World)
}
