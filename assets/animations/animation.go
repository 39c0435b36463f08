package animations

// Animation cycles through Frames poses, advancing one pose every
// SpeedInTps ticks.
type Animation struct {
	Frames       int
	SpeedInTps   float32 // how many ticks before next frame
	frameCounter float32
	frame        int
	Looped       bool
}

// Update advances the cycle by one tick. scale lets callers that run at a
// reduced tick rate keep the visible speed constant.
func (a *Animation) Update(scale float32) {
	if a.Frames <= 1 {
		return
	}
	a.frameCounter -= scale
	for a.frameCounter < 0.0 {
		a.frameCounter += a.SpeedInTps
		a.frame++
		if a.frame >= a.Frames {
			a.Looped = true
			a.frame = 0
		}
		if a.SpeedInTps <= 0 {
			break
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Phase is the position in the cycle in [0, 1).
func (a *Animation) Phase() float64 {
	if a.Frames <= 0 {
		return 0
	}
	return float64(a.frame) / float64(a.Frames)
}

func (a *Animation) Restart() {
	a.frame = 0
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(frames int, speed float32) *Animation {
	return &Animation{
		Frames:       frames,
		SpeedInTps:   speed,
		frameCounter: speed,
	}
}
