package companion

import "math"

// Motion is the result of one steering step.
type Motion struct {
	Position Vec
	Velocity Vec     // per reference frame
	Speed    float64 // |Velocity|, always in [0, MaxSpeed]
	Distance float64 // distance to target before the step
}

// Steer moves pos toward target with a proportional, capped speed.
// scale is the elapsed time in reference frames; the step never passes the
// target so large scales cannot oscillate around it.
func Steer(pos, target Vec, scale float64, t Tuning) Motion {
	d := target.Sub(pos)
	dist := d.Len()

	speed := clamp(dist*t.Gain, 0, t.MaxSpeed)
	angle := math.Atan2(d.Y, d.X)
	vel := Vec{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}

	next := pos.Add(vel.Scale(scale))
	// Only reachable when Gain*scale >= 1: never with DefaultTuning through
	// Tick (0.08*4), but a custom Gain or MaxFrameScale, or a direct call
	// with a large scale, would otherwise step past the target.
	if speed*scale >= dist {
		next = target
	}

	return Motion{
		Position: next,
		Velocity: vel,
		Speed:    speed,
		Distance: dist,
	}
}

// FacingFor returns the new facing for a horizontal velocity, keeping the
// current one inside the deadband.
func FacingFor(vx float64, current Facing, deadband float64) Facing {
	switch {
	case vx < -deadband:
		return Left
	case vx > deadband:
		return Right
	}
	return current
}
