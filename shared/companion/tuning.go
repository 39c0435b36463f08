package companion

import "time"

// Insets are distances from the viewport edges.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// Tuning holds every constant the core uses. DefaultTuning matches the hub
// page; frontends may scale it (the terminal maps cells to pixels).
type Tuning struct {
	// Steering
	Gain           float64 // speed per pixel of distance
	MaxSpeed       float64 // px per reference frame
	FacingDeadband float64 // |vx| needed before facing flips

	// Behavior derivation
	ArriveDistance float64       // below this the pet is idle
	RunSpeed       float64       // above this the pet runs
	SleepAfter     time.Duration // time without re-targeting before sleeping
	PlayDuration   time.Duration

	// Targeting
	PointerOffset Vec    // keeps the pet slightly behind the cursor
	AnchorOffset  Vec    // applied to anchor centres
	SafeArea      Insets // target clamp, measured from the viewport edges

	// Body
	Size        Vec     // bounding box used for click hits
	StartX      float64 // spawn x
	StartBottom float64 // spawn y is viewport height minus this

	// Frame adaptation
	FrameReference time.Duration // the frame length the speeds are tuned for
	MaxFrameScale  float64       // cap on catch-up after a long frame
}

// DefaultTuning returns the hub page values.
func DefaultTuning() Tuning {
	return Tuning{
		Gain:           0.08,
		MaxSpeed:       14,
		FacingDeadband: 0.5,

		ArriveDistance: 4,
		RunSpeed:       8,
		SleepAfter:     6000 * time.Millisecond,
		PlayDuration:   3000 * time.Millisecond,

		PointerOffset: Vec{X: -48, Y: -20},
		AnchorOffset:  Vec{X: -48, Y: -20},
		SafeArea:      Insets{Left: 24, Top: 80, Right: 120, Bottom: 40},

		Size:        Vec{X: 120, Y: 80},
		StartX:      80,
		StartBottom: 140,

		FrameReference: time.Second / 60,
		MaxFrameScale:  4,
	}
}

// ClampTarget keeps p inside the safe area of vp.
func (t Tuning) ClampTarget(p Vec, vp Viewport) Vec {
	return Vec{
		X: clamp(p.X, t.SafeArea.Left, vp.Width-t.SafeArea.Right),
		Y: clamp(p.Y, t.SafeArea.Top, vp.Height-t.SafeArea.Bottom),
	}
}

// PointerTarget converts a raw pointer coordinate into a steering target.
func (t Tuning) PointerTarget(raw Vec, vp Viewport) Vec {
	return t.ClampTarget(raw.Add(t.PointerOffset), vp)
}

// AnchorTarget converts an anchor rectangle into a steering target.
func (t Tuning) AnchorTarget(r Rect, vp Viewport) Vec {
	return t.ClampTarget(r.Center().Add(t.AnchorOffset), vp)
}

// Start returns the spawn position for vp.
func (t Tuning) Start(vp Viewport) Vec {
	return Vec{X: t.StartX, Y: vp.Height - t.StartBottom}
}

// FrameScale converts an elapsed tick time into a multiple of the reference
// frame. A zero or negative dt yields 0.
func (t Tuning) FrameScale(dt time.Duration) float64 {
	if t.FrameReference <= 0 {
		return 1
	}
	return clamp(float64(dt)/float64(t.FrameReference), 0, t.MaxFrameScale)
}
