package companion

import "time"

// Companion is the complete mutable state of one mounted pet. It is owned by
// a single goroutine (or a single ECS system pass); nothing in it is safe
// for concurrent use.
type Companion struct {
	Position Vec
	Target   Vec
	Velocity Vec
	Speed    float64
	Distance float64

	Facing   Facing
	Behavior Behavior
	Mode     ControlMode
	AnchorID string // anchor the target is frozen on, "" while following

	LastMotion time.Time // last pointer motion or re-target
	lastTick   time.Time

	Tuning Tuning
}

// New mounts a pet at the spawn position for vp.
func New(vp Viewport, now time.Time, t Tuning) *Companion {
	start := t.Start(vp)
	return &Companion{
		Position:   start,
		Target:     start,
		Facing:     Right,
		Behavior:   Derived(Idle),
		Mode:       Following,
		LastMotion: now,
		Tuning:     t,
	}
}

// State returns the active behavior state.
func (c *Companion) State() BehaviorState {
	return c.Behavior.State
}

// Bounds is the rectangle a click must hit to count as touching the pet.
func (c *Companion) Bounds() Rect {
	return Rect{X: c.Position.X, Y: c.Position.Y, W: c.Tuning.Size.X, H: c.Tuning.Size.Y}
}

// Tick advances the simulation to now. The first tick after mounting counts
// as one reference frame.
func (c *Companion) Tick(now time.Time) Motion {
	scale := 1.0
	if !c.lastTick.IsZero() {
		scale = c.Tuning.FrameScale(now.Sub(c.lastTick))
	}
	c.lastTick = now
	return c.Step(now, scale)
}

// Step advances the simulation by scale reference frames.
func (c *Companion) Step(now time.Time, scale float64) Motion {
	m := Steer(c.Position, c.Target, scale, c.Tuning)
	c.Position = m.Position
	c.Velocity = m.Velocity
	c.Speed = m.Speed
	c.Distance = m.Distance
	c.Facing = FacingFor(m.Velocity.X, c.Facing, c.Tuning.FacingDeadband)

	if c.Behavior.Expired(now) {
		c.Behavior = Derived(Idle)
	}
	if !c.Behavior.Forced() {
		c.Behavior = Derived(Derive(now.Sub(c.LastMotion), m.Distance, m.Speed, c.Tuning))
	}
	return m
}

// Handle applies one input event. vp is the current viewport and anchors is
// consulted live for click classification.
func (c *Companion) Handle(ev Event, now time.Time, vp Viewport, anchors AnchorSource) Outcome {
	switch e := ev.(type) {
	case PointerMove:
		return c.follow(e.At, now, vp)
	case TouchMove:
		if len(e.Touches) == 0 {
			return OutcomeNone
		}
		return c.follow(e.Touches[0], now, vp)
	case TouchEnd:
		if len(e.Remaining) == 0 {
			return OutcomeNone
		}
		return c.follow(e.Remaining[0], now, vp)
	case Click:
		return c.click(e.At, now, vp, anchors)
	}
	return OutcomeNone
}

func (c *Companion) follow(raw Vec, now time.Time, vp Viewport) Outcome {
	if c.Mode != Following {
		return OutcomeNone
	}
	c.LastMotion = now
	c.Target = c.Tuning.PointerTarget(raw, vp)
	return OutcomeRetarget
}

func (c *Companion) click(at Vec, now time.Time, vp Viewport, anchors AnchorSource) Outcome {
	switch Classify(at, c.Bounds(), anchors) {
	case HitPet:
		c.Behavior = Play(now.Add(c.Tuning.PlayDuration))
		return OutcomePlay

	case HitRest:
		if c.Mode == Following {
			r, _ := anchors.Anchor(RestAnchor)
			c.anchorTo(RestAnchor, r, now, vp)
			c.Behavior = Derived(Idle)
			return OutcomeAnchor
		}
		c.Mode = Following
		c.AnchorID = ""
		c.Behavior = Derived(Idle)
		c.LastMotion = now
		c.Target = c.Tuning.PointerTarget(at, vp)
		return OutcomeFollow

	case HitFeed:
		r, _ := anchors.Anchor(FeedAnchor)
		c.anchorTo(FeedAnchor, r, now, vp)
		c.Behavior = Eat()
		return OutcomeFeed
	}
	return OutcomeNone
}

func (c *Companion) anchorTo(id string, r Rect, now time.Time, vp Viewport) {
	c.Mode = Anchored
	c.AnchorID = id
	c.LastMotion = now
	c.Target = c.Tuning.AnchorTarget(r, vp)
}

// Snapshot is the read-only view handed to renderers.
type Snapshot struct {
	Position Vec
	Target   Vec
	Facing   Facing
	State    BehaviorState
	Mode     ControlMode
	Speed    float64
}

func (c *Companion) Snapshot() Snapshot {
	return Snapshot{
		Position: c.Position,
		Target:   c.Target,
		Facing:   c.Facing,
		State:    c.Behavior.State,
		Mode:     c.Mode,
		Speed:    c.Speed,
	}
}
