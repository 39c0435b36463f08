package companion

import "time"

// Behavior is the state machine value: the active state plus, for Playing,
// the instant it expires. Replacing the whole value is the only way to change
// state, so "exactly one active state" holds by construction.
type Behavior struct {
	State BehaviorState
	Until time.Time
}

// Derived wraps one of the four per-tick states.
func Derived(s BehaviorState) Behavior {
	return Behavior{State: s}
}

// Play forces Playing until the given instant.
func Play(until time.Time) Behavior {
	return Behavior{State: Playing, Until: until}
}

// Eat forces Eating with no deadline.
func Eat() Behavior {
	return Behavior{State: Eating}
}

// Forced reports whether per-tick derivation is suspended.
func (b Behavior) Forced() bool {
	return b.State == Playing || b.State == Eating
}

// Expired reports whether a Playing deadline has been reached. Eating never
// expires.
func (b Behavior) Expired(now time.Time) bool {
	return b.State == Playing && !now.Before(b.Until)
}

// Derive picks one of the derived states. Order matters: long inactivity
// beats proximity, which beats speed.
func Derive(idle time.Duration, distance, speed float64, t Tuning) BehaviorState {
	switch {
	case idle > t.SleepAfter:
		return Sleeping
	case distance < t.ArriveDistance:
		return Idle
	case speed > t.RunSpeed:
		return Running
	}
	return Walking
}
