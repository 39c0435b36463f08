// Package companion is the simulation core of the hub pet: steering, the
// behavior state machine and the input router. It must have zero
// dependencies on ebiten or any graphics library so that every frontend
// (window, terminal) and the tests can drive it headless.
package companion

import "math"

// Vec is a screen-space point or per-tick displacement in pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect is an axis-aligned screen rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r. Edges count as inside.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Viewport is the drawable area the pet lives in.
type Viewport struct {
	Width, Height float64
}

// clamp keeps v inside [lo, hi]. When the range is inverted (a viewport
// narrower than the safe margins) lo wins.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
