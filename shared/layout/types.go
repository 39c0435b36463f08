// Package layout reads the hub's anchor regions from a Tiled map.
// It has no dependencies on ebitengine, donburi, or resolv.
package layout

import "github.com/automoto/pethub/shared/companion"

// Dock names the window corner or edge a region sticks to, e.g.
// "bottom-right". Missing halves default to "bottom" and "left".
type Dock struct {
	Horizontal string // "left", "center", "right"
	Vertical   string // "top", "middle", "bottom"
}

// Region is one anchor as authored in the map: its size plus its distance
// from the docked edges, so it follows the window when it is resized.
type Region struct {
	ID      string // anchor id the router looks up
	Label   string
	Hint    string
	W, H    float64
	Dock    Dock
	MarginX float64
	MarginY float64
}

// Hub is the parsed layout.
type Hub struct {
	Width   int // design size of the map in pixels
	Height  int
	Regions []Region
}

// Resolve places r inside a viewport of the given size.
func (r Region) Resolve(vp companion.Viewport) companion.Rect {
	rect := companion.Rect{W: r.W, H: r.H}

	switch r.Dock.Horizontal {
	case "right":
		rect.X = vp.Width - r.MarginX - r.W
	case "center":
		rect.X = (vp.Width-r.W)/2 + r.MarginX
	default:
		rect.X = r.MarginX
	}

	switch r.Dock.Vertical {
	case "top":
		rect.Y = r.MarginY
	case "middle":
		rect.Y = (vp.Height-r.H)/2 + r.MarginY
	default:
		rect.Y = vp.Height - r.MarginY - r.H
	}
	return rect
}

// Region looks up a region by anchor id.
func (h *Hub) Region(id string) (Region, bool) {
	for _, r := range h.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// Anchors returns an AnchorSource that resolves regions against the
// viewport reported by vp at the moment of each lookup.
func (h *Hub) Anchors(vp func() companion.Viewport) companion.AnchorSource {
	return companion.AnchorFunc(func(id string) (companion.Rect, bool) {
		r, ok := h.Region(id)
		if !ok {
			return companion.Rect{}, false
		}
		return r.Resolve(vp()), true
	})
}
