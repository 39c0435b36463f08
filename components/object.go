package components

import (
	"github.com/automoto/pethub/shared/companion"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the resolv object that mirrors an entity's bounds.
type ObjectData struct {
	*resolv.Object
}

// Rect reports the object's bounds in companion terms.
func (o ObjectData) Rect() companion.Rect {
	return companion.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// MoveTo places the object at r and refreshes its cells in the space.
func (o ObjectData) MoveTo(r companion.Rect) {
	o.X, o.Y, o.W, o.H = r.X, r.Y, r.W, r.H
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
