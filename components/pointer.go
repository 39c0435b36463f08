package components

import (
	"time"

	"github.com/automoto/pethub/shared/pointer"
	"github.com/yohamta/donburi"
)

// PointerData is the raw pointer state carried between frames.
type PointerData struct {
	Tracker    *pointer.Tracker
	LastInput  time.Time
	OverTarget bool // cursor is over the pet or an anchor
}

var Pointer = donburi.NewComponentType[PointerData]()
