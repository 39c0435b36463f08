package components

import (
	"github.com/automoto/pethub/shared/companion"
	"github.com/yohamta/donburi"
)

// ViewportData is the current drawable size, written from Layout.
type ViewportData struct {
	companion.Viewport
	Changed bool
}

var Viewport = donburi.NewComponentType[ViewportData]()
