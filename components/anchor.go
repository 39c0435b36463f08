package components

import (
	"github.com/automoto/pethub/shared/layout"
	"github.com/yohamta/donburi"
)

// AnchorData is one named station button on the hub.
type AnchorData struct {
	Region  layout.Region
	Hovered bool
}

var Anchor = donburi.NewComponentType[AnchorData]()
