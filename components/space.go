package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the resolv space every bounded entity registers with.
var Space = donburi.NewComponentType[resolv.Space]()
