package tags

import "github.com/yohamta/donburi"

var (
	Pet    = donburi.NewTag().SetName("Pet")
	Anchor = donburi.NewTag().SetName("Anchor")
)

// Resolv tags for hit regions
const (
	ResolvPet    = "pet"
	ResolvAnchor = "anchor"
)
