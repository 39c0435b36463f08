// Package layers names the ECS render layers. It lives apart from config so
// frontends without a window can import config without pulling in ebiten.
package layers

import "github.com/yohamta/donburi/ecs"

const (
	Default ecs.LayerID = iota
	Overlay
)
