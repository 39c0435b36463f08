package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pethub/components"
	cfg "github.com/automoto/pethub/config"
	"github.com/automoto/pethub/fonts"
	"github.com/automoto/pethub/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	// Draw all hit regions registered in the space
	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPet) {
				c = cfg.DebugPet
			} else if obj.HasTags(tags.ResolvAnchor) {
				c = cfg.DebugAnchor
			}
			x, y, w, h := float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	lines := []string{
		fmt.Sprintf("TPS %.0f (target %d)  FPS %.0f", ebiten.ActualTPS(), ebiten.TPS(), ebiten.ActualFPS()),
	}
	vp := CurrentViewport(ecs)
	lines = append(lines, fmt.Sprintf("viewport %.0fx%.0f", vp.Width, vp.Height))

	if entry, ok := FindPet(ecs); ok {
		pet := components.Pet.Get(entry)
		snap := pet.Snapshot()

		// Target crosshair
		tx, ty := float32(snap.Target.X), float32(snap.Target.Y)
		vector.StrokeLine(screen, tx-6, ty, tx+6, ty, 1, cfg.DebugTarget, false)
		vector.StrokeLine(screen, tx, ty-6, tx, ty+6, 1, cfg.DebugTarget, false)

		idle := Clock.Now().Sub(pet.LastMotion)
		lines = append(lines,
			fmt.Sprintf("%v %v  state %v  mode %v", pet.Species, snap.Facing, snap.State, snap.Mode),
			fmt.Sprintf("pos %.1f,%.1f  target %.1f,%.1f", snap.Position.X, snap.Position.Y, snap.Target.X, snap.Target.Y),
			fmt.Sprintf("speed %.2f  dist %.1f  idle %.1fs", snap.Speed, pet.Distance, idle.Seconds()),
		)
		if pet.AnchorID != "" {
			lines = append(lines, "anchor "+pet.AnchorID)
		}
	} else {
		lines = append(lines, "pet disabled")
	}

	face := fonts.Small.Get()
	lineH := face.Metrics().Height.Ceil()
	vector.FillRect(screen, 4, 4, 320, float32(lineH*len(lines)+8), cfg.DebugPanel, false)
	for i, line := range lines {
		text.Draw(screen, line, face, 10, 4+lineH*(i+1), cfg.DebugText)
	}
}
