package scenes

import (
	"log"
	"sync"

	"github.com/automoto/pethub/assets"
	cfg "github.com/automoto/pethub/config"
	"github.com/automoto/pethub/config/layers"
	"github.com/automoto/pethub/systems"
	"github.com/automoto/pethub/systems/factory"
	"github.com/automoto/pethub/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Hub space covers the largest window we expect; resolv cells outside it
// are simply not indexed.
const (
	hubSpaceWidth  = 7680
	hubSpaceHeight = 4320
)

// HubScene is the page hosting the pet and the cat station
type HubScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settingsUI   *ui.SettingsUI
	once         sync.Once

	width, height int
}

func NewHubScene(sc SceneChanger) *HubScene {
	return &HubScene{sceneChanger: sc, width: cfg.C.Width, height: cfg.C.Height}
}

func (hs *HubScene) Update() {
	hs.once.Do(hs.configure)
	systems.SetViewport(hs.ecs, hs.width, hs.height)
	hs.ecs.Update()

	if systems.IsPanelOpen(hs.ecs) {
		hs.settingsUI.Update()
	}
}

func (hs *HubScene) Draw(screen *ebiten.Image) {
	if hs.ecs == nil {
		return
	}
	hs.ecs.Draw(screen)

	if systems.IsPanelOpen(hs.ecs) {
		hs.settingsUI.UI.Draw(screen)
	}
}

// Layout records the drawable size; the hub always renders 1:1.
func (hs *HubScene) Layout(width, height int) {
	hs.width, hs.height = width, height
}

func (hs *HubScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first so every later system sees this frame's events
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateAnchors)
	ecs.AddSystem(systems.UpdatePetLifecycle)
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdatePet)
	ecs.AddSystem(systems.UpdatePower)

	ecs.AddRenderer(layers.Default, systems.DrawBackground)
	ecs.AddRenderer(layers.Default, systems.DrawAnchors)
	ecs.AddRenderer(layers.Default, systems.DrawPet)
	ecs.AddRenderer(layers.Overlay, systems.DrawDebug)

	hs.ecs = ecs

	factory.CreateSpace(hs.ecs, hubSpaceWidth, hubSpaceHeight, cfg.Hub.SpawnGridPx, cfg.Hub.SpawnGridPx)
	systems.SetViewport(hs.ecs, hs.width, hs.height)

	hub, err := assets.LoadHub(cfg.Hub.MapPath)
	if err != nil {
		// The pet still works without a station: anchor clicks just miss.
		log.Printf("Warning: Could not load hub layout: %v", err)
	} else {
		factory.CreateAnchors(hs.ecs, hub, systems.CurrentViewport(hs.ecs))
	}

	hs.settingsUI = ui.NewSettingsUI(systems.GetOrCreateSettings(hs.ecs))
}
