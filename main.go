package main

import (
	"image"
	"log"

	"github.com/automoto/pethub/config"
	"github.com/automoto/pethub/fonts"
	"github.com/automoto/pethub/scenes"
	"github.com/automoto/pethub/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewHubScene(g)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the hub at the window's real size so anchors can re-dock
// when it is resized.
func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, width, height)
	g.scene.Layout(width, height)
	return width, height
}

func main() {
	if err := config.ApplyEnv(); err != nil {
		log.Printf("Warning: Ignoring environment overrides: %v", err)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.Power.ActiveTPS)

	opts := &ebiten.RunGameOptions{}
	if config.Overlay.Enabled {
		// Desktop pet: a borderless see-through window covering the monitor
		w, h := ebiten.Monitor().Size()
		config.C.Width, config.C.Height = w, h
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowFloating(config.Overlay.Floating)
		ebiten.SetWindowPosition(0, 0)
		opts.ScreenTransparent = true
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowSize(config.C.Width, config.C.Height)

	// Initialize persistence; saved settings are applied when the hub
	// creates its settings entity
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGameWithOptions(NewGame(), opts); err != nil {
		log.Fatal(err)
	}
}
