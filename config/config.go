package config

import (
	"image/color"
	"time"

	"github.com/automoto/pethub/shared/companion"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PetConfig contains everything the companion and its renderer need
type PetConfig struct {
	Tuning companion.Tuning

	// Defaults for the settings collaborator
	EnabledByDefault bool
	DefaultSpecies   companion.Species

	// Presentation
	HopHeight    float64 // pixels the pet rises while playing
	HopDuration  float32 // seconds per hop half
	BobHeight    float64 // breathing offset while sleeping
	BobDuration  float32
	BubbleOffset float64 // sleep bubble height above the pet
}

// HubConfig describes the hub page around the pet
type HubConfig struct {
	MapPath      string // TMX holding the anchor regions, inside the assets FS
	Background   color.RGBA
	Transparent  color.RGBA // background in overlay mode
	ButtonColor  color.RGBA
	ButtonHover  color.RGBA
	ButtonBorder color.RGBA
	LabelColor   color.RGBA
	HintColor    color.RGBA
	SpawnGridPx  int // resolv cell size
}

// PowerConfig controls how hard the loop runs while nothing happens
type PowerConfig struct {
	ActiveTPS int
	IdleTPS   int
	IdleAfter time.Duration // without input while the pet sleeps
}

// OverlayConfig turns the hub into a floating desktop pet window
type OverlayConfig struct {
	Enabled  bool
	Floating bool
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Enabled   bool
	LogEvents bool // log every routed input event
}

// TapConfig bounds what counts as a tap on touch screens
type TapConfig struct {
	MaxDuration time.Duration
	MaxTravel   float64
}

// Global configuration instances
var C *Config
var Pet PetConfig
var Hub HubConfig
var Power PowerConfig
var Overlay OverlayConfig
var Debug DebugConfig
var Tap TapConfig

// Pet palette
var (
	BunnyFur   = color.RGBA{R: 0xf4, G: 0xef, B: 0xea, A: 255}
	BunnyInner = color.RGBA{R: 0xf6, G: 0xc1, B: 0xcc, A: 255}
	CatFur     = color.RGBA{R: 0xf1, G: 0xdc, B: 0xc4, A: 255}
	CatTail    = color.RGBA{R: 0xe3, G: 0xcd, B: 0xb6, A: 255}
	Ink        = color.RGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 255}
	Nose       = color.RGBA{R: 0xe8, G: 0x8a, B: 0x9b, A: 255}
	Bowl       = color.RGBA{R: 0x5b, G: 0x8d, B: 0xd6, A: 255}
	Kibble     = color.RGBA{R: 0xa8, G: 0x6b, B: 0x3c, A: 255}
	Bubble     = color.RGBA{R: 255, G: 255, B: 255, A: 230}
)

// Debug overlay colors
var (
	DebugPet    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	DebugAnchor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	DebugTarget = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	DebugText   = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	DebugPanel  = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 800,
		Title:  "Pet Hub",
	}

	Pet = PetConfig{
		Tuning: companion.DefaultTuning(),

		EnabledByDefault: true,
		DefaultSpecies:   companion.Bunny,

		HopHeight:    14,
		HopDuration:  0.18,
		BobHeight:    2,
		BobDuration:  1.2,
		BubbleOffset: 18,
	}

	Hub = HubConfig{
		MapPath:      "hub/hub.tmx",
		Background:   color.RGBA{R: 0xfa, G: 0xf7, B: 0xf2, A: 255},
		Transparent:  color.RGBA{},
		ButtonColor:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 235},
		ButtonHover:  color.RGBA{R: 0xfd, G: 0xf1, B: 0xe3, A: 245},
		ButtonBorder: color.RGBA{R: 0xd9, G: 0xc9, B: 0xb8, A: 255},
		LabelColor:   color.RGBA{R: 0x3a, G: 0x2e, B: 0x25, A: 255},
		HintColor:    color.RGBA{R: 0x8a, G: 0x7a, B: 0x6b, A: 255},
		SpawnGridPx:  32,
	}

	Power = PowerConfig{
		ActiveTPS: 60,
		IdleTPS:   15,
		IdleAfter: 2 * time.Second,
	}

	Overlay = OverlayConfig{
		Enabled:  false,
		Floating: true,
	}

	Tap = TapConfig{
		MaxDuration: 300 * time.Millisecond,
		MaxTravel:   12,
	}
}
