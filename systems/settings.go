package systems

import (
	"image"
	"log"
	"os"

	"github.com/automoto/pethub/components"
	cfg "github.com/automoto/pethub/config"
	"github.com/automoto/pethub/shared/companion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the keyboard shortcuts of the settings collaborator
// and saves whatever changed.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleSettings).JustPressed {
		settings.PanelOpen = !settings.PanelOpen
	}
	if GetAction(input, cfg.ActionTogglePet).JustPressed {
		SetPetEnabled(settings, !settings.PetEnabled)
	}
	if GetAction(input, cfg.ActionCycleSpecies).JustPressed {
		CycleSpecies(settings)
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed && !cfg.Overlay.Enabled {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if GetAction(input, cfg.ActionQuit).JustPressed {
		if settings.PanelOpen {
			settings.PanelOpen = false
		} else {
			SaveCurrentSettings(settings)
			os.Exit(0)
		}
	}

	if settings.Dirty {
		settings.Dirty = false
		SaveCurrentSettings(settings)
	}
}

// SetPetEnabled flips the enabled flag the lifecycle system watches.
func SetPetEnabled(s *components.SettingsData, enabled bool) {
	if s.PetEnabled == enabled {
		return
	}
	s.PetEnabled = enabled
	s.Dirty = true
	if cfg.Debug.LogEvents {
		log.Printf("settings: pet enabled = %v", enabled)
	}
}

// CycleSpecies selects the next species.
func CycleSpecies(s *components.SettingsData) {
	s.Species = s.Species.Next()
	s.Dirty = true
}

// IsPanelOpen reports whether the settings panel is showing.
func IsPanelOpen(ecs *ecs.ECS) bool {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		return false
	}
	return components.Settings.Get(entry).PanelOpen
}

// IsPanelUnder reports whether at falls on the open settings panel.
func IsPanelUnder(ecs *ecs.ECS, at companion.Vec) bool {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		return false
	}
	s := components.Settings.Get(entry)
	return s.PanelOpen && image.Pt(int(at.X), int(at.Y)).In(s.PanelRect)
}

// GetOrCreateSettings returns the singleton settings, seeded from the
// config defaults and then from whatever was saved.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			PetEnabled: cfg.Pet.EnabledByDefault,
			Species:    cfg.Pet.DefaultSpecies,
			Debug:      cfg.Debug.Enabled,
		})
		if saved, err := LoadSettings(); err == nil && saved != nil {
			ApplySavedSettings(components.Settings.Get(entry), saved)
		}
	}
	return components.Settings.Get(entry)
}
