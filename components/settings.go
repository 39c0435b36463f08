package components

import (
	"image"

	"github.com/automoto/pethub/shared/companion"
	"github.com/yohamta/donburi"
)

// SettingsData is the settings collaborator: the only inputs the pet core
// takes from the rest of the app.
type SettingsData struct {
	PetEnabled bool
	Species    companion.Species
	Debug      bool

	PanelOpen bool
	PanelRect image.Rectangle // screen area of the open panel, clicks there skip the pet
	Dirty     bool            // changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
