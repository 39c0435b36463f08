package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/pethub/components"
	"github.com/automoto/pethub/shared/companion"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk. Pet position
// and behavior are deliberately absent: a new session always starts fresh.
type SavedSettings struct {
	PetEnabled bool   `json:"petEnabled"`
	PetType    string `json:"petType"`
	Debug      bool   `json:"debug"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "pethub",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the settings component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		PetEnabled: s.PetEnabled,
		PetType:    s.Species.String(),
		Debug:      s.Debug,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettings copies loaded settings into the settings component.
// An unknown pet type keeps the current species.
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.PetEnabled = saved.PetEnabled
	s.Debug = saved.Debug
	if species, err := companion.ParseSpecies(saved.PetType); err == nil {
		s.Species = species
	} else {
		log.Printf("Warning: Ignoring saved pet type: %v", err)
	}
}
