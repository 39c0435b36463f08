package config

import (
	"errors"
	"fmt"

	"github.com/automoto/pethub/shared/companion"
	"github.com/automoto/pethub/shared/envconfig"
)

// EnvOverrides lists the settings that can be changed with PETHUB_* variables.
type EnvOverrides struct {
	Width      int     `env:"WIDTH"`
	Height     int     `env:"HEIGHT"`
	Overlay    bool    `env:"OVERLAY"`
	Debug      bool    `env:"DEBUG"`
	LogEvents  bool    `env:"LOG_EVENTS"`
	Species    string  `env:"SPECIES"`
	PetEnabled bool    `env:"PET_ENABLED"`
	ActiveTPS  int     `env:"ACTIVE_TPS"`
	IdleTPS    int     `env:"IDLE_TPS"`
	MaxSpeed   float64 `env:"MAX_SPEED"`
	MapPath    string  `env:"HUB_MAP"`
}

// ApplyEnv overrides the globals from the environment. Unset variables keep
// the defaults from init.
func ApplyEnv() error {
	o := EnvOverrides{
		Width:      C.Width,
		Height:     C.Height,
		Overlay:    Overlay.Enabled,
		Debug:      Debug.Enabled,
		LogEvents:  Debug.LogEvents,
		Species:    Pet.DefaultSpecies.String(),
		PetEnabled: Pet.EnabledByDefault,
		ActiveTPS:  Power.ActiveTPS,
		IdleTPS:    Power.IdleTPS,
		MaxSpeed:   Pet.Tuning.MaxSpeed,
		MapPath:    Hub.MapPath,
	}
	if err := envconfig.Parse(&o); err != nil {
		return err
	}

	species, err := companion.ParseSpecies(o.Species)
	if err != nil {
		return err
	}
	if o.ActiveTPS <= 0 {
		return fmt.Errorf("%sACTIVE_TPS=%d: %w", envconfig.Prefix, o.ActiveTPS, ErrNonPositive)
	}
	if o.IdleTPS <= 0 {
		return fmt.Errorf("%sIDLE_TPS=%d: %w", envconfig.Prefix, o.IdleTPS, ErrNonPositive)
	}

	C.Width, C.Height = o.Width, o.Height
	Overlay.Enabled = o.Overlay
	Debug.Enabled = o.Debug
	Debug.LogEvents = o.LogEvents
	Pet.DefaultSpecies = species
	Pet.EnabledByDefault = o.PetEnabled
	Power.ActiveTPS = o.ActiveTPS
	Power.IdleTPS = o.IdleTPS
	Pet.Tuning.MaxSpeed = o.MaxSpeed
	Hub.MapPath = o.MapPath
	return nil
}

// ErrNonPositive is returned for rates that must be at least one.
var ErrNonPositive = errors.New("must be greater than zero")
