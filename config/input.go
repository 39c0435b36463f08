package config

// ActionID represents a logical hub action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleSettings
	ActionTogglePet
	ActionCycleSpecies
	ActionToggleDebug
	ActionToggleFullscreen
	ActionQuit
	ActionCount // Must be last - used for array sizing
)
