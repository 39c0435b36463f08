package companion

import (
	"fmt"
	"strings"
)

// BehaviorState is the pet's current activity. Exactly one is active.
type BehaviorState int

const (
	Idle BehaviorState = iota
	Walking
	Running
	Playing
	Sleeping
	Eating
)

var behaviorNames = map[BehaviorState]string{
	Idle:     "idle",
	Walking:  "walking",
	Running:  "running",
	Playing:  "playing",
	Sleeping: "sleeping",
	Eating:   "eating",
}

func (s BehaviorState) String() string {
	if name, ok := behaviorNames[s]; ok {
		return name
	}
	return fmt.Sprintf("BehaviorState(%d)", int(s))
}

// ControlMode decides where the target comes from.
type ControlMode int

const (
	// Following tracks the live pointer.
	Following ControlMode = iota
	// Anchored freezes the target on an anchor until the mode flips again.
	Anchored
)

func (m ControlMode) String() string {
	switch m {
	case Following:
		return "following"
	case Anchored:
		return "anchored"
	}
	return fmt.Sprintf("ControlMode(%d)", int(m))
}

// Facing is the horizontal direction the pet looks at.
type Facing int

const (
	Right Facing = iota
	Left
)

func (f Facing) String() string {
	if f == Left {
		return "left"
	}
	return "right"
}

// Sign returns -1 for Left and 1 for Right, handy for mirroring sprites.
func (f Facing) Sign() float64 {
	if f == Left {
		return -1
	}
	return 1
}

// Species only selects how the pet is drawn.
type Species int

const (
	Bunny Species = iota
	Cat
)

// AllSpecies lists the species in selector order.
var AllSpecies = []Species{Bunny, Cat}

func (s Species) String() string {
	switch s {
	case Bunny:
		return "bunny"
	case Cat:
		return "cat"
	}
	return fmt.Sprintf("Species(%d)", int(s))
}

// Next cycles through AllSpecies.
func (s Species) Next() Species {
	for i, sp := range AllSpecies {
		if sp == s {
			return AllSpecies[(i+1)%len(AllSpecies)]
		}
	}
	return Bunny
}

// ParseSpecies accepts the names produced by Species.String.
func ParseSpecies(name string) (Species, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bunny":
		return Bunny, nil
	case "cat":
		return Cat, nil
	}
	return Bunny, fmt.Errorf("unknown species %q", name)
}
