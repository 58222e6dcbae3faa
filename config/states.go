package config

// StateID identifies the player's discrete state for animation and logic.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota
	Run
	Dash
	Jump
	Air
	Land
	// Climb and Wall are reserved for wall movement; no system enters them yet.
	Climb
	Wall
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Run:       "run",
	Dash:      "dash",
	Jump:      "jump",
	Air:       "air",
	Land:      "land",
	Climb:     "climb",
	Wall:      "wall",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// PlayerStates lists every state that has a player animation.
var PlayerStates = []StateID{Idle, Run, Dash, Climb, Wall, Jump, Air, Land}
