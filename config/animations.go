package config

import "time"

// AnimationDef describes one clip of the player spritesheet.
type AnimationDef struct {
	Name          string
	Row           int
	First         int
	Last          int
	FrameDuration time.Duration
	Loop          bool // Once-clips freeze on their last frame and report completion
}

// AnimationConfig holds the spritesheet layout shared by every clip.
type AnimationConfig struct {
	FrameWidth  int
	FrameHeight int
	Columns     int
	Rows        int
}

const playerFrameDuration = 60 * time.Millisecond

// PlayerAnimations maps each player state to its clip. Names are the lookup keys
// the animation binder resolves at startup.
var PlayerAnimations = map[StateID]AnimationDef{
	Run:   {Name: "player_run", Row: 0, First: 0, Last: 7, FrameDuration: playerFrameDuration, Loop: true},
	Idle:  {Name: "player_idle", Row: 1, First: 0, Last: 7, FrameDuration: playerFrameDuration, Loop: true},
	Climb: {Name: "player_climb", Row: 2, First: 0, Last: 7, FrameDuration: playerFrameDuration, Loop: true},
	Air:   {Name: "player_air", Row: 3, First: 0, Last: 7, FrameDuration: playerFrameDuration, Loop: true},
	Jump:  {Name: "player_jump", Row: 4, First: 0, Last: 5, FrameDuration: playerFrameDuration},
	Land:  {Name: "player_land", Row: 5, First: 0, Last: 5, FrameDuration: playerFrameDuration},
	Wall:  {Name: "player_wall", Row: 6, First: 0, Last: 0, FrameDuration: playerFrameDuration},
	Dash:  {Name: "player_dash", Row: 7, First: 0, Last: 5, FrameDuration: playerFrameDuration},
}
