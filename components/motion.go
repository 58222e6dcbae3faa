package components

import (
	"math"

	"github.com/yohamta/donburi"
)

// Maneuver is the single modal behavior the player is performing. Exactly one
// is active at a time, so a jump and a dash can never overlap.
type Maneuver interface {
	maneuver()
}

// Neutral means no jump arc or dash is in progress.
type Neutral struct{}

// Rising is an in-progress jump arc.
type Rising struct {
	Height float64 // accumulated rise
}

// Dashing is an in-progress dash locked to one direction.
type Dashing struct {
	Elapsed   float64 // seconds
	Traveled  float64 // px, used by the distance-boxed policy
	Direction DashDirection
}

func (*Neutral) maneuver() {}
func (*Rising) maneuver()  {}
func (*Dashing) maneuver() {}

// Timer is an optional elapsed-time counter.
type Timer struct {
	Active  bool
	Elapsed float64
}

func (t *Timer) Start() {
	t.Active = true
	t.Elapsed = 0
}

func (t *Timer) Stop() {
	t.Active = false
	t.Elapsed = 0
}

// Advance adds dt to an active timer and returns the new elapsed time.
func (t *Timer) Advance(dt float64) float64 {
	if t.Active {
		t.Elapsed += dt
	}
	return t.Elapsed
}

type MotionData struct {
	Maneuver     Maneuver
	JumpBuffer   Timer
	DashCooldown Timer
}

// NewMotion returns a motion with no active maneuver.
func NewMotion() MotionData {
	return MotionData{Maneuver: &Neutral{}}
}

// Rising returns the active jump arc, if any.
func (m *MotionData) Rising() (*Rising, bool) {
	r, ok := m.Maneuver.(*Rising)
	return r, ok
}

// Dashing returns the active dash, if any.
func (m *MotionData) Dashing() (*Dashing, bool) {
	d, ok := m.Maneuver.(*Dashing)
	return d, ok
}

// StartJump replaces the current maneuver with a fresh jump arc. It reports
// whether a dash was cancelled to make room for it.
func (m *MotionData) StartJump() (cancelledDash bool) {
	_, cancelledDash = m.Dashing()
	if cancelledDash {
		m.DashCooldown.Start()
	}
	m.Maneuver = &Rising{}
	return cancelledDash
}

// StopRising ends the jump arc, if one is active.
func (m *MotionData) StopRising() {
	if _, ok := m.Rising(); ok {
		m.Maneuver = &Neutral{}
	}
}

// CanDash reports whether a new dash may start.
func (m *MotionData) CanDash() bool {
	_, dashing := m.Dashing()
	return !dashing && !m.DashCooldown.Active
}

// StartDash locks a dash in direction, cancelling any jump arc. It is a no-op
// returning false when a dash is running, cooling down, or dir is DashNone.
func (m *MotionData) StartDash(dir DashDirection) bool {
	if dir == DashNone || !m.CanDash() {
		return false
	}
	m.Maneuver = &Dashing{Direction: dir}
	return true
}

// EndDash vacates the dash slot and starts the cooldown.
func (m *MotionData) EndDash() {
	if _, ok := m.Dashing(); !ok {
		return
	}
	m.Maneuver = &Neutral{}
	m.DashCooldown.Start()
}

var Motion = donburi.NewComponentType[MotionData]()

// DashDirection is one of the eight compass directions a dash snaps to.
type DashDirection int

const (
	DashNone DashDirection = iota
	DashNorth
	DashSouth
	DashWest
	DashEast
	DashNorthWest
	DashNorthEast
	DashSouthWest
	DashSouthEast
)

var dashDirectionNames = [...]string{"none", "north", "south", "west", "east", "northwest", "northeast", "southwest", "southeast"}

func (d DashDirection) String() string {
	if d < 0 || int(d) >= len(dashDirectionNames) {
		return "unknown"
	}
	return dashDirectionNames[d]
}

// ClassifyDash snaps a y-up intent vector to a compass direction using only the
// signs of its components. The zero vector yields DashNone.
func ClassifyDash(v Vector) DashDirection {
	switch {
	case v.X > 0 && v.Y == 0:
		return DashEast
	case v.X < 0 && v.Y == 0:
		return DashWest
	case v.X == 0 && v.Y > 0:
		return DashNorth
	case v.X == 0 && v.Y < 0:
		return DashSouth
	case v.X > 0 && v.Y > 0:
		return DashNorthEast
	case v.X > 0 && v.Y < 0:
		return DashSouthEast
	case v.X < 0 && v.Y > 0:
		return DashNorthWest
	case v.X < 0 && v.Y < 0:
		return DashSouthWest
	}
	return DashNone
}

// Facing returns the facing a dash forces, or false for vertical dashes.
func (d DashDirection) Facing() (Facing, bool) {
	switch d {
	case DashWest, DashNorthWest, DashSouthWest:
		return FacingLeft, true
	case DashEast, DashNorthEast, DashSouthEast:
		return FacingRight, true
	}
	return FacingRight, false
}

// Velocity returns the unit movement vector of the direction in y-down world
// space. Diagonals are normalized.
func (d DashDirection) Velocity() Vector {
	diag := 1 / math.Sqrt2
	switch d {
	case DashNorth:
		return Vector{X: 0, Y: -1}
	case DashSouth:
		return Vector{X: 0, Y: 1}
	case DashWest:
		return Vector{X: -1, Y: 0}
	case DashEast:
		return Vector{X: 1, Y: 0}
	case DashNorthWest:
		return Vector{X: -diag, Y: -diag}
	case DashNorthEast:
		return Vector{X: diag, Y: -diag}
	case DashSouthWest:
		return Vector{X: -diag, Y: diag}
	case DashSouthEast:
		return Vector{X: diag, Y: diag}
	}
	return Vector{}
}
