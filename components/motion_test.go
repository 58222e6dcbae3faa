package components

import (
	"math"
	"testing"
)

func TestClassifyDash(t *testing.T) {
	tests := []struct {
		v    Vector
		want DashDirection
	}{
		{Vector{}, DashNone},
		{Vector{X: 1}, DashEast},
		{Vector{X: -2}, DashWest},
		{Vector{Y: 1}, DashNorth},
		{Vector{Y: -0.3}, DashSouth},
		{Vector{X: 1, Y: 1}, DashNorthEast},
		{Vector{X: 3, Y: -1}, DashSouthEast},
		{Vector{X: -1, Y: 0.1}, DashNorthWest},
		{Vector{X: -1, Y: -1}, DashSouthWest},
	}
	for _, tt := range tests {
		if got := ClassifyDash(tt.v); got != tt.want {
			t.Errorf("ClassifyDash(%+v) = %s, want %s", tt.v, got, tt.want)
		}
	}
}

func TestDashDirectionVelocityIsUnit(t *testing.T) {
	for d := DashNorth; d <= DashSouthEast; d++ {
		v := d.Velocity()
		if l := math.Hypot(v.X, v.Y); math.Abs(l-1) > 1e-12 {
			t.Errorf("%s velocity length = %v, want 1", d, l)
		}
	}
	if v := DashNone.Velocity(); v != (Vector{}) {
		t.Errorf("none velocity = %+v, want zero", v)
	}
	// World space is y-down
	if v := DashNorth.Velocity(); v.Y >= 0 {
		t.Errorf("north velocity = %+v, want negative y", v)
	}
}

func TestDashDirectionFacing(t *testing.T) {
	tests := []struct {
		d      DashDirection
		want   Facing
		forces bool
	}{
		{DashEast, FacingRight, true},
		{DashNorthEast, FacingRight, true},
		{DashSouthEast, FacingRight, true},
		{DashWest, FacingLeft, true},
		{DashNorthWest, FacingLeft, true},
		{DashSouthWest, FacingLeft, true},
		{DashNorth, FacingRight, false},
		{DashSouth, FacingRight, false},
	}
	for _, tt := range tests {
		got, ok := tt.d.Facing()
		if ok != tt.forces || (ok && got != tt.want) {
			t.Errorf("%s.Facing() = %s, %v; want %s, %v", tt.d, got, ok, tt.want, tt.forces)
		}
	}
}

func TestManeuversAreExclusive(t *testing.T) {
	m := NewMotion()
	if _, ok := m.Rising(); ok {
		t.Fatal("new motion is rising")
	}

	if cancelled := m.StartJump(); cancelled {
		t.Fatal("jump from neutral reported a cancelled dash")
	}
	if !m.StartDash(DashEast) {
		t.Fatal("dash refused during a jump")
	}
	if _, ok := m.Rising(); ok {
		t.Fatal("jump survived the dash")
	}
	if m.StartDash(DashWest) {
		t.Fatal("second dash started while dashing")
	}

	if cancelled := m.StartJump(); !cancelled {
		t.Fatal("jump did not report the cancelled dash")
	}
	if _, ok := m.Dashing(); ok {
		t.Fatal("dash survived the jump")
	}
	if !m.DashCooldown.Active {
		t.Fatal("cancelled dash did not start the cooldown")
	}
	if m.CanDash() {
		t.Fatal("dash allowed during cooldown")
	}
}

func TestStartDashNoneIsNoop(t *testing.T) {
	m := NewMotion()
	m.StartJump()
	if m.StartDash(DashNone) {
		t.Fatal("dash started toward none")
	}
	if _, ok := m.Rising(); !ok {
		t.Fatal("aborted dash cancelled the jump")
	}
	if m.DashCooldown.Active {
		t.Fatal("aborted dash started the cooldown")
	}
}

func TestEndDash(t *testing.T) {
	m := NewMotion()
	m.EndDash()
	if m.DashCooldown.Active {
		t.Fatal("EndDash without a dash started the cooldown")
	}

	m.StartDash(DashSouth)
	m.EndDash()
	if _, ok := m.Maneuver.(*Neutral); !ok {
		t.Fatalf("maneuver after EndDash = %T, want neutral", m.Maneuver)
	}
	if !m.DashCooldown.Active || m.DashCooldown.Elapsed != 0 {
		t.Fatalf("cooldown = %+v, want fresh", m.DashCooldown)
	}
}

func TestTimer(t *testing.T) {
	var tm Timer
	if got := tm.Advance(0.5); got != 0 {
		t.Fatalf("inactive timer advanced to %v", got)
	}
	tm.Start()
	tm.Advance(0.25)
	if got := tm.Advance(0.25); got != 0.5 {
		t.Fatalf("elapsed = %v, want 0.5", got)
	}
	tm.Start()
	if tm.Elapsed != 0 {
		t.Fatal("restart kept elapsed time")
	}
	tm.Stop()
	if tm.Active || tm.Elapsed != 0 {
		t.Fatalf("stopped timer = %+v", tm)
	}
}

func TestStateSet(t *testing.T) {
	s := StateData{CurrentState: 1, StateTimer: 9}
	s.Set(1)
	if s.StateTimer != 9 {
		t.Fatal("setting the same state reset the timer")
	}
	s.Force(2)
	if s.CurrentState != 2 || s.StateTimer != 0 || !s.Forced {
		t.Fatalf("forced state = %+v", s)
	}
}
