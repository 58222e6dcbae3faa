package systems

import (
	"testing"

	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
)

func TestApplyTuningUpdatesLivePlayer(t *testing.T) {
	keepPlayerConfig(t)
	savedInput := cfg.Input
	t.Cleanup(func() { cfg.Input = savedInput })

	w, p := newTestWorld(t, 100, floorY)
	jumpForce := cfg.Player.JumpForce
	tuning, err := cfg.ParseTuning([]byte("speed: 10000\ndash_speed: 400\nmax_jump_height: 64\nanalog_deadzone: 0.25\n"))
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}

	ApplyTuning(w, tuning)

	player := components.Player.Get(p)
	if player.Speed != 10000 || player.DashSpeed != 400 || player.MaxJumpHeight != 64 {
		t.Fatalf("player = %+v, want tuned speed, dash speed and jump height", *player)
	}
	if player.JumpForce != jumpForce {
		t.Fatalf("untouched JumpForce changed to %v", player.JumpForce)
	}
	if cfg.Input.AnalogDeadzone != 0.25 {
		t.Fatalf("deadzone = %v, want 0.25", cfg.Input.AnalogDeadzone)
	}

	step(w, cfg.ActionMoveRight)
	if got, want := components.Body.Get(p).Velocity.X, 10000*testDelta; got != want {
		t.Fatalf("run velocity = %v, want %v", got, want)
	}
}

func TestApplyNilTuning(t *testing.T) {
	w, p := newTestWorld(t, 100, floorY)
	before := *components.Player.Get(p)
	ApplyTuning(w, nil)
	if after := *components.Player.Get(p); after != before {
		t.Fatalf("nil tuning changed the player: %+v", after)
	}
}
