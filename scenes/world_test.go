package scenes

import (
	"errors"
	"testing"

	"github.com/automoto/skyward/assets/animations"
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
)

func TestNewPlatformerSceneDefault(t *testing.T) {
	ps, err := NewPlatformerScene(Options{})
	if err != nil {
		t.Fatalf("NewPlatformerScene: %v", err)
	}
	defer ps.Close()

	p := ps.Player()
	if p == nil || !p.Valid() {
		t.Fatal("no player spawned")
	}
	obj := components.Object.Get(p)
	if feet := obj.Y + obj.H; feet != 304 {
		t.Errorf("player feet at %v, want the sandbox spawn at 304", feet)
	}
	if got := components.State.Get(p).CurrentState; got != cfg.Idle {
		t.Errorf("initial state = %s, want idle", got)
	}
}

func TestNewPlatformerSceneErrors(t *testing.T) {
	partial := animations.NewLibrary()
	if _, err := partial.Register(animations.Clip{Name: cfg.PlayerAnimations[cfg.Idle].Name}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{"unknown level", Options{Level: "nowhere"}, nil},
		{"missing clips", Options{Library: partial}, animations.ErrMissingAnimation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, err := NewPlatformerScene(tt.opts)
			if err == nil {
				ps.Close()
				t.Fatal("NewPlatformerScene succeeded")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v does not wrap %v", err, tt.wantErr)
			}
		})
	}
}
