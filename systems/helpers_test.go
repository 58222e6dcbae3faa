package systems

import (
	"testing"

	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testDelta is binary-exact so elapsed-time thresholds land on known ticks.
const testDelta = 1.0 / 64

const floorY = 328.0

// newTestWorld builds a world with a floor and a player whose feet are at
// (x, feetY). feetY == floorY puts the player on the ground.
func newTestWorld(t *testing.T, x, feetY float64) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	w := ecs.NewECS(donburi.NewWorld())
	factory.CreateFrame(w, testDelta)
	factory.CreateSpace(w, 640, 368, 16, 16)
	factory.CreateWall(w, 0, floorY, 640, 40)

	lib, err := factory.NewPlayerAnimationLibrary()
	if err != nil {
		t.Fatalf("NewPlayerAnimationLibrary: %v", err)
	}
	p, err := factory.CreatePlayer(w, x, feetY, lib)
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}
	return w, p
}

// step polls the given keyboard actions as held for one tick and runs the
// player core.
func step(w *ecs.ECS, held ...cfg.ActionID) {
	hold(w, held...)
	UpdatePlayerCore(w)
}

// simulate is step with clip playback, tint and physics.
func simulate(w *ecs.ECS, held ...cfg.ActionID) {
	hold(w, held...)
	UpdateSimulation(w)
}

func hold(w *ecs.ECS, held ...cfg.ActionID) {
	in := getOrCreateInput(w)
	in.Keyboard.Swap()
	for _, id := range held {
		in.Keyboard.Current[id] = true
	}
}

// placeFeet teleports the player so its feet are at feetY.
func placeFeet(p *donburi.Entry, feetY float64) {
	obj := components.Object.Get(p)
	obj.Y = feetY - obj.H
	obj.Update()
}

func stateOf(p *donburi.Entry) cfg.StateID {
	return components.State.Get(p).CurrentState
}

// pushCycle queues a completion of the clip bound to state, as playback would.
func pushCycle(w *ecs.ECS, p *donburi.Entry, state cfg.StateID) {
	anim := components.Animation.Get(p)
	getOrCreateAnimationEvents(w).Push(components.AnimationCycleCompleted{
		Entity:      p.Entity(),
		AnimationID: anim.ByState[state],
	})
}

// keepPlayerConfig restores the global player config after the test.
func keepPlayerConfig(t *testing.T) {
	t.Helper()
	saved := cfg.Player
	t.Cleanup(func() { cfg.Player = saved })
}
