package systems

import (
	"math"
	"testing"

	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/systems/factory"
	"github.com/automoto/skyward/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func countTrails(w *ecs.ECS) int {
	return donburi.NewQuery(filter.Contains(tags.Trail)).Count(w.World)
}

func TestTrailFadesAndIsRemoved(t *testing.T) {
	w, _ := newTestWorld(t, 100, floorY)
	trail := factory.CreateTrail(w, components.TrailData{Alpha: 1, Color: cfg.Trail.Color})

	for i := 1; i <= 24; i++ {
		step(w)
		if !trail.Valid() {
			t.Fatalf("trail removed after %d ticks", i)
		}
		want := 1 - float64(i)*cfg.Trail.AlphaDecrement
		if got := components.Trail.Get(trail).Alpha; math.Abs(got-want) > 1e-9 {
			t.Fatalf("tick %d: alpha = %v, want %v", i, got, want)
		}
	}

	step(w)
	if trail.Valid() {
		t.Fatal("trail still alive after 25 ticks")
	}
	if n := countTrails(w); n != 0 {
		t.Fatalf("trails = %d, want 0", n)
	}
}

func TestDashLeavesTrails(t *testing.T) {
	w, p := newTestWorld(t, 100, 200)

	counts := make([]int, 0, 13)
	step(w, cfg.ActionDash, cfg.ActionMoveRight)
	counts = append(counts, countTrails(w))
	for i := 2; i <= 13; i++ {
		step(w)
		counts = append(counts, countTrails(w))
	}

	// Centisecond 7 is crossed on tick 5 and 14 on tick 9
	for i, n := range counts {
		tick := i + 1
		want := 0
		switch {
		case tick >= 9:
			want = 2
		case tick >= 5:
			want = 1
		}
		if n != want {
			t.Fatalf("tick %d: trails = %d, want %d", tick, n, want)
		}
	}

	if _, ok := components.Motion.Get(p).Dashing(); ok {
		t.Fatal("dash still running")
	}
	for i := 0; i < 5; i++ {
		step(w)
	}
	if n := countTrails(w); n != 2 {
		t.Fatalf("trails after the dash = %d, want 2 still fading", n)
	}
}

func TestTrailDue(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur float64
		every     int
		want      bool
	}{
		{"reaches the step", 0, 0.07, 7, true},
		{"lands on the step", 0.06, 0.07, 7, true},
		{"past the step", 0.07, 0.08, 7, false},
		{"before the step", 0.01, 0.06, 7, false},
		{"crosses the step", 0.135, 0.151, 7, true},
		{"zero cadence", 0, 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trailDue(tt.prev, tt.cur, tt.every); got != tt.want {
				t.Errorf("trailDue(%v, %v, %d) = %v, want %v", tt.prev, tt.cur, tt.every, got, tt.want)
			}
		})
	}
}

func TestTrailCadenceAtSixtyTPS(t *testing.T) {
	dt := 1.0 / 60
	due := 0
	for k := 1; k <= 12; k++ {
		if trailDue(float64(k-1)*dt, float64(k)*dt, 7) {
			due++
		}
	}
	if due != 2 {
		t.Fatalf("trails over a 0.2s dash at 60 TPS = %d, want 2", due)
	}
}

func TestTrailSampledCadence(t *testing.T) {
	tests := []struct {
		cur  float64
		want bool
	}{
		{0, true},
		{0.065, false},
		{0.07, true},
		{0.079, true},
		{0.08, false},
		{0.14, true},
	}
	for _, tt := range tests {
		if got := trailSampled(tt.cur, 7); got != tt.want {
			t.Errorf("trailSampled(%v, 7) = %v, want %v", tt.cur, got, tt.want)
		}
	}
	if trailSampled(0.07, 0) {
		t.Error("zero frequency spawned a trail")
	}
}

func TestTrailCadenceSwitch(t *testing.T) {
	saved := cfg.Trail.Cadence
	t.Cleanup(func() { cfg.Trail.Cadence = saved })

	tests := []struct {
		cadence cfg.TrailCadence
		want    int
	}{
		{cfg.TrailCrossing, 2},
		// 100/60 centiseconds per tick never lands on a multiple of 7 in 0.2s
		{cfg.TrailSampled, 0},
	}
	dt := 1.0 / 60
	for _, tt := range tests {
		cfg.Trail.Cadence = tt.cadence
		due := 0
		for k := 1; k <= 12; k++ {
			if trailSpawnDue(float64(k-1)*dt, float64(k)*dt) {
				due++
			}
		}
		if due != tt.want {
			t.Errorf("cadence %d: trails at 60 TPS = %d, want %d", tt.cadence, due, tt.want)
		}
	}
}
