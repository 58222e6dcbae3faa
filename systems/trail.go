package systems

import (
	"math"

	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/systems/factory"
	"github.com/automoto/skyward/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// trailAlphaEpsilon absorbs the rounding left after repeated decrements.
const trailAlphaEpsilon = 1e-9

// UpdateDashTrails fades every trail and removes the spent ones, then leaves a
// new trail behind each dashing player on the sampling cadence.
func UpdateDashTrails(ecs *ecs.ECS) {
	var spent []*donburi.Entry
	tags.Trail.Each(ecs.World, func(e *donburi.Entry) {
		trail := components.Trail.Get(e)
		trail.Alpha -= cfg.Trail.AlphaDecrement
		if trail.Alpha <= trailAlphaEpsilon {
			spent = append(spent, e)
		}
	})
	for _, e := range spent {
		e.Remove()
	}

	dt := deltaTime(ecs)
	var spawns []components.TrailData
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		dash, ok := components.Motion.Get(e).Dashing()
		if !ok || !trailSpawnDue(dash.Elapsed-dt, dash.Elapsed) {
			return
		}
		spawns = append(spawns, components.TrailData{
			Position: components.Object.Get(e).Center(),
			Facing:   components.Player.Get(e).Facing,
			Color:    cfg.Trail.Color,
			Alpha:    1,
		})
	})
	// Spawned outside the query so the world is not mutated mid-iteration
	for _, t := range spawns {
		factory.CreateTrail(ecs, t)
	}
}

// trailSpawnDue applies the configured cadence to one dash tick.
func trailSpawnDue(prev, cur float64) bool {
	if cfg.Trail.Cadence == cfg.TrailSampled {
		return trailSampled(cur, cfg.Trail.Frequency)
	}
	return trailDue(prev, cur, cfg.Trail.Frequency)
}

// trailSampled is the per-tick test floor(cur*100) % every == 0.
func trailSampled(cur float64, every int) bool {
	if every <= 0 {
		return false
	}
	return int(math.Floor(cur*100))%every == 0
}

// trailDue reports whether the centisecond count floor(t*100) reached a
// multiple of every during (prev, cur]. It fires once per cadence step at any
// tick rate, where sampling floor(cur*100) alone skips steps at 60 TPS.
func trailDue(prev, cur float64, every int) bool {
	if every <= 0 {
		return false
	}
	from := int(math.Floor(prev*100)) + 1
	to := int(math.Floor(cur * 100))
	for n := from; n <= to; n++ {
		if n%every == 0 {
			return true
		}
	}
	return false
}
