package systems

import (
	"math"

	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates every body: gravity, linear damping and the speed
// clamps, then moves the collider against solid geometry.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := deltaTime(ecs)

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)

		body.Velocity.Y += cfg.Physics.Gravity * body.GravityScale * dt
		damp := 1 / (1 + dt*cfg.Physics.LinearDamping)
		body.Velocity.X *= damp
		body.Velocity.Y *= damp
		body.Velocity.Y = math.Max(cfg.Physics.MaxRiseSpeed, math.Min(cfg.Physics.MaxFallSpeed, body.Velocity.Y))

		if !e.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(e).Object
		moveHorizontal(body, obj, body.Velocity.X*dt)
		moveVertical(body, obj, body.Velocity.Y*dt)
		obj.Update()
	})
}

// moveHorizontal moves obj by dx, stopping flush against the first solid in
// the way and zeroing the horizontal velocity when blocked.
func moveHorizontal(body *components.BodyData, obj *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	check := obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		obj.X += dx
		return
	}
	target, blocked := obj.X+dx, false
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapOpen(obj.Y, obj.H, o.Y, o.H) {
			continue
		}
		if dx > 0 && o.X >= obj.X+obj.W && o.X-obj.W < target {
			target, blocked = o.X-obj.W, true
		} else if dx < 0 && o.X+o.W <= obj.X && o.X+o.W > target {
			target, blocked = o.X+o.W, true
		}
	}
	if blocked {
		body.Velocity.X = 0
	}
	obj.X = target
}

// moveVertical is moveHorizontal for the y axis. Landing places the
// collider's bottom exactly on the surface so the ground ray keeps touching it.
func moveVertical(body *components.BodyData, obj *resolv.Object, dy float64) {
	body.OnCeiling = false
	if dy == 0 {
		return
	}
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}
	check := obj.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		obj.Y += dy
		return
	}
	target, blocked := obj.Y+dy, false
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapOpen(obj.X, obj.W, o.X, o.W) {
			continue
		}
		if dy > 0 && o.Y >= obj.Y+obj.H && o.Y-obj.H < target {
			target, blocked = o.Y-obj.H, true
		} else if dy < 0 && o.Y+o.H <= obj.Y && o.Y+o.H > target {
			target, blocked = o.Y+o.H, true
		}
	}
	if blocked {
		if dy < 0 {
			body.OnCeiling = true
		}
		body.Velocity.Y = 0
	}
	obj.Y = target
}

// overlapOpen reports whether [a, a+al) and [b, b+bl) share interior points.
func overlapOpen(a, al, b, bl float64) bool {
	return a < b+bl && b < a+al
}
