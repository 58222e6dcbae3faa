package systems

import (
	"math"

	"github.com/automoto/skyward/components"
	"github.com/automoto/skyward/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RayCaster answers whether a segment hits static geometry.
type RayCaster interface {
	// CastRay casts from (x, y) along (dx, dy) for at most maxDistance and
	// reports whether anything other than exclude was hit.
	CastRay(x, y, dx, dy, maxDistance float64, exclude *resolv.Object) bool
}

// SpaceRayCaster casts rays against the solid objects of a resolv space. The
// probe object covers the ray's bounds so the space's cells act as the
// broadphase; each candidate is then tested exactly.
type SpaceRayCaster struct {
	Space *resolv.Space
	Probe *resolv.Object
}

// NewSpaceRayCaster creates a caster with its own probe object in space.
func NewSpaceRayCaster(space *resolv.Space) *SpaceRayCaster {
	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvSensor)
	space.Add(probe)
	return &SpaceRayCaster{Space: space, Probe: probe}
}

func (c *SpaceRayCaster) CastRay(x, y, dx, dy, maxDistance float64, exclude *resolv.Object) bool {
	length := math.Hypot(dx, dy)
	if length == 0 || maxDistance <= 0 {
		return false
	}
	dx, dy = dx/length, dy/length
	ex, ey := x+dx*maxDistance, y+dy*maxDistance

	// Padded by a pixel: resolv leaves out an object's last pixel when mapping
	// it to cells, which would miss geometry the ray only touches.
	c.Probe.X = math.Min(x, ex) - 1
	c.Probe.Y = math.Min(y, ey) - 1
	c.Probe.W = math.Abs(ex-x) + 2
	c.Probe.H = math.Abs(ey-y) + 2
	c.Probe.Update()

	check := c.Probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if o == exclude || o == c.Probe {
			continue
		}
		if segmentHitsRect(x, y, dx, dy, maxDistance, o.X, o.Y, o.W, o.H) {
			return true
		}
	}
	return false
}

// segmentHitsRect is a slab test of the segment from (x, y) along the unit
// vector (dx, dy) for length against a closed rectangle. Touching counts.
func segmentHitsRect(x, y, dx, dy, length, rx, ry, rw, rh float64) bool {
	tmin, tmax := 0.0, length
	slab := func(origin, dir, lo, hi float64) bool {
		if dir == 0 {
			return origin >= lo && origin <= hi
		}
		t1, t2 := (lo-origin)/dir, (hi-origin)/dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		return tmin <= tmax
	}
	return slab(x, dx, rx, rx+rw) && slab(y, dy, ry, ry+rh)
}

// UpdateGroundSensor recomputes Grounded for every player by casting the
// sensor ray straight down from the collider's center.
func UpdateGroundSensor(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		sensor := components.GroundSensor.Get(e)
		if sensor.Probe == nil {
			sensor.Probe = NewSpaceRayCaster(space).Probe
		}
		caster := &SpaceRayCaster{Space: space, Probe: sensor.Probe}
		senseGround(caster, e)
	})
}

func senseGround(caster RayCaster, e *donburi.Entry) {
	player := components.Player.Get(e)
	sensor := components.GroundSensor.Get(e)
	obj := components.Object.Get(e)

	sensor.Origin = obj.Center()
	sensor.Hit = caster.CastRay(sensor.Origin.X, sensor.Origin.Y, 0, 1, sensor.Length, obj.Object)
	player.Grounded = sensor.Hit
}
