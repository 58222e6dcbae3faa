package factory

import (
	"github.com/automoto/skyward/archetypes"
	"github.com/automoto/skyward/assets/animations"
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet at (x, y). It fails before
// spawning anything when lib lacks one of the player clips.
func CreatePlayer(ecs *ecs.ECS, x, y float64, lib *animations.Library) (*donburi.Entry, error) {
	animData, err := BindPlayerAnimations(lib)
	if err != nil {
		return nil, err
	}

	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Speed:         cfg.Player.Speed,
		JumpForce:     cfg.Player.JumpForce,
		MaxJumpHeight: cfg.Player.MaxJumpHeight,
		DashSpeed:     cfg.Player.DashSpeed,
		DashMaxTime:   cfg.Player.DashMaxTime,
		DashResetTime: cfg.Player.DashResetTime,
		Facing:        components.FacingRight,
	})
	components.Body.SetValue(player, components.BodyData{
		GravityScale: cfg.Physics.GravityScale,
	})
	components.Motion.SetValue(player, components.NewMotion())
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Animation.Set(player, animData)
	components.Tint.SetValue(player, components.TintData{Color: cfg.White})

	sensor := components.GroundSensorData{Length: cfg.Player.GroundRayLength}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		space.Add(obj)
		sensor.Probe = resolv.NewObject(0, 0, 1, 1, tags.ResolvSensor)
		space.Add(sensor.Probe)
	}
	components.GroundSensor.SetValue(player, sensor)

	return player, nil
}
