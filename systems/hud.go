package systems

import (
	"fmt"

	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/fonts"
	"github.com/automoto/skyward/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD prints the player's state, facing and dash readiness in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHUD {
		return
	}
	e, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	state := components.State.Get(e)
	motion := components.Motion.Get(e)

	dash := "ready"
	if d, ok := motion.Dashing(); ok {
		dash = d.Direction.String()
	} else if motion.DashCooldown.Active {
		dash = fmt.Sprintf("%.1fs", player.DashResetTime-motion.DashCooldown.Elapsed)
	}

	lines := []string{
		fmt.Sprintf("state  %s", state.CurrentState),
		fmt.Sprintf("facing %s  grounded %t", player.Facing, player.Grounded),
		fmt.Sprintf("dash   %s", dash),
	}
	face := fonts.HUD.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+12*(i+1), cfg.White)
	}
}
