package factory

import (
	"fmt"

	"github.com/automoto/skyward/assets/animations"
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
)

// NewPlayerAnimationLibrary registers every clip of the player spritesheet.
func NewPlayerAnimationLibrary() (*animations.Library, error) {
	lib := animations.NewLibrary()
	for _, state := range cfg.PlayerStates {
		def, ok := cfg.PlayerAnimations[state]
		if !ok {
			continue
		}
		if _, err := lib.Register(animations.Clip{
			Name:          def.Name,
			Row:           def.Row,
			First:         def.First,
			Last:          def.Last,
			FrameDuration: def.FrameDuration,
			Loop:          def.Loop,
		}); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// BindPlayerAnimations resolves the clip of every player state in lib. Any
// missing name is a configuration error and every one is reported.
func BindPlayerAnimations(lib *animations.Library) (*components.AnimationData, error) {
	names := make([]string, 0, len(cfg.PlayerStates))
	for _, state := range cfg.PlayerStates {
		names = append(names, cfg.PlayerAnimations[state].Name)
	}
	ids, err := lib.Resolve(names...)
	if err != nil {
		return nil, fmt.Errorf("player animations: %w", err)
	}

	animData := &components.AnimationData{
		Library: lib,
		ByState: make(map[cfg.StateID]animations.AnimationID, len(cfg.PlayerStates)),
	}
	for _, state := range cfg.PlayerStates {
		animData.ByState[state] = ids[cfg.PlayerAnimations[state].Name]
	}
	animData.SetAnimation(animData.ByState[cfg.Idle])
	return animData, nil
}
