package animations

import "time"

type Animation struct {
	First         int
	Last          int
	Step          int           // how many indices do we move per frame
	FrameDuration time.Duration // how long each frame stays on screen
	elapsed       time.Duration
	frame         int
	Looped        bool // set once the clip has played through at least once
	// If true, stay on last frame instead of looping
	FreezeOnComplete bool
}

// Update advances the clip by dt and reports whether a cycle ended during it.
func (a *Animation) Update(dt time.Duration) (cycleEnded bool) {
	if a.FrameDuration <= 0 {
		return false
	}
	if a.FreezeOnComplete && a.Looped {
		return false
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameDuration {
		a.elapsed -= a.FrameDuration
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			cycleEnded = true
			if a.FreezeOnComplete {
				// Stay on last frame
				a.frame = a.Last
				a.elapsed = 0
				return cycleEnded
			}
			// loop back to the beginning
			a.frame = a.First
		}
	}
	return cycleEnded
}

func (a *Animation) Frame() int {
	return a.frame
}

// Finished reports whether a freeze-on-complete clip has reached its end.
func (a *Animation) Finished() bool {
	return a.FreezeOnComplete && a.Looped
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(first, last, step int, frameDuration time.Duration) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:         first,
		Last:          last,
		Step:          step,
		FrameDuration: frameDuration,
		frame:         first,
		Looped:        false,
	}
}
