package animations

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrMissingAnimation is wrapped by every lookup failure of a required name.
var ErrMissingAnimation = errors.New("animation not found")

// AnimationID identifies a registered clip.
type AnimationID int

// Clip is the definition a playback instance is built from.
type Clip struct {
	Name          string
	Row           int
	First         int
	Last          int
	FrameDuration time.Duration
	Loop          bool
}

// Library is a name to clip lookup populated at startup.
type Library struct {
	clips  []Clip
	byName map[string]AnimationID
}

func NewLibrary() *Library {
	return &Library{byName: make(map[string]AnimationID)}
}

// Register adds a clip and returns its id. Names must be unique.
func (l *Library) Register(c Clip) (AnimationID, error) {
	if c.Name == "" {
		return 0, errors.New("animations: clip has no name")
	}
	if _, ok := l.byName[c.Name]; ok {
		return 0, fmt.Errorf("animations: clip %q already registered", c.Name)
	}
	id := AnimationID(len(l.clips))
	l.clips = append(l.clips, c)
	l.byName[c.Name] = id
	return id, nil
}

// Lookup returns the id registered under name.
func (l *Library) Lookup(name string) (AnimationID, bool) {
	id, ok := l.byName[name]
	return id, ok
}

// Clip returns the definition behind id.
func (l *Library) Clip(id AnimationID) (Clip, bool) {
	if id < 0 || int(id) >= len(l.clips) {
		return Clip{}, false
	}
	return l.clips[id], true
}

// Resolve looks up every name and fails with all missing names at once.
func (l *Library) Resolve(names ...string) (map[string]AnimationID, error) {
	ids := make(map[string]AnimationID, len(names))
	var missing []string
	for _, name := range names {
		id, ok := l.Lookup(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		ids[name] = id
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		errs := make([]error, 0, len(missing))
		for _, name := range missing {
			errs = append(errs, fmt.Errorf("%w: %q", ErrMissingAnimation, name))
		}
		return nil, errors.Join(errs...)
	}
	return ids, nil
}

// NewPlayback creates a fresh playback instance of the clip.
func (l *Library) NewPlayback(id AnimationID) *Animation {
	c, ok := l.Clip(id)
	if !ok {
		return nil
	}
	a := NewAnimation(c.First, c.Last, 1, c.FrameDuration)
	a.FreezeOnComplete = !c.Loop
	return a
}
