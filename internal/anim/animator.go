package anim

import (
	"go.uber.org/zap"

	"coinarena/internal/locomotion"
)

// Clip is one playable animation.
type Clip interface {
	Play()
	// Stop halts the clip and rewinds it.
	Stop()
	Advance(dt float32)
}

// Animator keeps exactly one clip playing: the one for the current state.
type Animator struct {
	clips  map[locomotion.State]Clip
	active locomotion.State
	set    bool
	log    *zap.Logger
}

func NewAnimator(clips map[locomotion.State]Clip, log *zap.Logger) *Animator {
	if clips == nil {
		clips = map[locomotion.State]Clip{}
	}
	return &Animator{clips: clips, log: log}
}

// Active returns the state whose clip is playing.
func (a *Animator) Active() (locomotion.State, bool) {
	return a.active, a.set
}

// Set switches to the clip for s. Switching stops every other clip; asking
// for the state already playing changes nothing.
func (a *Animator) Set(s locomotion.State) {
	s = a.resolve(s)
	if a.set && a.active == s {
		return
	}

	clip, ok := a.clips[s]
	if !ok {
		return
	}
	for state, c := range a.clips {
		if state != s {
			c.Stop()
		}
	}
	clip.Play()

	if a.set {
		a.log.Debug("animation switched", zap.Stringer("from", a.active), zap.Stringer("to", s))
	}
	a.active = s
	a.set = true
}

// Update advances the playing clip.
func (a *Animator) Update(dt float32) {
	if !a.set {
		return
	}
	a.clips[a.active].Advance(dt)
}

// resolve falls back to the walk clip when no run clip is loaded.
func (a *Animator) resolve(s locomotion.State) locomotion.State {
	if _, ok := a.clips[s]; !ok && s == locomotion.Run {
		return locomotion.Walk
	}
	return s
}
