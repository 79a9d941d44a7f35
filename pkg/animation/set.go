// Package animation provides the active-animation set queried by the
// frame scheduler and the timing primitives that drive it.
//
// The scheduling contract is deliberately narrow: the set answers
// "does anything still animate?" once per iteration, and Step applies
// interpolated values when the visual update stage runs. The set never
// talks to the platform; requesting repaints is the redraw arbiter's
// job.
package animation

import (
	"time"

	"github.com/GatoImorrivel/vizia/pkg/entity"
)

// TickFunc receives eased progress in [0, 1] each step. It typically
// writes an interpolated property into the style store.
type TickFunc func(e entity.Entity, progress float64)

// Animation is one active entry in the set: a target entity, a start
// time, a duration, and an easing curve.
type Animation struct {
	entity   entity.Entity
	start    time.Time
	duration time.Duration
	curve    Curve
	tick     TickFunc
	finished bool
}

// Entity returns the animated entity.
func (a *Animation) Entity() entity.Entity { return a.entity }

// Finished reports whether the animation completed and left the set.
func (a *Animation) Finished() bool { return a.finished }

// Set is the process-wide collection of active animations for one
// surface. Owned by the loop thread.
type Set struct {
	active []*Animation
}

// NewSet creates an empty animation set.
func NewSet() *Set {
	return &Set{}
}

// Animate schedules an animation starting now. A nil curve means
// linear; a non-positive duration completes on the first step.
func (s *Set) Animate(e entity.Entity, duration time.Duration, curve Curve, tick TickFunc) *Animation {
	if curve == nil {
		curve = Linear
	}
	a := &Animation{
		entity:   e,
		start:    Now(),
		duration: duration,
		curve:    curve,
		tick:     tick,
	}
	s.active = append(s.active, a)
	return a
}

// HasActive reports whether any animation has unfinished frames. This
// is the cheap predicate the scheduler queries once per iteration.
func (s *Set) HasActive() bool {
	return len(s.active) > 0
}

// Step advances every active animation to the current clock time,
// invoking each tick callback with eased progress. Completed entries
// tick once at progress 1 and are removed. Returns the number of
// animations stepped.
func (s *Set) Step() int {
	if len(s.active) == 0 {
		return 0
	}
	now := Now()
	stepped := 0
	remaining := s.active[:0]
	for _, a := range s.active {
		progress := 1.0
		if a.duration > 0 {
			progress = clampUnit(float64(now.Sub(a.start)) / float64(a.duration))
		}
		if a.tick != nil {
			a.tick(a.entity, a.curve(progress))
		}
		stepped++
		if progress >= 1 {
			a.finished = true
			continue
		}
		remaining = append(remaining, a)
	}
	s.active = remaining
	return stepped
}

// CancelEntity removes all animations targeting a destroyed entity
// without ticking them.
func (s *Set) CancelEntity(e entity.Entity) {
	remaining := s.active[:0]
	for _, a := range s.active {
		if a.entity == e {
			a.finished = true
			continue
		}
		remaining = append(remaining, a)
	}
	s.active = remaining
}
