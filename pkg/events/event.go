// Package events implements the ordered event queue at the heart of the
// frame pipeline: events are enqueued by the host loop, by handlers, and
// by background threads (through a Proxy), then drained to a fixed point
// once per frame.
package events

import "github.com/GatoImorrivel/vizia/pkg/entity"

// Propagation selects which entities an event is delivered to.
type Propagation int

const (
	// PropagateUp delivers to the target and then each ancestor up to
	// the root. This is the default.
	PropagateUp Propagation = iota
	// PropagateDirect delivers to the target only.
	PropagateDirect
)

// Event is a tagged payload plus a delivery policy. Events are
// immutable once queued: the builder methods return modified copies.
//
// An event with a null target is origin-tagged: delivery starts at the
// origin entity the dispatcher resolves at flush time (typically the
// focused or hovered entity).
type Event struct {
	// Message is the event payload.
	Message any

	target      entity.Entity
	propagation Propagation
}

// New creates an origin-tagged event: the dispatcher resolves the
// delivery origin when the event is flushed.
func New(message any) Event {
	return Event{Message: message, target: entity.Null}
}

// Direct returns a copy delivered only to the given entity.
func (e Event) Direct(target entity.Entity) Event {
	e.target = target
	e.propagation = PropagateDirect
	return e
}

// Up returns a copy delivered to the given entity and its ancestors.
func (e Event) Up(target entity.Entity) Event {
	e.target = target
	e.propagation = PropagateUp
	return e
}

// Target returns the explicit delivery target, or entity.Null for an
// origin-tagged event.
func (e Event) Target() entity.Entity {
	return e.target
}

// Propagation returns the delivery policy.
func (e Event) Propagation() Propagation {
	return e.propagation
}
