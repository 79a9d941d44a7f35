package events

import "github.com/GatoImorrivel/vizia/pkg/entity"

// Dispatcher resolves event targets and delivers events to handlers.
// The engine's Context implements it.
type Dispatcher interface {
	// Origin returns the entity origin-tagged events are delivered
	// from, typically the focused entity.
	Origin() entity.Entity
	// Parent returns the parent of an entity, or false at the root.
	Parent(e entity.Entity) (entity.Entity, bool)
	// Deliver invokes the handler registered for the entity, if any.
	// Handlers may enqueue further events.
	Deliver(e entity.Entity, ev Event)
}

// Manager drains the event queue through a dispatcher.
type Manager struct {
	queue Queue
}

// NewManager creates an event manager with an empty queue.
func NewManager() *Manager {
	return &Manager{}
}

// Enqueue appends an event to the queue. Loop thread only.
func (m *Manager) Enqueue(ev Event) {
	m.queue.Push(ev)
}

// HasQueued reports whether any events are waiting. The continuation
// decision polls this at the end of every iteration.
func (m *Manager) HasQueued() bool {
	return m.queue.Len() > 0
}

// Clear discards all pending events. Used on teardown only.
func (m *Manager) Clear() {
	m.queue.Clear()
}

// Flush drains the queue once, dispatching every event to its resolved
// target chain in insertion order, and returns true iff at least one
// event was dispatched. Each dispatch may enqueue new events; callers
// run `for m.Flush(d) {}` to reach the fixed point.
//
// Termination is a caller obligation: a handler that unconditionally
// re-enqueues will starve the host loop permanently. The manager does
// not impose an iteration cap, keeping behavior deterministic for
// well-behaved handlers.
func (m *Manager) Flush(d Dispatcher) bool {
	pending := m.queue.Take()
	if len(pending) == 0 {
		return false
	}
	for _, ev := range pending {
		m.dispatch(d, ev)
	}
	return true
}

func (m *Manager) dispatch(d Dispatcher, ev Event) {
	target := ev.Target()
	if target.IsNull() {
		target = d.Origin()
		if target.IsNull() {
			target = entity.Root()
		}
	}

	d.Deliver(target, ev)
	if ev.Propagation() == PropagateDirect {
		return
	}
	for {
		parent, ok := d.Parent(target)
		if !ok {
			return
		}
		d.Deliver(parent, ev)
		target = parent
	}
}
