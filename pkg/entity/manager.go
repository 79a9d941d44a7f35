package entity

import (
	stderrors "errors"

	"github.com/GatoImorrivel/vizia/pkg/errors"
)

var errStale = stderrors.New("generation mismatch")
var errRoot = stderrors.New("root entity cannot be destroyed")

// Manager is an arena of entity slots. Indices are dense and reused;
// each slot carries a generation counter that is bumped on destroy so
// stale handles can be detected on every dereference.
//
// The manager is owned by the loop thread and is not safe for
// concurrent use.
type Manager struct {
	generations []uint32
	alive       []bool
	free        []uint32
}

// NewManager creates a manager with the root entity already live.
func NewManager() *Manager {
	return &Manager{
		generations: []uint32{0},
		alive:       []bool{true},
	}
}

// Create allocates a new live entity, reusing a destroyed slot when
// one is available.
func (m *Manager) Create() Entity {
	if n := len(m.free); n > 0 {
		index := m.free[n-1]
		m.free = m.free[:n-1]
		m.alive[index] = true
		return New(index, m.generations[index])
	}
	index := uint32(len(m.generations))
	m.generations = append(m.generations, 0)
	m.alive = append(m.alive, true)
	return New(index, 0)
}

// Destroy invalidates every outstanding handle with this entity's
// index by bumping the slot generation. Destroying the root or a
// stale handle is an error.
func (m *Manager) Destroy(e Entity) error {
	if e == Root() {
		return &errors.Error{Op: "entity.Manager.Destroy", Kind: errors.KindStaleEntity, Entity: e.String(), Err: errRoot}
	}
	if !m.Alive(e) {
		return m.staleError("entity.Manager.Destroy", e)
	}
	index := e.Index()
	m.generations[index]++
	m.alive[index] = false
	m.free = append(m.free, index)
	return nil
}

// Alive reports whether the handle resolves to a live node: the slot
// must exist, be live, and match the handle's generation.
func (m *Manager) Alive(e Entity) bool {
	if e.IsNull() {
		return false
	}
	index := e.Index()
	if index >= uint32(len(m.generations)) {
		return false
	}
	return m.alive[index] && m.generations[index] == e.Generation()
}

// Check returns a stale-handle error unless e is live.
func (m *Manager) Check(op string, e Entity) error {
	if m.Alive(e) {
		return nil
	}
	return m.staleError(op, e)
}

// Count returns the number of live entities, including the root.
func (m *Manager) Count() int {
	n := 0
	for _, a := range m.alive {
		if a {
			n++
		}
	}
	return n
}

func (m *Manager) staleError(op string, e Entity) error {
	return &errors.Error{Op: op, Kind: errors.KindStaleEntity, Entity: e.String(), Err: errStale}
}
