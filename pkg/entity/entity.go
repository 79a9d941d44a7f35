// Package entity provides generationally-versioned handles to UI tree nodes.
//
// An Entity is a value handle, cheap to copy and safe to hold across
// frames: when the underlying node is destroyed its slot generation is
// bumped, so every outstanding handle to it goes stale instead of
// silently aliasing whatever node reuses the slot.
package entity

import (
	"fmt"
	"math"
)

// Entity identifies a node in the UI tree. The low 32 bits are a dense
// slot index, the high 32 bits a generation counter.
type Entity uint64

// Null is the invalid entity. It never resolves to a live node.
const Null Entity = Entity(math.MaxUint64)

// Root returns the reserved root entity. It is always valid and is
// never destroyed.
func Root() Entity {
	return New(0, 0)
}

// New builds an entity handle from an index and a generation.
func New(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the dense slot index of the handle.
func (e Entity) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Generation returns the generation the handle was created with.
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// IsNull reports whether the handle is the null entity.
func (e Entity) IsNull() bool {
	return e == Null
}

func (e Entity) String() string {
	if e.IsNull() {
		return "Entity(null)"
	}
	return fmt.Sprintf("Entity(%d:%d)", e.Index(), e.Generation())
}
