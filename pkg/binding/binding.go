// Package binding implements the data-propagation stage: reactive
// stores whose mutations are turned into queued update events for the
// entities observing them.
//
// Stores are owned by the loop thread. Background work hands results
// to the loop through the event proxy instead of mutating stores
// directly.
package binding

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/GatoImorrivel/vizia/pkg/entity"
	"github.com/GatoImorrivel/vizia/pkg/events"
)

// Update is the event message delivered to every observer of a store
// whose value changed since the last settle point.
type Update struct {
	// Store is the name of the store that changed.
	Store string
}

// Store is the untyped surface the registry drives. Concrete stores
// are created with NewValue.
type Store interface {
	Name() string
	isDirty() bool
	clearDirty()
	observerSet() mapset.Set[entity.Entity]
}

// Registry tracks stores dirtied since the last settle point.
type Registry struct {
	stores []Store

	// OnMutate, when set, is invoked whenever a store becomes dirty so
	// the scheduler can request a frame.
	OnMutate func()
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// HasDirty reports whether any store changed since the last settle
// point.
func (r *Registry) HasDirty() bool {
	for _, s := range r.stores {
		if s.isDirty() {
			return true
		}
	}
	return false
}

// ProcessUpdates re-evaluates every dirty store, enqueueing one update
// event per observer, and returns the number of events enqueued. It
// runs once per iteration; it does not loop to a fixed point itself —
// secondary effects settle in the next iteration's event flush.
func (r *Registry) ProcessUpdates(enqueue func(events.Event)) int {
	emitted := 0
	for _, s := range r.stores {
		if !s.isDirty() {
			continue
		}
		s.clearDirty()

		observers := s.observerSet().ToSlice()
		// Set iteration order is random; deliver in stable entity order.
		sort.Slice(observers, func(i, j int) bool { return observers[i] < observers[j] })
		for _, obs := range observers {
			enqueue(events.New(Update{Store: s.Name()}).Direct(obs))
			emitted++
		}
	}
	return emitted
}

func (r *Registry) markDirty() {
	if r.OnMutate != nil {
		r.OnMutate()
	}
}

// Value is a reactive store holding a single comparable value.
type Value[T comparable] struct {
	registry *Registry
	name     string
	value    T
	dirty    bool
	obs      mapset.Set[entity.Entity]
}

// NewValue creates a store and registers it with the registry.
func NewValue[T comparable](r *Registry, name string, initial T) *Value[T] {
	v := &Value[T]{
		registry: r,
		name:     name,
		value:    initial,
		obs:      mapset.NewThreadUnsafeSet[entity.Entity](),
	}
	r.stores = append(r.stores, v)
	return v
}

// Name returns the store name carried in update events.
func (v *Value[T]) Name() string {
	return v.name
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.value
}

// Set stores a new value. The store is marked dirty only when the
// value actually changed, so redundant writes cost nothing downstream.
func (v *Value[T]) Set(value T) {
	if v.value == value {
		return
	}
	v.value = value
	if !v.dirty {
		v.dirty = true
		v.registry.markDirty()
	}
}

// Observe registers an entity to receive update events for this store.
func (v *Value[T]) Observe(e entity.Entity) {
	v.obs.Add(e)
}

// Ignore removes an observer. Destroyed entities must be removed here
// by their owner, or updates will target stale handles.
func (v *Value[T]) Ignore(e entity.Entity) {
	v.obs.Remove(e)
}

func (v *Value[T]) isDirty() bool                          { return v.dirty }
func (v *Value[T]) clearDirty()                            { v.dirty = false }
func (v *Value[T]) observerSet() mapset.Set[entity.Entity] { return v.obs }
