// Package cache stores computed per-entity geometry: bounds and clip
// regions, written by the visual update stage and the resize path.
//
// Entries are keyed by the full generational handle, so a stale handle
// can never read or clobber the geometry of whatever node reused its
// slot.
package cache

import "github.com/GatoImorrivel/vizia/pkg/entity"

// Rect is an axis-aligned box in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

// Cache is the geometry store for one window surface. Owned by the
// loop thread.
type Cache struct {
	bounds map[entity.Entity]Rect
	clip   map[entity.Entity]Rect
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		bounds: make(map[entity.Entity]Rect),
		clip:   make(map[entity.Entity]Rect),
	}
}

// SetBounds records an entity's layout box.
func (c *Cache) SetBounds(e entity.Entity, r Rect) {
	c.bounds[e] = r
}

// Bounds returns an entity's layout box.
func (c *Cache) Bounds(e entity.Entity) (Rect, bool) {
	r, ok := c.bounds[e]
	return r, ok
}

// SetWidth updates only the width of an entity's box.
func (c *Cache) SetWidth(e entity.Entity, w float64) {
	r := c.bounds[e]
	r.W = w
	c.bounds[e] = r
}

// SetHeight updates only the height of an entity's box.
func (c *Cache) SetHeight(e entity.Entity, h float64) {
	r := c.bounds[e]
	r.H = h
	c.bounds[e] = r
}

// SetClipRegion records an entity's clip box.
func (c *Cache) SetClipRegion(e entity.Entity, r Rect) {
	c.clip[e] = r
}

// ClipRegion returns an entity's clip box.
func (c *Cache) ClipRegion(e entity.Entity) (Rect, bool) {
	r, ok := c.clip[e]
	return r, ok
}

// Remove drops all geometry for a destroyed entity.
func (c *Cache) Remove(e entity.Entity) {
	delete(c.bounds, e)
	delete(c.clip, e)
}

// Len returns the number of entities with recorded bounds.
func (c *Cache) Len() int {
	return len(c.bounds)
}
