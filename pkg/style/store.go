package style

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/GatoImorrivel/vizia/pkg/entity"
)

// Computed is the resolved style of one entity after cascade.
type Computed struct {
	Width      Units
	Height     Units
	Background Color
	Foreground Color
	FontSize   float64
}

// Store holds per-entity style properties and the dirty set consumed
// by the resolver. Owned by the loop thread.
type Store struct {
	theme     Theme
	dpiFactor float64

	width      map[entity.Entity]Units
	height     map[entity.Entity]Units
	background map[entity.Entity]Color
	foreground map[entity.Entity]Color
	fontSize   map[entity.Entity]float64

	computed map[entity.Entity]Computed
	dirty    mapset.Set[entity.Entity]
}

// NewStore creates a store with the default theme and a DPI factor of 1.
func NewStore() *Store {
	return &Store{
		theme:      DefaultTheme(),
		dpiFactor:  1,
		width:      make(map[entity.Entity]Units),
		height:     make(map[entity.Entity]Units),
		background: make(map[entity.Entity]Color),
		foreground: make(map[entity.Entity]Color),
		fontSize:   make(map[entity.Entity]float64),
		computed:   make(map[entity.Entity]Computed),
		// The first resolution pass computes the whole tree.
		dirty: mapset.NewThreadUnsafeSet[entity.Entity](entity.Root()),
	}
}

// MarkDirty schedules an entity for the next resolution pass. New
// entities are marked here when they are mounted.
func (s *Store) MarkDirty(e entity.Entity) {
	s.dirty.Add(e)
}

// DPIFactor returns the scale factor between physical and logical
// pixels.
func (s *Store) DPIFactor() float64 {
	return s.dpiFactor
}

// SetDPIFactor records a new scale factor.
func (s *Store) SetDPIFactor(f float64) {
	if f <= 0 {
		f = 1
	}
	s.dpiFactor = f
}

// Theme returns the active theme.
func (s *Store) Theme() Theme {
	return s.theme
}

// ApplyTheme swaps the theme defaults. Applying a theme with the same
// digest is a no-op; otherwise the whole tree is marked dirty through
// the root and true is returned.
func (s *Store) ApplyTheme(t Theme) bool {
	if t.Digest() == s.theme.Digest() {
		return false
	}
	s.theme = t
	s.dirty.Add(entity.Root())
	return true
}

// SetWidth sets an entity's width property and marks it dirty.
func (s *Store) SetWidth(e entity.Entity, u Units) {
	if cur, ok := s.width[e]; ok && cur == u {
		return
	}
	s.width[e] = u
	s.dirty.Add(e)
}

// SetHeight sets an entity's height property and marks it dirty.
func (s *Store) SetHeight(e entity.Entity, u Units) {
	if cur, ok := s.height[e]; ok && cur == u {
		return
	}
	s.height[e] = u
	s.dirty.Add(e)
}

// SetBackground sets an entity's background color.
func (s *Store) SetBackground(e entity.Entity, c Color) {
	if cur, ok := s.background[e]; ok && cur == c {
		return
	}
	s.background[e] = c
	s.dirty.Add(e)
}

// SetForeground sets an entity's foreground color. Foreground is
// inherited by descendants.
func (s *Store) SetForeground(e entity.Entity, c Color) {
	if cur, ok := s.foreground[e]; ok && cur == c {
		return
	}
	s.foreground[e] = c
	s.dirty.Add(e)
}

// SetFontSize sets an entity's font size. Font size is inherited by
// descendants.
func (s *Store) SetFontSize(e entity.Entity, size float64) {
	if cur, ok := s.fontSize[e]; ok && cur == size {
		return
	}
	s.fontSize[e] = size
	s.dirty.Add(e)
}

// Width returns an entity's declared width, defaulting to auto.
func (s *Store) Width(e entity.Entity) Units {
	return s.width[e]
}

// Height returns an entity's declared height, defaulting to auto.
func (s *Store) Height(e entity.Entity) Units {
	return s.height[e]
}

// Computed returns the last resolved style for an entity.
func (s *Store) Computed(e entity.Entity) (Computed, bool) {
	c, ok := s.computed[e]
	return c, ok
}

// HasDirty reports whether any entity awaits resolution.
func (s *Store) HasDirty() bool {
	return s.dirty.Cardinality() > 0
}

// Remove drops all properties and computed state for a destroyed
// entity.
func (s *Store) Remove(e entity.Entity) {
	delete(s.width, e)
	delete(s.height, e)
	delete(s.background, e)
	delete(s.foreground, e)
	delete(s.fontSize, e)
	delete(s.computed, e)
	s.dirty.Remove(e)
}
