package style

import (
	stderrors "errors"

	"github.com/GatoImorrivel/vizia/pkg/entity"
	"github.com/GatoImorrivel/vizia/pkg/errors"
)

var errMalformedUnits = stderrors.New("malformed dimension")
var errMalformedFontSize = stderrors.New("non-positive font size")

// Tree is the subset of the UI tree the resolver walks.
type Tree interface {
	Root() entity.Entity
	Children(e entity.Entity) []entity.Entity
}

// Resolver runs the style resolution stage: it consumes the restyle
// flag, recomputes cascaded style for dirty entities in
// ancestor-to-descendant order, and marks relayout/redraw as a
// consequence of what changed.
type Resolver struct{}

// Process resolves pending style invalidations. A malformed value
// resolves to a documented fallback and is reported; the pipeline is
// never aborted. Returns the number of entities recomputed.
func (r *Resolver) Process(tree Tree, store *Store, inv *Invalidation) int {
	if !inv.ConsumeRestyle() {
		return 0
	}

	// Inherited properties flow down, so a dirty ancestor forces its
	// whole subtree through resolution.
	resolved := r.resolve(tree, store, inv, tree.Root(), Computed{
		Background: store.theme.BackgroundColor(),
		Foreground: store.theme.ForegroundColor(),
		FontSize:   store.theme.FontSize(),
	}, false)

	store.dirty.Clear()
	return resolved
}

func (r *Resolver) resolve(tree Tree, store *Store, inv *Invalidation, e entity.Entity, inherited Computed, ancestorDirty bool) int {
	dirty := ancestorDirty || store.dirty.Contains(e)
	resolved := 0

	next := inherited
	if dirty {
		next = r.compute(store, e, inherited)
		old, had := store.computed[e]
		if !had || old.Width != next.Width || old.Height != next.Height {
			inv.MarkRelayout()
		}
		if !had || old != next {
			inv.MarkRedraw()
		}
		store.computed[e] = next
		resolved++
	} else if c, ok := store.computed[e]; ok {
		next = c
	}

	for _, child := range tree.Children(e) {
		resolved += r.resolve(tree, store, inv, child, next, dirty)
	}
	return resolved
}

// compute cascades one entity: own declared values win, then inherited
// values (foreground, font size), then theme defaults. Malformed
// declarations fall back to auto / inherited and are reported.
func (r *Resolver) compute(store *Store, e entity.Entity, inherited Computed) Computed {
	c := Computed{
		Width:      r.checkUnits("style.width", e, store.width[e]),
		Height:     r.checkUnits("style.height", e, store.height[e]),
		Foreground: inherited.Foreground,
		FontSize:   inherited.FontSize,
	}

	if bg, ok := store.background[e]; ok {
		c.Background = bg
	} else if e == entity.Root() {
		c.Background = store.theme.BackgroundColor()
	}

	if fg, ok := store.foreground[e]; ok {
		c.Foreground = fg
	}

	if size, ok := store.fontSize[e]; ok {
		if size > 0 {
			c.FontSize = size
		} else {
			errors.Report(&errors.Error{
				Op: "style.Resolver.Process", Kind: errors.KindStyle,
				Entity: e.String(), Err: errMalformedFontSize,
			})
		}
	}
	return c
}

func (r *Resolver) checkUnits(op string, e entity.Entity, u Units) Units {
	if u.Valid() {
		return u
	}
	errors.Report(&errors.Error{
		Op: op, Kind: errors.KindStyle,
		Entity: e.String(), Err: errMalformedUnits,
	})
	return AutoUnits()
}
