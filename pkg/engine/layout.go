package engine

import (
	"github.com/GatoImorrivel/vizia/pkg/cache"
	"github.com/GatoImorrivel/vizia/pkg/entity"
	"github.com/GatoImorrivel/vizia/pkg/style"
)

// Layouter computes entity geometry from resolved style. The built-in
// stack layouter is the default; applications with real layout needs
// plug in their own.
//
// Layout must be idempotent: identical style input produces
// bit-identical geometry.
type Layouter interface {
	Layout(tree style.Tree, styles *style.Store, geo *cache.Cache)
}

// stackLayouter stacks children top to bottom inside their parent's
// bounds. Dimensions resolve against the parent: pixels are absolute,
// percentages are of the parent dimension, auto and stretch fill it.
type stackLayouter struct{}

func (stackLayouter) Layout(tree style.Tree, styles *style.Store, geo *cache.Cache) {
	root := tree.Root()
	w, h := 0.0, 0.0
	if c, ok := styles.Computed(root); ok {
		w = c.Width.Resolve(0)
		h = c.Height.Resolve(0)
	}
	geo.SetBounds(root, cache.Rect{W: w, H: h})
	layoutChildren(tree, styles, geo, root, cache.Rect{W: w, H: h})
}

func layoutChildren(tree style.Tree, styles *style.Store, geo *cache.Cache, e entity.Entity, bounds cache.Rect) {
	y := bounds.Y
	for _, child := range tree.Children(e) {
		cw, ch := bounds.W, bounds.H
		if c, ok := styles.Computed(child); ok {
			cw = c.Width.Resolve(bounds.W)
			ch = c.Height.Resolve(bounds.H)
		}
		r := cache.Rect{X: bounds.X, Y: y, W: cw, H: ch}
		geo.SetBounds(child, r)
		y += ch
		layoutChildren(tree, styles, geo, child, r)
	}
}
