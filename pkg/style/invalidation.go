// Package style holds the per-surface invalidation state and the style
// resolution stage of the frame pipeline. The concrete cascade
// algorithm is out of scope; what lives here is the property store,
// the dirty bookkeeping, and the resolution pass that consumes it.
package style

// Invalidation is the dirty state of one window surface. It is passed
// explicitly through the pipeline call chain rather than held in
// process globals, preserving "set many times, cleared once" semantics
// per frame.
type Invalidation struct {
	restyle  bool
	relayout bool
	redraw   bool
}

// MarkRestyle asserts that style resolution must run. Idempotent.
func (i *Invalidation) MarkRestyle() { i.restyle = true }

// MarkRelayout asserts that geometry must be recomputed. Idempotent.
func (i *Invalidation) MarkRelayout() { i.relayout = true }

// MarkRedraw asserts that the surface must be repainted. Idempotent.
func (i *Invalidation) MarkRedraw() { i.redraw = true }

// NeedsRestyle reports pending style work.
func (i *Invalidation) NeedsRestyle() bool { return i.restyle }

// NeedsRelayout reports pending layout work.
func (i *Invalidation) NeedsRelayout() bool { return i.relayout }

// NeedsRedraw reports a pending repaint.
func (i *Invalidation) NeedsRedraw() bool { return i.redraw }

// ConsumeRestyle clears the restyle flag, returning whether it was
// set. Called exactly once per frame, by the style resolution stage.
func (i *Invalidation) ConsumeRestyle() bool {
	was := i.restyle
	i.restyle = false
	return was
}

// ConsumeRelayout clears the relayout flag, returning whether it was
// set. Called exactly once per frame, by the visual update stage.
func (i *Invalidation) ConsumeRelayout() bool {
	was := i.relayout
	i.relayout = false
	return was
}

// ConsumeRedraw clears the redraw flag, returning whether it was set.
// Called exactly once per frame, by the redraw arbiter.
func (i *Invalidation) ConsumeRedraw() bool {
	was := i.redraw
	i.redraw = false
	return was
}
