// Package engine owns the frame pipeline: a strictly ordered sequence
// of stages run once per loop iteration, ending in a continuation
// decision that tells the host loop whether to wait, poll, or exit.
package engine

import (
	stderrors "errors"

	"github.com/GatoImorrivel/vizia/pkg/accessibility"
	"github.com/GatoImorrivel/vizia/pkg/animation"
	"github.com/GatoImorrivel/vizia/pkg/binding"
	"github.com/GatoImorrivel/vizia/pkg/cache"
	"github.com/GatoImorrivel/vizia/pkg/entity"
	"github.com/GatoImorrivel/vizia/pkg/errors"
	"github.com/GatoImorrivel/vizia/pkg/events"
	"github.com/GatoImorrivel/vizia/pkg/platform"
	"github.com/GatoImorrivel/vizia/pkg/style"
)

// Context is the exclusive loop-thread owner of the UI tree and every
// store the pipeline stages read and write. It implements
// events.Dispatcher for the flush stage and style.Tree for the
// resolver.
//
// Nothing in Context is safe for concurrent use. Background goroutines
// reach the loop through the event proxy only.
type Context struct {
	entities *entity.Manager
	parents  map[entity.Entity]entity.Entity
	children map[entity.Entity][]entity.Entity
	views    map[entity.Entity]View

	focused   entity.Entity
	hovered   entity.Entity
	modifiers platform.Modifiers
	mouseX    float64
	mouseY    float64

	events     *events.Manager
	bindings   *binding.Registry
	styles     *style.Store
	cache      *cache.Cache
	animations *animation.Set
	access     *accessibility.Service

	// inv is the per-surface invalidation value, threaded explicitly
	// through the pipeline stages.
	inv style.Invalidation
}

// NewContext creates a context with an empty tree rooted at the
// permanent root entity. A nil adapter disables accessibility output.
func NewContext(adapter accessibility.Adapter) *Context {
	return &Context{
		entities:   entity.NewManager(),
		parents:    make(map[entity.Entity]entity.Entity),
		children:   make(map[entity.Entity][]entity.Entity),
		views:      make(map[entity.Entity]View),
		focused:    entity.Root(),
		hovered:    entity.Root(),
		events:     events.NewManager(),
		bindings:   binding.NewRegistry(),
		styles:     style.NewStore(),
		cache:      cache.New(),
		animations: animation.NewSet(),
		access:     accessibility.NewService(adapter),
	}
}

// Root returns the permanent root entity.
func (cx *Context) Root() entity.Entity {
	return entity.Root()
}

// CreateEntity mounts a new entity under parent. The new entity is
// scheduled for style resolution and the accessibility tree is marked
// changed.
func (cx *Context) CreateEntity(parent entity.Entity) (entity.Entity, error) {
	if err := cx.entities.Check("engine.Context.CreateEntity", parent); err != nil {
		return entity.Null, err
	}
	e := cx.entities.Create()
	cx.parents[e] = parent
	cx.children[parent] = append(cx.children[parent], e)
	cx.styles.MarkDirty(e)
	cx.inv.MarkRestyle()
	cx.access.MarkDirty(parent)
	return e, nil
}

// SetView installs the event handler for an entity, replacing any
// previous one.
func (cx *Context) SetView(e entity.Entity, v View) error {
	if err := cx.entities.Check("engine.Context.SetView", e); err != nil {
		return err
	}
	cx.views[e] = v
	cx.access.MarkDirty(e)
	return nil
}

// Destroy removes an entity and its whole subtree. Every store drops
// its state so the freed slots can be reused without aliasing; the
// root cannot be destroyed.
func (cx *Context) Destroy(e entity.Entity) error {
	if err := cx.entities.Check("engine.Context.Destroy", e); err != nil {
		return err
	}

	for _, child := range append([]entity.Entity(nil), cx.children[e]...) {
		if err := cx.Destroy(child); err != nil {
			return err
		}
	}

	if err := cx.entities.Destroy(e); err != nil {
		return err
	}

	parent := cx.parents[e]
	siblings := cx.children[parent]
	for i, s := range siblings {
		if s == e {
			cx.children[parent] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	delete(cx.parents, e)
	delete(cx.children, e)
	delete(cx.views, e)

	cx.styles.Remove(e)
	cx.cache.Remove(e)
	cx.animations.CancelEntity(e)
	cx.access.Remove(e)
	cx.inv.MarkRestyle()
	cx.inv.MarkRelayout()

	if cx.focused == e {
		cx.focused = entity.Root()
	}
	if cx.hovered == e {
		cx.hovered = entity.Root()
	}
	return nil
}

// EntityCount returns the number of live entities, including the root.
func (cx *Context) EntityCount() int {
	return cx.entities.Count()
}

// Parent returns an entity's parent, or false at the root.
func (cx *Context) Parent(e entity.Entity) (entity.Entity, bool) {
	if e == entity.Root() {
		return entity.Null, false
	}
	p, ok := cx.parents[e]
	return p, ok
}

// Children returns an entity's children in mount order.
func (cx *Context) Children(e entity.Entity) []entity.Entity {
	return cx.children[e]
}

// Origin returns the entity origin-tagged events resolve to: the
// focused entity, which is never null.
func (cx *Context) Origin() entity.Entity {
	return cx.focused
}

// Deliver invokes the view registered for an entity. Stale handles are
// reported and skipped; a panicking handler is captured without taking
// down the loop. Redraw-request messages are honored here so synthetic
// redraw events work without a registered view.
func (cx *Context) Deliver(e entity.Entity, ev events.Event) {
	if _, ok := ev.Message.(platform.RedrawRequested); ok {
		cx.inv.MarkRedraw()
	}
	if err := cx.entities.Check("engine.Context.Deliver", e); err != nil {
		var verr *errors.Error
		if stderrors.As(err, &verr) {
			errors.Report(verr)
		}
		return
	}
	v, ok := cx.views[e]
	if !ok {
		return
	}
	defer errors.Recover("engine.Context.Deliver")
	v.OnEvent(cx, ev)
}

// Emit enqueues an origin-tagged event.
func (cx *Context) Emit(message any) {
	cx.events.Enqueue(events.New(message))
}

// EmitTo enqueues an event delivered only to the given entity.
func (cx *Context) EmitTo(target entity.Entity, message any) {
	cx.events.Enqueue(events.New(message).Direct(target))
}

// SetFocus moves input focus. Focus changes reach assistive technology
// with the next tree snapshot.
func (cx *Context) SetFocus(e entity.Entity) error {
	if err := cx.entities.Check("engine.Context.SetFocus", e); err != nil {
		return err
	}
	if cx.focused != e {
		cx.focused = e
		cx.access.MarkDirty(e)
	}
	return nil
}

// Focused returns the entity holding input focus.
func (cx *Context) Focused() entity.Entity {
	return cx.focused
}

// Hovered returns the entity under the cursor.
func (cx *Context) Hovered() entity.Entity {
	return cx.hovered
}

// Modifiers returns the current keyboard modifier state.
func (cx *Context) Modifiers() platform.Modifiers {
	return cx.modifiers
}

// MousePosition returns the last cursor position in logical
// coordinates.
func (cx *Context) MousePosition() (float64, float64) {
	return cx.mouseX, cx.mouseY
}

// Styles returns the style store.
func (cx *Context) Styles() *style.Store {
	return cx.styles
}

// Cache returns the geometry cache.
func (cx *Context) Cache() *cache.Cache {
	return cx.cache
}

// Bindings returns the reactive store registry.
func (cx *Context) Bindings() *binding.Registry {
	return cx.bindings
}

// Animations returns the animation set.
func (cx *Context) Animations() *animation.Set {
	return cx.animations
}

// hitTest returns the deepest entity whose cached bounds contain the
// point, falling back to the root.
func (cx *Context) hitTest(x, y float64) entity.Entity {
	hit := entity.Root()
	cx.hitTestWalk(entity.Root(), x, y, &hit)
	return hit
}

func (cx *Context) hitTestWalk(e entity.Entity, x, y float64, hit *entity.Entity) {
	if b, ok := cx.cache.Bounds(e); ok && contains(b, x, y) {
		*hit = e
	}
	for _, child := range cx.children[e] {
		cx.hitTestWalk(child, x, y, hit)
	}
}

func contains(b cache.Rect, x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// ProcessTreeUpdates runs the accessibility sync stage. When nothing
// in the tree changed since the last sync the adapter is not invoked
// and no snapshot is allocated.
func (cx *Context) ProcessTreeUpdates() {
	cx.access.Flush(cx.buildTreeUpdate)
}

// buildTreeUpdate walks the tree parent-before-child and collects one
// node per describing view, always including the root as the window
// node and folding the focus marker into the snapshot.
func (cx *Context) buildTreeUpdate() accessibility.TreeUpdate {
	rootID := accessibility.IDFor(entity.Root())
	focus := accessibility.IDFor(cx.focused)

	update := accessibility.TreeUpdate{
		Tree:  &accessibility.Tree{Root: rootID},
		Focus: &focus,
	}

	var walk func(e entity.Entity)
	walk = func(e entity.Entity) {
		node := accessibility.Node{}
		describe := false
		if e == entity.Root() {
			node.Role = accessibility.RoleWindow
			describe = true
		}
		if d, ok := cx.views[e].(accessibility.Describer); ok {
			d.DescribeNode(&node)
			describe = true
		}
		if describe {
			if b, ok := cx.cache.Bounds(e); ok {
				node.Bounds = b
			}
			update.Nodes = append(update.Nodes, accessibility.NodePair{
				ID:   accessibility.IDFor(e),
				Node: node,
			})
		}
		for _, child := range cx.children[e] {
			walk(child)
		}
	}
	walk(entity.Root())
	return update
}
