package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GatoImorrivel/vizia/pkg/accessibility"
	"github.com/GatoImorrivel/vizia/pkg/cache"
	"github.com/GatoImorrivel/vizia/pkg/entity"
	"github.com/GatoImorrivel/vizia/pkg/errors"
	"github.com/GatoImorrivel/vizia/pkg/events"
)

type captureHandler struct {
	errs   []*errors.Error
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.Error)    { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(p *errors.PanicError) { h.panics = append(h.panics, p) }

func withCaptureHandler(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func TestCreateAndDestroySubtree(t *testing.T) {
	cx := NewContext(nil)
	a, err := cx.CreateEntity(cx.Root())
	require.NoError(t, err)
	b, err := cx.CreateEntity(a)
	require.NoError(t, err)

	assert.Equal(t, []entity.Entity{a}, cx.Children(cx.Root()))
	p, ok := cx.Parent(b)
	require.True(t, ok)
	assert.Equal(t, a, p)

	require.NoError(t, cx.Destroy(a))
	assert.Empty(t, cx.Children(cx.Root()))
	assert.Error(t, cx.Destroy(b), "children die with their parent")
}

func TestDestroyRootIsRejected(t *testing.T) {
	cx := NewContext(nil)
	assert.Error(t, cx.Destroy(cx.Root()))
}

func TestCreateUnderStaleParent(t *testing.T) {
	cx := NewContext(nil)
	a, _ := cx.CreateEntity(cx.Root())
	require.NoError(t, cx.Destroy(a))

	_, err := cx.CreateEntity(a)
	var verr *errors.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, errors.KindStaleEntity, verr.Kind)
}

func TestDestroyResetsFocusAndHover(t *testing.T) {
	cx := NewContext(nil)
	a, _ := cx.CreateEntity(cx.Root())
	require.NoError(t, cx.SetFocus(a))
	cx.hovered = a

	require.NoError(t, cx.Destroy(a))
	assert.Equal(t, cx.Root(), cx.Focused())
	assert.Equal(t, cx.Root(), cx.Hovered())
}

func TestDeliverToStaleEntityIsReported(t *testing.T) {
	h := withCaptureHandler(t)
	cx := NewContext(nil)
	a, _ := cx.CreateEntity(cx.Root())
	require.NoError(t, cx.Destroy(a))

	cx.EmitTo(a, "hello")
	for cx.events.Flush(cx) {
	}

	require.Len(t, h.errs, 1)
	assert.Equal(t, errors.KindStaleEntity, h.errs[0].Kind)
}

func TestPanickingViewIsCaptured(t *testing.T) {
	h := withCaptureHandler(t)
	cx := NewContext(nil)
	a, _ := cx.CreateEntity(cx.Root())
	require.NoError(t, cx.SetView(a, ViewFunc(func(*Context, events.Event) {
		panic("view exploded")
	})))

	cx.EmitTo(a, "boom")
	for cx.events.Flush(cx) {
	}

	require.Len(t, h.panics, 1)
	assert.Equal(t, "view exploded", h.panics[0].Value)
}

func TestOriginIsFocusedEntity(t *testing.T) {
	cx := NewContext(nil)
	a, _ := cx.CreateEntity(cx.Root())

	got := entity.Null
	require.NoError(t, cx.SetView(a, ViewFunc(func(_ *Context, ev events.Event) {
		if ev.Message == "key" {
			got = a
		}
	})))
	require.NoError(t, cx.SetFocus(a))

	cx.Emit("key")
	for cx.events.Flush(cx) {
	}
	assert.Equal(t, a, got)
}

func TestHitTestPrefersDeepestBounds(t *testing.T) {
	cx := NewContext(nil)
	a, _ := cx.CreateEntity(cx.Root())
	b, _ := cx.CreateEntity(a)

	cx.cache.SetBounds(cx.Root(), cache.Rect{W: 800, H: 600})
	cx.cache.SetBounds(a, cache.Rect{X: 100, Y: 100, W: 200, H: 200})
	cx.cache.SetBounds(b, cache.Rect{X: 150, Y: 150, W: 50, H: 50})

	assert.Equal(t, b, cx.hitTest(160, 160))
	assert.Equal(t, a, cx.hitTest(110, 110))
	assert.Equal(t, cx.Root(), cx.hitTest(700, 10))
	assert.Equal(t, cx.Root(), cx.hitTest(-5, -5), "outside everything falls back to root")
}

type labelView struct {
	label string
}

func (labelView) OnEvent(*Context, events.Event) {}

func (v labelView) DescribeNode(n *accessibility.Node) {
	n.Role = accessibility.RoleLabel
	n.Label = v.label
}

func TestTreeUpdateSnapshot(t *testing.T) {
	cx := NewContext(nil)
	a, _ := cx.CreateEntity(cx.Root())
	require.NoError(t, cx.SetView(a, labelView{label: "count"}))
	require.NoError(t, cx.SetFocus(a))
	cx.cache.SetBounds(a, cache.Rect{W: 40, H: 20})

	u := cx.buildTreeUpdate()
	require.NotNil(t, u.Tree)
	assert.Equal(t, accessibility.IDFor(cx.Root()), u.Tree.Root)
	require.NotNil(t, u.Focus)
	assert.Equal(t, accessibility.IDFor(a), *u.Focus)

	require.Len(t, u.Nodes, 2, "root window node plus the describing view")
	assert.Equal(t, accessibility.RoleWindow, u.Nodes[0].Node.Role)
	assert.Equal(t, accessibility.RoleLabel, u.Nodes[1].Node.Role)
	assert.Equal(t, "count", u.Nodes[1].Node.Label)
	assert.Equal(t, cache.Rect{W: 40, H: 20}, u.Nodes[1].Node.Bounds)
}

func TestViewsWithoutDescriberAreInvisible(t *testing.T) {
	cx := NewContext(nil)
	a, _ := cx.CreateEntity(cx.Root())
	require.NoError(t, cx.SetView(a, ViewFunc(func(*Context, events.Event) {})))

	u := cx.buildTreeUpdate()
	require.Len(t, u.Nodes, 1, "only the root window node")
}
