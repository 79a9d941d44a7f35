package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GatoImorrivel/vizia/pkg/entity"
)

// fakeDispatcher is a three-level tree: root <- a <- b.
type fakeDispatcher struct {
	root, a, b entity.Entity
	origin     entity.Entity
	handlers   map[entity.Entity]func(Event)
	delivered  []entity.Entity
}

func newFakeDispatcher() *fakeDispatcher {
	root := entity.Root()
	a := entity.New(1, 0)
	b := entity.New(2, 0)
	return &fakeDispatcher{
		root:     root,
		a:        a,
		b:        b,
		origin:   entity.Null,
		handlers: make(map[entity.Entity]func(Event)),
	}
}

func (d *fakeDispatcher) Origin() entity.Entity {
	return d.origin
}

func (d *fakeDispatcher) Parent(e entity.Entity) (entity.Entity, bool) {
	switch e {
	case d.b:
		return d.a, true
	case d.a:
		return d.root, true
	default:
		return entity.Null, false
	}
}

func (d *fakeDispatcher) Deliver(e entity.Entity, ev Event) {
	d.delivered = append(d.delivered, e)
	if h, ok := d.handlers[e]; ok {
		h(ev)
	}
}

func TestFlushEmptyQueue(t *testing.T) {
	m := NewManager()
	d := newFakeDispatcher()
	assert.False(t, m.Flush(d))
	assert.Empty(t, d.delivered)
}

func TestFlushDirect(t *testing.T) {
	m := NewManager()
	d := newFakeDispatcher()
	m.Enqueue(New("ping").Direct(d.b))
	assert.True(t, m.Flush(d))
	assert.Equal(t, []entity.Entity{d.b}, d.delivered)
}

func TestFlushPropagatesUpToRoot(t *testing.T) {
	m := NewManager()
	d := newFakeDispatcher()
	m.Enqueue(New("ping").Up(d.b))
	m.Flush(d)
	assert.Equal(t, []entity.Entity{d.b, d.a, d.root}, d.delivered)
}

func TestFlushOriginTagged(t *testing.T) {
	m := NewManager()
	d := newFakeDispatcher()
	d.origin = d.a
	m.Enqueue(New("ping"))
	m.Flush(d)
	assert.Equal(t, []entity.Entity{d.a, d.root}, d.delivered)
}

func TestFlushOriginFallsBackToRoot(t *testing.T) {
	m := NewManager()
	d := newFakeDispatcher()
	m.Enqueue(New("ping"))
	m.Flush(d)
	assert.Equal(t, []entity.Entity{d.root}, d.delivered)
}

func TestFlushPreservesInsertionOrder(t *testing.T) {
	m := NewManager()
	d := newFakeDispatcher()
	var order []string
	d.handlers[d.a] = func(ev Event) {
		order = append(order, ev.Message.(string))
	}
	m.Enqueue(New("first").Direct(d.a))
	m.Enqueue(New("second").Direct(d.a))
	m.Enqueue(New("third").Direct(d.a))
	m.Flush(d)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

// A burst of cascading events settles within one fixed-point loop: a
// click enqueues a state change which enqueues a restyle request.
func TestFlushFixedPoint(t *testing.T) {
	m := NewManager()
	d := newFakeDispatcher()
	var seen []string
	d.handlers[d.a] = func(ev Event) {
		seen = append(seen, ev.Message.(string))
		switch ev.Message {
		case "click":
			m.Enqueue(New("state-change").Direct(d.a))
		case "state-change":
			m.Enqueue(New("restyle").Direct(d.a))
		}
	}

	m.Enqueue(New("click").Direct(d.a))
	passes := 0
	for m.Flush(d) {
		passes++
	}

	assert.Equal(t, []string{"click", "state-change", "restyle"}, seen)
	assert.Equal(t, 3, passes)
	assert.False(t, m.HasQueued(), "queue must be empty at the fixed point")
}

// A handler that unconditionally re-enqueues never reaches a fixed
// point. The manager intentionally does not cap iterations; this probe
// bounds the loop itself and checks the queue never settles.
func TestFlushSelfReenqueueHazard(t *testing.T) {
	m := NewManager()
	d := newFakeDispatcher()
	d.handlers[d.a] = func(Event) {
		m.Enqueue(New("again").Direct(d.a))
	}

	m.Enqueue(New("again").Direct(d.a))
	for i := 0; i < 100; i++ {
		assert.True(t, m.Flush(d), "a misbehaving handler keeps the queue non-empty")
	}
	assert.True(t, m.HasQueued())
}

func TestEventImmutableOnceQueued(t *testing.T) {
	m := NewManager()
	d := newFakeDispatcher()
	ev := New("ping").Direct(d.a)
	m.Enqueue(ev)

	// Deriving a new delivery policy must not affect the queued copy.
	_ = ev.Up(d.b)
	m.Flush(d)
	assert.Equal(t, []entity.Entity{d.a}, d.delivered)
}
