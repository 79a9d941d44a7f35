package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GatoImorrivel/vizia/pkg/entity"
	"github.com/GatoImorrivel/vizia/pkg/events"
)

func collect(r *Registry) []events.Event {
	var out []events.Event
	r.ProcessUpdates(func(ev events.Event) { out = append(out, ev) })
	return out
}

func TestSetMarksDirtyOnlyOnChange(t *testing.T) {
	r := NewRegistry()
	count := NewValue(r, "count", 0)

	count.Set(0)
	assert.False(t, r.HasDirty(), "writing the same value must not dirty the store")

	count.Set(1)
	assert.True(t, r.HasDirty())
	assert.Equal(t, 1, count.Get())
}

func TestProcessUpdatesEmitsPerObserver(t *testing.T) {
	r := NewRegistry()
	count := NewValue(r, "count", 0)
	a := entity.New(1, 0)
	b := entity.New(2, 0)
	count.Observe(a)
	count.Observe(b)

	count.Set(5)
	got := collect(r)

	assert.Len(t, got, 2)
	assert.Equal(t, a, got[0].Target())
	assert.Equal(t, b, got[1].Target())
	for _, ev := range got {
		assert.Equal(t, Update{Store: "count"}, ev.Message)
		assert.Equal(t, events.PropagateDirect, ev.Propagation())
	}
}

func TestProcessUpdatesSettles(t *testing.T) {
	r := NewRegistry()
	count := NewValue(r, "count", 0)
	count.Observe(entity.New(1, 0))
	count.Set(1)

	assert.Len(t, collect(r), 1)
	assert.False(t, r.HasDirty(), "processing must clear the dirty mark")
	assert.Empty(t, collect(r), "a settled registry emits nothing")
}

func TestIgnoreStopsUpdates(t *testing.T) {
	r := NewRegistry()
	count := NewValue(r, "count", 0)
	a := entity.New(1, 0)
	count.Observe(a)
	count.Ignore(a)

	count.Set(1)
	assert.Empty(t, collect(r))
}

func TestOnMutateFiresOncePerDirtying(t *testing.T) {
	r := NewRegistry()
	fires := 0
	r.OnMutate = func() { fires++ }
	count := NewValue(r, "count", 0)

	count.Set(1)
	count.Set(2)
	count.Set(3)
	assert.Equal(t, 1, fires, "repeated writes before a settle point request one frame")

	collect(r)
	count.Set(4)
	assert.Equal(t, 2, fires)
}

func TestMultipleStores(t *testing.T) {
	r := NewRegistry()
	count := NewValue(r, "count", 0)
	label := NewValue(r, "label", "")
	e := entity.New(1, 0)
	count.Observe(e)
	label.Observe(e)

	count.Set(1)
	label.Set("one")
	got := collect(r)

	assert.Len(t, got, 2)
	assert.Equal(t, Update{Store: "count"}, got[0].Message)
	assert.Equal(t, Update{Store: "label"}, got[1].Message)
}
