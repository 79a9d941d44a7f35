package accessibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GatoImorrivel/vizia/pkg/entity"
)

type recordingAdapter struct {
	updates []TreeUpdate
	active  bool
}

func (a *recordingAdapter) Update(u TreeUpdate) {
	a.updates = append(a.updates, u)
}

func (a *recordingAdapter) UpdateIfActive(build func() TreeUpdate) {
	if a.active {
		a.updates = append(a.updates, build())
	}
}

func rootUpdate() TreeUpdate {
	root := IDFor(entity.Root())
	return TreeUpdate{
		Nodes: []NodePair{{ID: root, Node: Node{Role: RoleWindow}}},
		Tree:  &Tree{Root: root},
	}
}

func TestFirstFlushAlwaysSends(t *testing.T) {
	a := &recordingAdapter{}
	s := NewService(a)

	s.Flush(rootUpdate)
	require.Len(t, a.updates, 1)
	assert.Equal(t, IDFor(entity.Root()), a.updates[0].Tree.Root)
}

func TestCleanFlushSkipsBuild(t *testing.T) {
	a := &recordingAdapter{active: true}
	s := NewService(a)
	s.Flush(rootUpdate)

	built := false
	s.Flush(func() TreeUpdate {
		built = true
		return rootUpdate()
	})
	assert.False(t, built, "clean flush must not build a snapshot")
	assert.Len(t, a.updates, 1)
}

func TestDirtyFlushSendsThenSettles(t *testing.T) {
	a := &recordingAdapter{active: true}
	s := NewService(a)
	s.Flush(rootUpdate)

	m := entity.NewManager()
	e := m.Create()
	s.MarkDirty(e)
	assert.True(t, s.HasDirty())

	s.Flush(rootUpdate)
	assert.Len(t, a.updates, 2)
	assert.False(t, s.HasDirty(), "flush clears pending changes")

	s.Flush(rootUpdate)
	assert.Len(t, a.updates, 2, "nothing new after settling")
}

func TestInactiveAdapterSkipsBuildButClearsDirty(t *testing.T) {
	a := &recordingAdapter{active: false}
	s := NewService(a)
	s.Flush(rootUpdate)

	s.MarkDirty(entity.Root())
	built := false
	s.Flush(func() TreeUpdate {
		built = true
		return rootUpdate()
	})
	assert.False(t, built)
	assert.False(t, s.HasDirty())
}

func TestRemoveDirtiesTree(t *testing.T) {
	s := NewService(nil)
	m := entity.NewManager()
	e := m.Create()

	s.Flush(rootUpdate)
	s.Remove(e)
	assert.True(t, s.HasDirty(), "removal must force a fresh snapshot")
}

func TestNullAdapterIsSafe(t *testing.T) {
	s := NewService(nil)
	s.MarkDirty(entity.Root())
	s.Flush(rootUpdate)
	assert.False(t, s.HasDirty())
}
