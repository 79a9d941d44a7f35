package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GatoImorrivel/vizia/pkg/errors"
)

func TestRootAlwaysAlive(t *testing.T) {
	m := NewManager()
	assert.True(t, m.Alive(Root()))
	assert.Error(t, m.Destroy(Root()))
	assert.True(t, m.Alive(Root()), "root must survive a destroy attempt")
}

func TestCreateAssignsDenseIndices(t *testing.T) {
	m := NewManager()
	a := m.Create()
	b := m.Create()
	assert.Equal(t, uint32(1), a.Index())
	assert.Equal(t, uint32(2), b.Index())
	assert.Equal(t, 3, m.Count())
}

func TestDestroyBumpsGeneration(t *testing.T) {
	m := NewManager()
	a := m.Create()
	require.NoError(t, m.Destroy(a))
	assert.False(t, m.Alive(a))

	// Slot is reused with a new generation; the old handle stays stale.
	b := m.Create()
	assert.Equal(t, a.Index(), b.Index())
	assert.Equal(t, a.Generation()+1, b.Generation())
	assert.True(t, m.Alive(b))
	assert.False(t, m.Alive(a), "stale handle must never resolve after slot reuse")
}

func TestDoubleDestroyIsStale(t *testing.T) {
	m := NewManager()
	a := m.Create()
	require.NoError(t, m.Destroy(a))
	err := m.Destroy(a)
	require.Error(t, err)
	var verr *errors.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, errors.KindStaleEntity, verr.Kind)
}

func TestCheck(t *testing.T) {
	m := NewManager()
	a := m.Create()
	assert.NoError(t, m.Check("test", a))
	require.NoError(t, m.Destroy(a))
	assert.Error(t, m.Check("test", a))
	assert.Error(t, m.Check("test", Null))
}

func TestHandlePacking(t *testing.T) {
	e := New(7, 3)
	assert.Equal(t, uint32(7), e.Index())
	assert.Equal(t, uint32(3), e.Generation())
	assert.Equal(t, "Entity(7:3)", e.String())
	assert.True(t, Null.IsNull())
	assert.Equal(t, "Entity(null)", Null.String())
}
