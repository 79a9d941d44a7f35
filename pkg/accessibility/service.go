package accessibility

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/GatoImorrivel/vizia/pkg/entity"
)

// Service tracks which entities changed since the last flush and
// decides when a new tree snapshot must reach the adapter.
type Service struct {
	mu      sync.Mutex
	adapter Adapter
	dirty   mapset.Set[entity.Entity]
	flushed bool
}

// NewService creates a service delivering to the given adapter. A nil
// adapter falls back to NullAdapter.
func NewService(adapter Adapter) *Service {
	if adapter == nil {
		adapter = NullAdapter{}
	}
	return &Service{
		adapter: adapter,
		dirty:   mapset.NewThreadUnsafeSet[entity.Entity](),
	}
}

// Adapter returns the adapter updates are delivered to. Callers use it
// for minimal out-of-band updates, e.g. focus-only snapshots.
func (s *Service) Adapter() Adapter {
	return s.adapter
}

// MarkDirty records that an entity's accessible description changed.
func (s *Service) MarkDirty(e entity.Entity) {
	s.mu.Lock()
	s.dirty.Add(e)
	s.mu.Unlock()
}

// Remove forgets a destroyed entity. The removal itself dirties the
// tree, since the node must disappear from the next snapshot.
func (s *Service) Remove(e entity.Entity) {
	s.mu.Lock()
	s.dirty.Remove(e)
	s.dirty.Add(entity.Root())
	s.mu.Unlock()
}

// HasDirty reports whether any change is pending.
func (s *Service) HasDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty.Cardinality() > 0
}

// Flush sends a fresh snapshot through the adapter when something
// changed. The first flush always sends so assistive technology gets
// an initial tree; later flushes with no dirty entities are skipped
// entirely and the build callback is never invoked.
func (s *Service) Flush(build func() TreeUpdate) {
	s.mu.Lock()
	first := !s.flushed
	pending := s.dirty.Cardinality() > 0
	if !first && !pending {
		s.mu.Unlock()
		return
	}
	s.flushed = true
	s.dirty.Clear()
	s.mu.Unlock()

	if first {
		s.adapter.Update(build())
		return
	}
	s.adapter.UpdateIfActive(build)
}
