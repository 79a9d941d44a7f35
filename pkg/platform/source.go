package platform

// Source is where the engine loop gets host events from. Wait blocks
// until at least one event arrives or Wake is called; Poll drains
// whatever is pending and returns immediately.
type Source interface {
	Wait() []WindowEvent
	Poll() []WindowEvent
	Wake()
}

const sourceBufferSize = 256

// ChannelSource is a channel-backed Source. The host (or a test) calls
// Push from any goroutine; cross-thread message proxies call Wake to
// interrupt a blocked Wait without injecting a window event.
type ChannelSource struct {
	events chan WindowEvent
	wake   chan struct{}
}

var _ Source = (*ChannelSource)(nil)

// NewChannelSource returns a source with a buffered event queue.
func NewChannelSource() *ChannelSource {
	return &ChannelSource{
		events: make(chan WindowEvent, sourceBufferSize),
		wake:   make(chan struct{}, 1),
	}
}

// Push delivers a host event. It blocks if the buffer is full, which
// applies natural backpressure to a host outpacing the engine.
func (s *ChannelSource) Push(ev WindowEvent) {
	s.events <- ev
}

// Wake unblocks a pending Wait. Signals coalesce: waking an already
// woken source is a no-op.
func (s *ChannelSource) Wake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Wait blocks until an event or a wake arrives, then drains the rest
// of the pending events. A bare wake returns an empty batch.
func (s *ChannelSource) Wait() []WindowEvent {
	var batch []WindowEvent
	select {
	case ev := <-s.events:
		batch = append(batch, ev)
	case <-s.wake:
	}
	return append(batch, s.drain()...)
}

// Poll drains pending events without blocking. A pending wake signal
// is consumed too, so it does not spill into the next Wait.
func (s *ChannelSource) Poll() []WindowEvent {
	select {
	case <-s.wake:
	default:
	}
	return s.drain()
}

func (s *ChannelSource) drain() []WindowEvent {
	var batch []WindowEvent
	for {
		select {
		case ev := <-s.events:
			batch = append(batch, ev)
		default:
			return batch
		}
	}
}
