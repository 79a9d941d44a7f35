package events

import (
	stderrors "errors"
	"sync"

	"github.com/GatoImorrivel/vizia/pkg/errors"
)

// ErrProxyClosed is returned by Proxy.Send after the loop has torn
// down. It signals the sender to stop sending; it is never fatal.
var ErrProxyClosed = stderrors.New("event proxy closed")

// Buffer size of the proxy channel. Large enough that bursts from a
// background producer rarely block it.
const proxyBufferSize = 128

// Proxy is the only data structure shared across threads: a channel
// for injecting events into the loop from timer callbacks, async
// tasks, or worker goroutines.
//
// Sends are totally ordered at the point of enqueue; no global order
// relative to loop-thread events is guaranteed. A send made while the
// loop is blocked waiting for host events wakes it.
type Proxy[T any] struct {
	ch   chan T
	done chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewProxy creates an open proxy.
func NewProxy[T any]() *Proxy[T] {
	return &Proxy[T]{
		ch:   make(chan T, proxyBufferSize),
		done: make(chan struct{}),
	}
}

// Send enqueues a value for the loop thread and wakes the loop if it
// is blocked. It is safe to call from any goroutine. After Close it
// returns a proxy-closed error; the sender should stop sending.
func (p *Proxy[T]) Send(v T) error {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return p.closedError()
	}
	select {
	case p.ch <- v:
		return nil
	case <-p.done:
		// Loop tore down while we were blocked on a full buffer.
		return p.closedError()
	}
}

// Events returns the receive side, selected on by the host loop.
func (p *Proxy[T]) Events() <-chan T {
	return p.ch
}

// Done returns a channel closed on teardown.
func (p *Proxy[T]) Done() <-chan struct{} {
	return p.done
}

// Close tears the proxy down. Blocked and future senders receive a
// proxy-closed error. Close is idempotent.
func (p *Proxy[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.done)
}

func (p *Proxy[T]) closedError() error {
	return &errors.Error{Op: "events.Proxy.Send", Kind: errors.KindProxyClosed, Err: ErrProxyClosed}
}
