package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	viziaerrors "github.com/GatoImorrivel/vizia/pkg/errors"
)

func TestProxySendReceive(t *testing.T) {
	p := NewProxy[Event]()
	require.NoError(t, p.Send(New("ping")))

	select {
	case ev := <-p.Events():
		assert.Equal(t, "ping", ev.Message)
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestProxySendAfterClose(t *testing.T) {
	p := NewProxy[Event]()
	p.Close()

	err := p.Send(New("ping"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProxyClosed)
	var verr *viziaerrors.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, viziaerrors.KindProxyClosed, verr.Kind)
}

func TestProxyCloseIdempotent(t *testing.T) {
	p := NewProxy[Event]()
	p.Close()
	p.Close()

	select {
	case <-p.Done():
	default:
		t.Fatal("Done must be closed after Close")
	}
}

func TestProxyCloseUnblocksFullBufferSender(t *testing.T) {
	p := NewProxy[int]()
	for i := 0; i < proxyBufferSize; i++ {
		require.NoError(t, p.Send(i))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- p.Send(-1)
	}()

	// The sender is blocked on the full buffer; teardown must release
	// it with a proxy-closed error rather than leaving it stuck.
	time.Sleep(10 * time.Millisecond)
	p.Close()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrProxyClosed)
	case <-time.After(time.Second):
		t.Fatal("sender stayed blocked after Close")
	}
}

func TestProxyConcurrentSendsTotalOrderPerSender(t *testing.T) {
	p := NewProxy[int]()
	const n = 50
	var wg sync.WaitGroup
	wg.Add(2)
	for g := 0; g < 2; g++ {
		go func(base int) {
			defer wg.Done()
			for i := 0; i < n; i++ {
				_ = p.Send(base + i)
			}
		}(g * 1000)
	}
	wg.Wait()

	got := make([]int, 0, 2*n)
	for len(got) < 2*n {
		got = append(got, <-p.Events())
	}

	// Each sender's values arrive in its own send order.
	lastA, lastB := -1, 999
	for _, v := range got {
		if v < 1000 {
			assert.Greater(t, v, lastA)
			lastA = v
		} else {
			assert.Greater(t, v, lastB)
			lastB = v
		}
	}
}
