package engine

import "github.com/GatoImorrivel/vizia/pkg/events"

// View handles events delivered to an entity. Views that also
// implement accessibility.Describer contribute nodes to the
// accessibility tree.
type View interface {
	OnEvent(cx *Context, ev events.Event)
}

// ViewFunc adapts a function to the View interface.
type ViewFunc func(cx *Context, ev events.Event)

func (f ViewFunc) OnEvent(cx *Context, ev events.Event) {
	f(cx, ev)
}

// IdleHandler runs once per settled pipeline iteration, after redraw
// arbitration and before the continuation decision. Events it enqueues
// are flushed in the next iteration, which the decision accounts for.
type IdleHandler interface {
	OnIdle(cx *Context)
}

// IdleFunc adapts a function to the IdleHandler interface.
type IdleFunc func(cx *Context)

func (f IdleFunc) OnIdle(cx *Context) {
	f(cx)
}
