package engine

import (
	stderrors "errors"

	"github.com/GatoImorrivel/vizia/pkg/accessibility"
	"github.com/GatoImorrivel/vizia/pkg/cache"
	"github.com/GatoImorrivel/vizia/pkg/entity"
	"github.com/GatoImorrivel/vizia/pkg/errors"
	"github.com/GatoImorrivel/vizia/pkg/events"
	"github.com/GatoImorrivel/vizia/pkg/platform"
	"github.com/GatoImorrivel/vizia/pkg/style"
	"github.com/GatoImorrivel/vizia/pkg/window"
)

// Application wires the context, the host collaborators, and the frame
// pipeline into a runnable loop. Construction is builder-style; Run
// owns the loop until the continuation decision says Exit.
type Application struct {
	cx       *Context
	content  func(*Context)
	idle     IdleHandler
	resolver style.Resolver
	layouter Layouter

	desc          window.Description
	background    style.Color
	hasBackground bool
	themePath     string
	defaultPoll   bool

	win      window.Window
	adapter  accessibility.Adapter
	source   *platform.ChannelSource
	proxy    *events.Proxy[events.Event]
	geometry *window.GeometryStore

	surfaceDirty  bool
	exitRequested bool
	windowFocused bool
}

// NewApplication creates an application whose UI tree is built by the
// content closure when Run starts.
func NewApplication(content func(*Context)) *Application {
	return &Application{
		content:  content,
		layouter: stackLayouter{},
		desc:     window.NewDescription("vizia"),
		adapter:  accessibility.NullAdapter{},
		source:   platform.NewChannelSource(),
		proxy:    events.NewProxy[events.Event](),
	}
}

// Title sets the window title.
func (a *Application) Title(title string) *Application {
	a.desc.Title = title
	return a
}

// WithDescription replaces the whole window description.
func (a *Application) WithDescription(d window.Description) *Application {
	a.desc = d
	return a
}

// InnerSize sets the initial logical window size.
func (a *Application) InnerSize(width, height float64) *Application {
	a.desc = a.desc.WithInnerSize(width, height)
	return a
}

// Background sets the root background color.
func (a *Application) Background(c style.Color) *Application {
	a.background = c
	a.hasBackground = true
	return a
}

// WithTheme loads theme defaults from a YAML file before the loop
// starts. A missing file keeps the built-in defaults.
func (a *Application) WithTheme(path string) *Application {
	a.themePath = path
	return a
}

// OnIdle installs the idle handler.
func (a *Application) OnIdle(h IdleHandler) *Application {
	a.idle = h
	return a
}

// OnIdleFunc installs a function as the idle handler.
func (a *Application) OnIdleFunc(f func(cx *Context)) *Application {
	a.idle = IdleFunc(f)
	return a
}

// ShouldPoll makes Poll the caller-default continuation mode instead
// of Wait, for applications that render continuously.
func (a *Application) ShouldPoll() *Application {
	a.defaultPoll = true
	return a
}

// WithWindow installs the host window collaborator. Required before
// Run.
func (a *Application) WithWindow(w window.Window) *Application {
	a.win = w
	return a
}

// WithAdapter installs the platform accessibility adapter.
func (a *Application) WithAdapter(ad accessibility.Adapter) *Application {
	a.adapter = ad
	return a
}

// WithSource replaces the host event source. Tests and custom hosts
// push normalized events into it.
func (a *Application) WithSource(s *platform.ChannelSource) *Application {
	a.source = s
	return a
}

// WithGeometryStore persists and restores window geometry by title.
func (a *Application) WithGeometryStore(gs *window.GeometryStore) *Application {
	a.geometry = gs
	return a
}

// Source returns the host event source.
func (a *Application) Source() *platform.ChannelSource {
	return a.source
}

// Context returns the loop context. Loop thread only; background
// goroutines use Proxy instead.
func (a *Application) Context() *Context {
	return a.cx
}

// EventProxy sends events into the loop from other goroutines. Every
// successful send wakes a loop blocked in Wait.
type EventProxy struct {
	proxy  *events.Proxy[events.Event]
	source *platform.ChannelSource
}

// Send queues an event for the next iteration. After the loop tears
// down it returns a proxy-closed error, which senders treat as
// non-fatal.
func (p *EventProxy) Send(ev events.Event) error {
	if err := p.proxy.Send(ev); err != nil {
		return err
	}
	p.source.Wake()
	return nil
}

// Emit sends an origin-tagged event carrying the message.
func (p *EventProxy) Emit(message any) error {
	return p.Send(events.New(message))
}

// Proxy returns the cross-thread event proxy. It is the only part of
// the application shared across goroutines.
func (a *Application) Proxy() *EventProxy {
	return &EventProxy{proxy: a.proxy, source: a.source}
}

// Run initializes collaborators, builds the UI tree, and drives the
// pipeline until the continuation decision is Exit. It fails before
// the first iteration if a required collaborator is missing.
func (a *Application) Run() error {
	if err := a.init(); err != nil {
		return err
	}
	defer a.teardown()

	mode := Poll // the first frame runs without waiting
	for {
		var batch []platform.WindowEvent
		if mode == Wait {
			batch = a.source.Wait()
		} else {
			batch = a.source.Poll()
		}
		mode = a.Step(batch)
		if mode == Exit {
			return nil
		}
	}
}

func (a *Application) init() error {
	if a.content == nil {
		return &errors.Error{Op: "engine.Application.Run", Kind: errors.KindInit, Err: errNoContent}
	}
	if a.win == nil {
		return &errors.Error{Op: "engine.Application.Run", Kind: errors.KindInit, Err: errNoWindow}
	}

	a.cx = NewContext(a.adapter)

	if a.themePath != "" {
		theme, err := style.LoadTheme(a.themePath)
		if err != nil {
			// Transient: the built-in defaults stand in.
			errors.Report(&errors.Error{Op: "engine.Application.Run", Kind: errors.KindStyle, Err: err})
		} else {
			a.cx.styles.ApplyTheme(theme)
		}
	}

	if a.geometry != nil {
		if g, found, err := a.geometry.Load(a.desc.Title); err != nil {
			var verr *errors.Error
			if stderrors.As(err, &verr) {
				errors.Report(verr)
			}
		} else if found {
			a.desc.InnerSize = g.Size
			a.desc.Position = g.Position
			a.desc.Maximized = g.Maximized
		}
	}

	a.win.SetTitle(a.desc.Title)
	a.win.Resize(a.desc.InnerSize)
	if a.hasBackground {
		a.cx.styles.SetBackground(entity.Root(), a.background)
	}

	// Seed root geometry from the description; the scale factor is 1
	// until the host reports otherwise.
	a.handleResize(a.desc.InnerSize.Width, a.desc.InnerSize.Height)

	a.content(a.cx)
	a.win.SetVisible(a.desc.Visible)
	return nil
}

func (a *Application) teardown() {
	a.proxy.Close()
	a.cx.events.Clear()

	if a.geometry != nil {
		scale := a.cx.styles.DPIFactor()
		size := a.desc.InnerSize
		if clip, ok := a.cx.cache.ClipRegion(entity.Root()); ok {
			size = window.Size{Width: clip.W / scale, Height: clip.H / scale}
		}
		if err := a.geometry.Save(a.desc.Title, window.Geometry{
			Size:      size,
			Position:  a.desc.Position,
			Maximized: a.desc.Maximized,
		}); err != nil {
			var verr *errors.Error
			if stderrors.As(err, &verr) {
				errors.Report(verr)
			}
		}
	}
}

// Step runs one full pipeline iteration over a batch of host events
// and returns the continuation decision. Run calls it in a loop;
// tests, benchmarks, and custom hosts may drive it directly after
// Start.
func (a *Application) Step(batch []platform.WindowEvent) ControlFlow {
	cx := a.cx

	// 1. Drain and normalize host events. A close request only records
	// the exit wish; it is honored at the decision point, never
	// mid-iteration.
	for _, ev := range batch {
		a.applyHostEvent(ev)
	}
	a.drainProxy()

	// 2. Event flush to the fixed point.
	for cx.events.Flush(cx) {
	}

	// 3. Data propagation. Emitted update events flush next iteration.
	cx.bindings.ProcessUpdates(cx.events.Enqueue)

	// 4. Accessibility tree sync.
	cx.ProcessTreeUpdates()

	// 5. Style resolution consumes the restyle flag.
	if cx.styles.HasDirty() {
		cx.inv.MarkRestyle()
	}
	a.resolver.Process(cx, cx.styles, &cx.inv)

	// 6. Animation scheduling: an active set forces Poll and requests a
	// redraw through the queue, never through the platform directly.
	animationForced := false
	if cx.animations.HasActive() {
		animationForced = true
		cx.events.Enqueue(events.New(platform.RedrawRequested{}).Direct(entity.Root()))
	}

	// 7. Visual update: step animations, then relayout, then surface
	// invalidation.
	a.processVisualUpdates()

	// 8. Redraw arbitration: at most one request per iteration.
	if a.surfaceDirty {
		if a.win != nil {
			a.win.RequestRedraw()
		}
		a.surfaceDirty = false
	}

	// 9. Idle hook, once per settled iteration.
	if a.idle != nil {
		a.idle.OnIdle(cx)
	}

	// 10. Continuation decision.
	switch {
	case a.exitRequested:
		return Exit
	case animationForced:
		return Poll
	case cx.events.HasQueued() || cx.bindings.HasDirty():
		// Work produced late in the iteration (e.g. by the idle hook)
		// must not strand in the queue while the loop sleeps.
		a.source.Wake()
		return Poll
	case a.defaultPoll:
		return Poll
	default:
		return Wait
	}
}

// Start prepares an application for driving Step directly, without
// entering Run's loop. It shares init with Run.
func (a *Application) Start() error {
	return a.init()
}

// Stop tears down a started application.
func (a *Application) Stop() {
	a.teardown()
}

func (a *Application) drainProxy() {
	for {
		select {
		case ev := <-a.proxy.Events():
			a.cx.events.Enqueue(ev)
		default:
			return
		}
	}
}

func (a *Application) applyHostEvent(ev platform.WindowEvent) {
	cx := a.cx
	switch e := ev.(type) {
	case platform.MouseMove:
		cx.mouseX, cx.mouseY = e.X, e.Y
		cx.hovered = cx.hitTest(e.X, e.Y)
		cx.events.Enqueue(events.New(e).Up(cx.hovered))
	case platform.MouseDown, platform.MouseUp, platform.MouseScroll:
		cx.events.Enqueue(events.New(e).Up(cx.hovered))
	case platform.KeyDown, platform.KeyUp, platform.CharInput:
		// Origin-tagged: resolved to the focused entity at flush time.
		cx.events.Enqueue(events.New(e))
	case platform.ModifiersChanged:
		cx.modifiers = e.Modifiers
		cx.events.Enqueue(events.New(e))
	case platform.Resized:
		a.handleResize(e.Width, e.Height)
	case platform.ScaleFactorChanged:
		cx.styles.SetDPIFactor(e.Scale)
		a.handleResize(e.Width, e.Height)
	case platform.WindowFocused:
		a.windowFocused = e.Focused
		focus := accessibility.IDFor(cx.focused)
		a.adapter.UpdateIfActive(func() accessibility.TreeUpdate {
			return accessibility.TreeUpdate{Focus: &focus}
		})
	case platform.CloseRequested:
		a.exitRequested = true
	case platform.RedrawRequested:
		cx.inv.MarkRedraw()
	}
}

// handleResize records the physical size in the root clip region and
// the derived logical size in the root style, invalidating restyle,
// relayout, and redraw.
func (a *Application) handleResize(physicalW, physicalH float64) {
	cx := a.cx
	cx.cache.SetClipRegion(entity.Root(), cache.Rect{W: physicalW, H: physicalH})

	scale := cx.styles.DPIFactor()
	cx.styles.SetWidth(entity.Root(), style.Px(physicalW/scale))
	cx.styles.SetHeight(entity.Root(), style.Px(physicalH/scale))

	cx.inv.MarkRestyle()
	cx.inv.MarkRelayout()
	cx.inv.MarkRedraw()
}

func (a *Application) processVisualUpdates() {
	cx := a.cx

	if cx.animations.Step() > 0 {
		cx.inv.MarkRedraw()
	}

	if cx.inv.ConsumeRelayout() {
		a.layouter.Layout(cx, cx.styles, cx.cache)
		cx.inv.MarkRedraw()
	}

	if cx.inv.ConsumeRedraw() {
		a.surfaceDirty = true
	}
}

var (
	errNoContent = stderrors.New("no content closure")
	errNoWindow  = stderrors.New("no window collaborator")
)
