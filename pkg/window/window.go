// Package window describes windows to the host platform and persists
// their geometry between sessions.
package window

// Size is a width/height pair. Whether it is in logical or physical
// pixels depends on context: descriptions use logical sizes, resize
// events from the host carry physical ones.
type Size struct {
	Width  float64
	Height float64
}

// Position is a window position in screen coordinates.
type Position struct {
	X float64
	Y float64
}

// Window is the host surface the engine draws into. Implementations
// wrap a native window; tests substitute recording fakes.
type Window interface {
	// RequestRedraw asks the host to schedule a redraw event. Calls
	// coalesce host-side, but callers should still avoid issuing more
	// than one per frame.
	RequestRedraw()
	SetTitle(title string)
	Resize(size Size)
	SetVisible(visible bool)
}

// Description declares the initial state of a window before it is
// created. Zero-size optional fields mean "let the host decide".
type Description struct {
	Title        string
	InnerSize    Size
	MinInnerSize *Size
	MaxInnerSize *Size
	Position     *Position
	Resizable    bool
	Maximized    bool
	Minimized    bool
	Visible      bool
	AlwaysOnTop  bool
	VSync        bool
}

// NewDescription returns a description with the default chrome: a
// resizable, visible, vsynced 800x600 window.
func NewDescription(title string) Description {
	return Description{
		Title:     title,
		InnerSize: Size{Width: 800, Height: 600},
		Resizable: true,
		Visible:   true,
		VSync:     true,
	}
}

// WithInnerSize sets the initial logical size.
func (d Description) WithInnerSize(width, height float64) Description {
	d.InnerSize = Size{Width: width, Height: height}
	return d
}

// WithMinInnerSize constrains how small the window may get.
func (d Description) WithMinInnerSize(width, height float64) Description {
	d.MinInnerSize = &Size{Width: width, Height: height}
	return d
}

// WithMaxInnerSize constrains how large the window may get.
func (d Description) WithMaxInnerSize(width, height float64) Description {
	d.MaxInnerSize = &Size{Width: width, Height: height}
	return d
}

// WithPosition sets the initial screen position.
func (d Description) WithPosition(x, y float64) Description {
	d.Position = &Position{X: x, Y: y}
	return d
}

// WithResizable toggles whether the user may resize the window.
func (d Description) WithResizable(resizable bool) Description {
	d.Resizable = resizable
	return d
}

// WithVisible controls whether the window shows immediately. Hidden
// windows are typically revealed after the first frame renders.
func (d Description) WithVisible(visible bool) Description {
	d.Visible = visible
	return d
}

// WithAlwaysOnTop keeps the window above normal windows.
func (d Description) WithAlwaysOnTop(onTop bool) Description {
	d.AlwaysOnTop = onTop
	return d
}

// WithVSync toggles vertical sync for the window's surface.
func (d Description) WithVSync(vsync bool) Description {
	d.VSync = vsync
	return d
}
