// Package platform normalizes host window events and feeds them to the
// engine loop. It is the seam between a native event loop (or a test
// harness) and the frame pipeline: hosts push events into a Source,
// the engine drains them according to its continuation mode.
package platform

// WindowEvent is a normalized host event. The concrete types below are
// the full set the engine understands; hosts translate their native
// events into these before pushing.
type WindowEvent interface {
	isWindowEvent()
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Modifiers is the state of the keyboard modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModLogo
)

// Contains reports whether all modifiers in m are held.
func (mods Modifiers) Contains(m Modifiers) bool {
	return mods&m == m
}

// Key is a logical key identifier, e.g. "Enter", "ArrowLeft", "a".
type Key string

// MouseMove reports the cursor position in logical window coordinates.
type MouseMove struct {
	X float64
	Y float64
}

// MouseDown reports a pressed pointer button.
type MouseDown struct {
	Button MouseButton
}

// MouseUp reports a released pointer button.
type MouseUp struct {
	Button MouseButton
}

// MouseScroll reports scroll deltas in lines.
type MouseScroll struct {
	DX float64
	DY float64
}

// KeyDown reports a pressed key.
type KeyDown struct {
	Key Key
}

// KeyUp reports a released key.
type KeyUp struct {
	Key Key
}

// CharInput reports a committed text character.
type CharInput struct {
	Char rune
}

// ModifiersChanged reports a new modifier state.
type ModifiersChanged struct {
	Modifiers Modifiers
}

// Resized reports the new window size in physical pixels.
type Resized struct {
	Width  float64
	Height float64
}

// ScaleFactorChanged reports a DPI change together with the physical
// size the host chose for the window at the new scale.
type ScaleFactorChanged struct {
	Scale  float64
	Width  float64
	Height float64
}

// WindowFocused reports the window gaining or losing input focus.
type WindowFocused struct {
	Focused bool
}

// CloseRequested reports the user asking to close the window.
type CloseRequested struct{}

// RedrawRequested reports the host asking for a frame to be painted.
type RedrawRequested struct{}

func (MouseMove) isWindowEvent()          {}
func (MouseDown) isWindowEvent()          {}
func (MouseUp) isWindowEvent()            {}
func (MouseScroll) isWindowEvent()        {}
func (KeyDown) isWindowEvent()            {}
func (KeyUp) isWindowEvent()              {}
func (CharInput) isWindowEvent()          {}
func (ModifiersChanged) isWindowEvent()   {}
func (Resized) isWindowEvent()            {}
func (ScaleFactorChanged) isWindowEvent() {}
func (WindowFocused) isWindowEvent()      {}
func (CloseRequested) isWindowEvent()     {}
func (RedrawRequested) isWindowEvent()    {}
