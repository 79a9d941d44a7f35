// Package testing provides deterministic test doubles: a controllable
// clock for animation tests and recording fakes for the window and
// accessibility collaborators.
package testing

import (
	"sync"

	"github.com/GatoImorrivel/vizia/pkg/accessibility"
	"github.com/GatoImorrivel/vizia/pkg/window"
)

// RecordingWindow counts redraw requests and records the last title,
// size, and visibility it was given.
type RecordingWindow struct {
	mu             sync.Mutex
	redrawRequests int
	title          string
	size           window.Size
	visible        bool
}

func (w *RecordingWindow) RequestRedraw() {
	w.mu.Lock()
	w.redrawRequests++
	w.mu.Unlock()
}

func (w *RecordingWindow) SetTitle(title string) {
	w.mu.Lock()
	w.title = title
	w.mu.Unlock()
}

func (w *RecordingWindow) Resize(size window.Size) {
	w.mu.Lock()
	w.size = size
	w.mu.Unlock()
}

func (w *RecordingWindow) SetVisible(visible bool) {
	w.mu.Lock()
	w.visible = visible
	w.mu.Unlock()
}

// RedrawRequests returns how many times RequestRedraw was called.
func (w *RecordingWindow) RedrawRequests() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.redrawRequests
}

// Title returns the last title set.
func (w *RecordingWindow) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// Size returns the last size set.
func (w *RecordingWindow) Size() window.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// Visible returns the last visibility set.
func (w *RecordingWindow) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// RecordingAdapter records every tree update it receives. Active
// controls whether UpdateIfActive builds and records snapshots, which
// lets tests probe the skip-when-inactive contract.
type RecordingAdapter struct {
	mu      sync.Mutex
	Active  bool
	updates []accessibility.TreeUpdate
}

func (a *RecordingAdapter) Update(u accessibility.TreeUpdate) {
	a.mu.Lock()
	a.updates = append(a.updates, u)
	a.mu.Unlock()
}

func (a *RecordingAdapter) UpdateIfActive(build func() accessibility.TreeUpdate) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Active {
		a.updates = append(a.updates, build())
	}
}

// Updates returns a copy of every recorded update, in order.
func (a *RecordingAdapter) Updates() []accessibility.TreeUpdate {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]accessibility.TreeUpdate(nil), a.updates...)
}
