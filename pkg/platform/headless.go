package platform

import (
	"fmt"
	"log"

	"github.com/go-drift/ui/pkg/graphics"
)

// Headless is a window without a screen. It tracks chrome state and the
// client rectangle so the view tree can run in tests and on the command
// line.
type Headless struct {
	Queue

	title    string
	state    State
	previous State
	bounds   graphics.Rect
	screen   graphics.Rect
	quit     bool
	// Logger, if set, receives one line per chrome transition.
	Logger *log.Logger
}

// NewHeadless returns a normal window of the given client size on a screen
// of the given size.
func NewHeadless(w, h int32, screen graphics.Point) *Headless {
	return &Headless{
		bounds: graphics.RectXYWH(0, 0, w, h),
		screen: graphics.RectXYWH(0, 0, screen.X, screen.Y),
	}
}

func (h *Headless) logf(format string, args ...any) {
	if h.Logger != nil {
		h.Logger.Printf("headless: "+format, args...)
	}
}

// Title returns the window title.
func (h *Headless) Title() string { return h.title }

// SetTitle sets the window title.
func (h *Headless) SetTitle(title string) {
	h.title = title
	h.logf("title %q", title)
}

// IsFullScreen reports whether the window covers the screen without chrome.
func (h *Headless) IsFullScreen() bool { return h.state == StateFullScreen }

// IsMaximized reports whether the window is maximized.
func (h *Headless) IsMaximized() bool { return h.state == StateMaximized }

// IsMinimized reports whether the window is minimized.
func (h *Headless) IsMinimized() bool { return h.state == StateMinimized }

// State returns the current show state.
func (h *Headless) State() State { return h.state }

// FullScreen enters or leaves full-screen mode. Leaving restores the state
// the window had before.
func (h *Headless) FullScreen(on bool) {
	switch {
	case on && h.state != StateFullScreen:
		h.previous = h.state
		h.setState(StateFullScreen)
	case !on && h.state == StateFullScreen:
		h.setState(h.previous)
	}
}

// Maximize maximizes the window.
func (h *Headless) Maximize() { h.setState(StateMaximized) }

// Minimize minimizes the window.
func (h *Headless) Minimize() { h.setState(StateMinimized) }

// Restore returns the window to its normal state.
func (h *Headless) Restore() { h.setState(StateNormal) }

// Quit marks the window closed and stops accepting queued work.
func (h *Headless) Quit() {
	h.quit = true
	h.Close()
	h.logf("quit")
}

// Done reports whether Quit was called.
func (h *Headless) Done() bool { return h.quit }

// Resize changes the normal client size.
func (h *Headless) Resize(w, ht int32) {
	h.bounds.W, h.bounds.H = w, ht
}

// ClientRect returns the client rectangle for the current state: the
// screen while maximized or full screen, empty while minimized.
func (h *Headless) ClientRect() graphics.Rect {
	switch h.state {
	case StateMaximized, StateFullScreen:
		return graphics.RectXYWH(0, 0, h.screen.W, h.screen.H)
	case StateMinimized:
		return graphics.Rect{}
	default:
		return graphics.RectXYWH(0, 0, h.bounds.W, h.bounds.H)
	}
}

func (h *Headless) setState(s State) {
	if h.state == s {
		return
	}
	h.logf("%s -> %s", h.state, s)
	h.state = s
}

func (h *Headless) String() string {
	return fmt.Sprintf("headless %q %s %s", h.title, h.state, h.ClientRect())
}
