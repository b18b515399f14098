// Package platform defines the window-chrome contract the widgets consume
// and a headless window that implements it without any native windowing.
package platform

// Chrome is the window state the caption bar reads and changes.
type Chrome interface {
	Title() string
	SetTitle(title string)
	IsFullScreen() bool
	IsMaximized() bool
	IsMinimized() bool
	// FullScreen enters or leaves full-screen mode.
	FullScreen(on bool)
	Maximize()
	Minimize()
	Restore()
	// Quit asks the window to close.
	Quit()
}

// State is the show state of a window.
type State int

const (
	StateNormal State = iota
	StateMaximized
	StateMinimized
	StateFullScreen
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateMaximized:
		return "maximized"
	case StateMinimized:
		return "minimized"
	case StateFullScreen:
		return "full_screen"
	default:
		return "unknown"
	}
}
