package view

import (
	"log"
	"time"

	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/nls"
	"github.com/go-drift/ui/pkg/text"
	"github.com/go-drift/ui/pkg/theme"
)

// Invalidator accepts rectangles that must be repainted.
type Invalidator interface {
	Invalidate(r graphics.Rect)
}

// Clock provides the time used for hover deadlines.
type Clock interface {
	Now() time.Time
}

// TooltipPresenter shows and hides the tooltip owned by a hovered view.
type TooltipPresenter interface {
	ShowTooltip(owner *View, tip string, at graphics.Point)
	HideTooltip()
	TooltipOwner() *View
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Window is the context a view tree runs in: the tree root, focus, pointer
// and modifier state, the client rectangle and the collaborators that
// measure text, resolve colors, localize strings and collect repaints.
// It is owned by one goroutine; nothing here is synchronized.
type Window struct {
	Root  *View
	Focus *View

	// Pointer is the last known mouse position in client coordinates.
	Pointer graphics.Point
	Alt     bool
	Ctrl    bool
	Shift   bool

	// CRC is the client rectangle. Paint is skipped while it is empty.
	CRC    graphics.Rect
	Active bool

	Fonts       text.Fonts
	Metrics     text.Metrics
	Theme       *theme.Theme
	NLS         *nls.Catalog
	Invalidator Invalidator
	Clock       Clock
	Tooltip     TooltipPresenter
	Logger      *log.Logger
}

// NewWindow returns a window with the light theme, an empty string catalog
// and the system clock. Metrics must be set before the first measure pass.
func NewWindow(metrics text.Metrics, fonts text.Fonts) *Window {
	return &Window{
		Active:  true,
		Fonts:   fonts,
		Metrics: metrics,
		Theme:   theme.Light(),
		NLS:     nls.New(),
		Clock:   systemClock{},
	}
}

// SetRoot attaches root as the tree of this window. The root must not have
// a parent.
func (w *Window) SetRoot(root *View) {
	w.Root = root
	if root != nil {
		root.setWindow(w)
	}
}

// Now returns the window clock time.
func (w *Window) Now() time.Time {
	if w.Clock == nil {
		return time.Now()
	}
	return w.Clock.Now()
}

// Color resolves a symbolic color for the current activation state.
func (w *Window) Color(id theme.ColorID) graphics.Color {
	if w.Theme == nil {
		return graphics.ColorBlack
	}
	return w.Theme.Color(id, w.Active)
}

// InvalidateRect marks r dirty.
func (w *Window) InvalidateRect(r graphics.Rect) {
	if w.Invalidator != nil {
		w.Invalidator.Invalidate(r)
	}
}

// RequestLayout asks for a measure and layout pass before the next paint.
// It is a no-op unless the invalidation sink schedules layout too.
func (w *Window) RequestLayout() {
	if l, ok := w.Invalidator.(interface{ RequestLayout() }); ok {
		l.RequestLayout()
	}
}

// Invalidate marks the view bounds, grown by one em on each side, dirty.
func (w *Window) Invalidate(v *View) {
	w.InvalidateRect(v.Rect().Inflate(v.Em.X, v.Em.Y))
}

// Logf writes a trace line to Logger, or to the standard logger when
// Logger is nil.
func (w *Window) Logf(format string, args ...any) {
	if w.Logger != nil {
		w.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
