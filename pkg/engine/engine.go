// Package engine drives a view tree: it runs the init, measure, layout and
// paint passes once per frame and turns host input and clock ticks into
// the view tree-walk dispatches.
//
// An Engine and the tree it drives belong to one goroutine. Work from
// other goroutines reaches the tree through the host queue, which Tick
// drains.
package engine

import (
	"context"
	"time"

	"github.com/go-drift/ui/pkg/errors"
	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/layout"
	"github.com/go-drift/ui/pkg/platform"
	"github.com/go-drift/ui/pkg/text"
	"github.com/go-drift/ui/pkg/theme"
	"github.com/go-drift/ui/pkg/view"
	"github.com/go-drift/ui/pkg/widgets"
)

// MessageTick is the id of the message Tick delivers so overdue hover
// tasks fire even when nothing else is posted.
const MessageTick int32 = -1

// Engine owns one window and the collaborators it needs.
type Engine struct {
	Window   *view.Window
	Pipeline *layout.Pipeline
	Tooltip  *widgets.Tooltip
	Host     *platform.Headless

	buttons view.Modifiers
	lastSec time.Time
	last100 time.Time
	frames  int
}

// New returns an engine for host measuring text with metrics.
func New(host *platform.Headless, metrics text.Metrics, fonts text.Fonts) *Engine {
	errors.Swear(host != nil, "engine.New", "nil host")
	e := &Engine{
		Window:   view.NewWindow(metrics, fonts),
		Pipeline: &layout.Pipeline{},
		Tooltip:  &widgets.Tooltip{},
		Host:     host,
	}
	e.Window.Invalidator = e.Pipeline
	e.Window.Tooltip = e.Tooltip
	e.Window.CRC = host.ClientRect()
	return e
}

// SetRoot installs root as the window tree and schedules a layout.
func (e *Engine) SetRoot(root *view.View) {
	e.Window.SetRoot(root)
	e.Pipeline.RequestLayout()
}

// Root returns the window tree.
func (e *Engine) Root() *view.View {
	return e.Window.Root
}

// Frames returns how many frames have painted.
func (e *Engine) Frames() int {
	return e.frames
}

// Frame prepares the tree and, if anything is dirty, paints the window onto
// c. The tooltip paints over the tree. It returns the repainted rectangle.
// Nothing runs while the client rectangle is empty; pending layout waits
// for the window to come back. Focus lost to a hidden or disabled view
// passes to the first view that accepts it.
func (e *Engine) Frame(c graphics.Canvas) (dirty graphics.Rect, painted bool) {
	defer errors.Recover("engine.Frame")
	w, root := e.Window, e.Window.Root
	if root == nil {
		return graphics.Rect{}, false
	}
	e.syncClient()
	if w.CRC.IsEmpty() {
		return graphics.Rect{}, false
	}
	w.SetParents(root)
	w.InitTree(root)
	w.KillHiddenFocus(root)
	if w.Focus == nil {
		w.SetFocus(root)
	}
	if e.Pipeline.FlushLayout(w, root) && layout.Debug {
		w.Logf("engine: layout #%d in %s", e.Pipeline.Layouts(), w.CRC)
	}
	dirty, ok := e.Pipeline.FlushPaint()
	if !ok || c == nil {
		return graphics.Rect{}, false
	}
	c.FillRect(dirty, w.Color(theme.ColorWindow))
	w.Paint(root, c)
	e.Tooltip.Paint(w, c)
	e.frames++
	return dirty, true
}

// Resize changes the client size of the host window.
func (e *Engine) Resize(width, height int32) {
	e.Host.Resize(width, height)
	e.syncClient()
}

func (e *Engine) syncClient() {
	if crc := e.Host.ClientRect(); crc != e.Window.CRC {
		e.Window.CRC = crc
		e.Pipeline.RequestLayout()
	}
}

// Tick advances the engine clock to now. It fans out the 100ms and one
// second ticks when due, runs work queued on the host and delivers posted
// messages, then a MessageTick so overdue hover tasks fire.
func (e *Engine) Tick(now time.Time) {
	defer errors.Recover("engine.Tick")
	w, root := e.Window, e.Window.Root
	if root == nil {
		return
	}
	if e.last100.IsZero() {
		e.last100, e.lastSec = now, now
	}
	if now.Sub(e.last100) >= 100*time.Millisecond {
		e.last100 = now
		w.Every100ms(root)
	}
	if now.Sub(e.lastSec) >= time.Second {
		e.lastSec = now
		w.EverySec(root)
		e.Pipeline.RequestLayout()
	}
	callbacks, messages := e.Host.Drain()
	for _, cb := range callbacks {
		cb()
	}
	for i := range messages {
		w.Message(root, &messages[i])
	}
	if len(callbacks) > 0 {
		e.Pipeline.RequestLayout()
	}
	w.Message(root, &view.Message{ID: MessageTick})
}

// Run ticks and paints every period until the host quits or ctx is done.
// It blocks the calling goroutine, which becomes the tree's owner.
func (e *Engine) Run(ctx context.Context, c graphics.Canvas, period time.Duration) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for !e.Host.Done() {
		e.Tick(e.Window.Now())
		e.Frame(c)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
