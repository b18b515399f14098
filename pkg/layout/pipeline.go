package layout

import (
	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/view"
)

// Pipeline tracks whether a window needs layout and which part of it needs
// repainting. It is the window's view.Invalidator.
//
// The typical frame sequence is:
//  1. RequestLayout or Invalidate from input handlers and callbacks
//  2. FlushLayout - measures bottom-up, sizes the root to the client
//     rectangle and lays out top-down
//  3. FlushPaint - returns the dirty rectangle to repaint
type Pipeline struct {
	dirty       graphics.Rect
	needsLayout bool
	needsPaint  bool
	layouts     int
}

// RequestLayout schedules a measure and layout pass. Layout always implies
// a repaint of the whole client area.
func (p *Pipeline) RequestLayout() {
	p.needsLayout = true
	p.needsPaint = true
}

// Invalidate marks r dirty. Dirty rectangles accumulate as their union
// until FlushPaint.
func (p *Pipeline) Invalidate(r graphics.Rect) {
	if r.IsEmpty() {
		return
	}
	p.dirty = p.dirty.Union(r)
	p.needsPaint = true
}

// NeedsLayout reports if a layout pass is pending.
func (p *Pipeline) NeedsLayout() bool {
	return p.needsLayout
}

// NeedsPaint reports if anything needs repainting.
func (p *Pipeline) NeedsPaint() bool {
	return p.needsPaint
}

// Layouts returns how many layout passes have run.
func (p *Pipeline) Layouts() int {
	return p.layouts
}

// FlushLayout runs the measure and layout passes over root when layout was
// requested. The root takes the window client rectangle between the two
// passes. Returns false when nothing was pending.
func (p *Pipeline) FlushLayout(w *view.Window, root *view.View) bool {
	if !p.needsLayout || root == nil {
		return false
	}
	w.BeforeMeasure(root)
	w.MeasureChildren(root)
	w.Measured(root)
	root.X, root.Y, root.W, root.H = w.CRC.X, w.CRC.Y, w.CRC.W, w.CRC.H
	w.LayoutChildren(root)
	w.Layouted(root)

	p.needsLayout = false
	p.layouts++
	p.dirty = p.dirty.Union(w.CRC)
	return true
}

// FlushPaint returns the rectangle that needs repainting and clears it.
// The boolean is false when nothing is dirty.
func (p *Pipeline) FlushPaint() (graphics.Rect, bool) {
	if !p.needsPaint {
		return graphics.Rect{}, false
	}
	r := p.dirty
	p.dirty = graphics.Rect{}
	p.needsPaint = false
	return r, !r.IsEmpty()
}
