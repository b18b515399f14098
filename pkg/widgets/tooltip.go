package widgets

import (
	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/theme"
	"github.com/go-drift/ui/pkg/view"
)

// Tooltip is the window's view.TooltipPresenter. It paints above the view
// tree, so the engine paints it after the root.
type Tooltip struct {
	owner *view.View
	tip   string
	rect  graphics.Rect
}

var _ view.TooltipPresenter = (*Tooltip)(nil)

// ShowTooltip shows tip for owner with its top-left corner at at, moved
// left as needed to stay inside the client area.
func (t *Tooltip) ShowTooltip(owner *view.View, tip string, at graphics.Point) {
	w := owner.Window()
	if w == nil || w.Metrics == nil {
		return
	}
	f := w.Fonts.Regular
	ext := w.Metrics.Measure(f, tip)
	em := w.Metrics.Em(f)
	r := graphics.RectXYWH(at.X, at.Y, ext.X+em.X, ext.Y+em.Y/2)
	if r.Right() > w.CRC.Right() {
		r.X = max(0, w.CRC.Right()-r.W)
	}
	if t.owner != nil {
		w.InvalidateRect(t.rect)
	}
	t.owner, t.tip, t.rect = owner, tip, r
	w.InvalidateRect(r)
}

// HideTooltip removes the tooltip.
func (t *Tooltip) HideTooltip() {
	if t.owner == nil {
		return
	}
	if w := t.owner.Window(); w != nil {
		w.InvalidateRect(t.rect)
	}
	t.owner, t.tip = nil, ""
}

// TooltipOwner returns the view whose tooltip is showing, or nil.
func (t *Tooltip) TooltipOwner() *view.View {
	return t.owner
}

// Text returns the visible tooltip text.
func (t *Tooltip) Text() string {
	return t.tip
}

// Bounds returns where the tooltip is drawn.
func (t *Tooltip) Bounds() graphics.Rect {
	return t.rect
}

// Paint draws the tooltip if one is showing.
func (t *Tooltip) Paint(w *view.Window, c graphics.Canvas) {
	if t.owner == nil || t.owner.IsHidden() {
		return
	}
	f := w.Fonts.Regular
	em := w.Metrics.Em(f)
	c.FillRect(t.rect, w.Color(theme.ColorTooltip))
	c.FrameRect(t.rect, w.Color(theme.ColorTooltipText))
	c.DrawText(graphics.Pt(t.rect.X+em.X/2, t.rect.Y+em.Y/4), t.tip, f.Key(), w.Color(theme.ColorTooltipText))
}
