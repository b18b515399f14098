package layout

import (
	"github.com/go-drift/ui/pkg/errors"
	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/view"
)

// ContainerMeasure sizes the spacer children of a plain container against
// its inner area: a child with a maximum takes that much (Infinite meaning
// the full inner extent) less its padding. Any other kind of child is a
// fatal assertion.
func ContainerMeasure(p *view.View) {
	for _, c := range p.Children {
		if c.Hidden {
			continue
		}
		checkContainerChild(p, c, "layout.ContainerMeasure")
		fitContainerChild(p, c)
	}
}

// ContainerLayout positions the spacer children of a plain container by
// their alignment bits: pinned to a side, or centered on an axis when
// neither or both of its sides are set.
func ContainerLayout(p *view.View) {
	il, it, ir, ib := p.Insets.Pixels(p.Em)
	lf, rt := p.X+il, p.X+p.W-ir
	tp, bt := p.Y+it, p.Y+p.H-ib
	for _, c := range p.Children {
		if c.Hidden {
			continue
		}
		checkContainerChild(p, c, "layout.ContainerLayout")
		fitContainerChild(p, c)
		pl, pt, pr, pb := c.Padding.Pixels(c.Em)
		switch horizontal.alignment(c.Align) {
		case -1:
			c.X = lf + pl
		case 1:
			c.X = rt - c.W - pr
		default:
			c.X = lf + pl + (rt-lf-pl-pr-c.W)/2
		}
		switch vertical.alignment(c.Align) {
		case -1:
			c.Y = tp + pt
		case 1:
			c.Y = bt - c.H - pb
		default:
			c.Y = tp + pt + (bt-tp-pt-pb-c.H)/2
		}
		debugf(p, "container %s: %s at %s (%s)", p.Name(), c.Name(), c.Rect(), c.Align)
	}
}

func checkContainerChild(p, c *view.View, op string) {
	errors.Swear(c.Kind == view.KindSpacer, op,
		"%s: container children must be spacers, got %s", p.Name(), c.Name())
	errors.Swear(c.MaxW == 0 || c.MaxW >= c.W, op,
		"%s: max_w %d smaller than w %d", c.Name(), c.MaxW, c.W)
	errors.Swear(c.MaxH == 0 || c.MaxH >= c.H, op,
		"%s: max_h %d smaller than h %d", c.Name(), c.MaxH, c.H)
}

func fitContainerChild(p, c *view.View) {
	il, it, ir, ib := p.Insets.Pixels(p.Em)
	pl, pt, pr, pb := c.Padding.Pixels(c.Em)
	pw := p.W - il - ir
	ph := p.H - it - ib
	if cw := limitOf(c.MaxW, pw); cw > 0 {
		c.W = max(0, min(cw, pw-pl-pr))
	}
	if ch := limitOf(c.MaxH, ph); ch > 0 {
		c.H = max(0, min(ch, ph-pt-pb))
	}
}

func limitOf(m, full int32) int32 {
	if m == view.Infinite {
		return full
	}
	return m
}

// Pinned returns a spacer of the given size aligned inside a container.
func Pinned(w, h int32, align graphics.Align) *view.View {
	s := NewSpacer()
	s.W, s.H = w, h
	s.MaxW, s.MaxH = w, h
	s.Align = align
	return s
}
