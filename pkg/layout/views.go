package layout

import (
	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/view"
)

// DefaultStackInsets is half a character cell left and right and a quarter
// cell above and below.
var DefaultStackInsets = graphics.Gaps{Left: 0.5, Top: 0.25, Right: 0.5, Bottom: 0.25}

// NewHStack returns a horizontal stack holding children.
func NewHStack(children ...*view.View) *view.View {
	s := view.New(view.KindHStack, "")
	s.Insets = DefaultStackInsets
	s.Measure = HStackMeasure
	s.Layout = HStackLayout
	s.Hovering = nil
	return s.Add(children...)
}

// NewVStack returns a vertical stack holding children.
func NewVStack(children ...*view.View) *view.View {
	s := view.New(view.KindVStack, "")
	s.Insets = DefaultStackInsets
	s.Measure = VStackMeasure
	s.Layout = VStackLayout
	s.Hovering = nil
	return s.Add(children...)
}

// NewContainer returns a plain container. Its children must be spacers.
func NewContainer(children ...*view.View) *view.View {
	c := view.New(view.KindContainer, "")
	c.Measure = ContainerMeasure
	c.Layout = ContainerLayout
	c.Hovering = nil
	return c.Add(children...)
}

// NewSpacer returns an empty greedy view that absorbs leftover space.
func NewSpacer() *view.View {
	s := view.New(view.KindSpacer, "")
	s.MaxW, s.MaxH = view.Infinite, view.Infinite
	s.Measure = nil
	s.Hovering = nil
	return s
}
