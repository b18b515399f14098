package widgets

import (
	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/text"
	"github.com/go-drift/ui/pkg/theme"
	"github.com/go-drift/ui/pkg/view"
)

// NewLabel returns a single line text view at least minWidthEm characters
// wide.
func NewLabel(label string, minWidthEm float32) *view.View {
	v := view.New(view.KindLabel, label)
	v.Width = minWidthEm
	v.ColorID = theme.ColorWindowText
	v.Paint = paintLabel
	return v
}

// NewMultilineLabel returns a label that wraps at minWidthEm characters,
// or only at newlines when minWidthEm is zero.
func NewMultilineLabel(label string, minWidthEm float32) *view.View {
	v := NewLabel(label, minWidthEm)
	v.Multiline = true
	return v
}

func paintLabel(v *view.View, c graphics.Canvas) {
	w := v.Window()
	f := fontOf(v)
	if w == nil || f == nil {
		return
	}
	s := w.DisplayText(v)
	col := textColor(v)
	if !v.Multiline {
		c.DrawText(graphics.Pt(v.X, v.Y), s, f.Key(), col)
		return
	}
	width := v.W
	if v.Width == 0 {
		width = -1
	}
	lines := text.Wrap(s, width, func(line string) int32 { return w.Metrics.Measure(f, line).X })
	for i, line := range lines {
		c.DrawText(graphics.Pt(v.X, v.Y+int32(i)*v.Em.Y), line, f.Key(), col)
	}
}
