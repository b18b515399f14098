package widgets

import (
	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/text"
	"github.com/go-drift/ui/pkg/theme"
	"github.com/go-drift/ui/pkg/view"
)

// fontOf returns the view font, falling back to the window's regular font.
func fontOf(v *view.View) *text.Font {
	if v.Font != nil {
		return v.Font
	}
	if w := v.Window(); w != nil {
		return w.Fonts.Regular
	}
	return nil
}

// measureWithInsets runs the default text measure and grows the view by
// its insets.
func measureWithInsets(v *view.View) {
	view.MeasureText(v)
	l, t, r, b := v.Insets.Pixels(v.Em)
	v.W += l + r
	v.H += t + b
}

// drawCentered draws s centered in the view bounds.
func drawCentered(v *view.View, c graphics.Canvas, s string, col graphics.Color) {
	w := v.Window()
	f := fontOf(v)
	if w == nil || w.Metrics == nil || f == nil || s == "" {
		return
	}
	ext := w.Metrics.Measure(f, s)
	at := graphics.Pt(v.X+(v.W-ext.X)/2, v.Y+(v.H-ext.Y)/2)
	c.DrawText(at, s, f.Key(), col)
}

// textColor resolves the view's color, greyed out while disabled.
func textColor(v *view.View) graphics.Color {
	w := v.Window()
	if w == nil {
		return graphics.ColorBlack
	}
	if v.IsDisabled() {
		return w.Color(theme.ColorButtonDisabled)
	}
	return w.Color(v.ColorID)
}
