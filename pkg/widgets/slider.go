package widgets

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-drift/ui/pkg/errors"
	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/theme"
	"github.com/go-drift/ui/pkg/view"
)

// RepeatDelay is how long an increment or decrement button must be held
// before the value starts to auto-repeat.
const RepeatDelay = 500 * time.Millisecond

// Slider is a value in [Min, Max] with decrement and increment buttons on
// either side of its label.
type Slider struct {
	View *view.View
	Dec  *view.View
	Inc  *view.View

	Value int32
	Min   int32
	Max   int32
	Step  int32
	// Format renders the label; by default the label is a fmt format
	// taking the value when it contains '%', otherwise "label: value".
	Format   func(value int32) string
	OnChange func(s *Slider)

	label     string
	heldSince time.Time
	textSize  graphics.Point
}

// NewSlider returns a slider starting at min.
func NewSlider(label string, minWidthEm float32, min, max int32, onChange func(s *Slider)) *Slider {
	errors.Swear(min <= max, "widgets.NewSlider", "min %d > max %d", min, max)
	s := &Slider{Min: min, Max: max, Value: min, Step: 1, OnChange: onChange, label: label}
	v := view.New(view.KindSlider, label)
	v.Width = minWidthEm
	v.Focusable = true
	v.ColorID = theme.ColorWindowText
	v.Padding = graphics.UniformGaps(0.25)
	v.Insets = graphics.UniformGaps(0.25)
	v.Data = s
	s.View = v
	s.Dec = NewButton("-", 0, func(*view.View) { s.Add(-s.Step) })
	s.Inc = NewButton("+", 0, func(*view.View) { s.Add(s.Step) })
	for _, b := range []*view.View{s.Dec, s.Inc} {
		b.Focusable = false
		b.Flat = true
		b.HoverDelay = 0
		b.Hovering = nil
	}
	s.Dec.Tip = "Decrement"
	s.Inc.Tip = "Increment"
	v.Add(s.Dec, s.Inc)
	v.Measure = s.measure
	v.Layout = s.layout
	v.Paint = s.paint
	v.Every100ms = s.repeat
	v.MouseWheel = s.wheel
	v.KeyPressed = s.key
	v.SetFocus = func(*view.View) bool { return true }
	v.KillFocus = func(sv *view.View) { sv.Window().Invalidate(sv) }
	return s
}

// SliderOf returns the slider a view belongs to.
func SliderOf(v *view.View) *Slider {
	s, ok := v.Data.(*Slider)
	errors.Swear(ok && v.Kind == view.KindSlider, "widgets.SliderOf", "%s is not a slider", v.Name())
	return s
}

// SetValue clamps value to [Min, Max]. OnChange runs when it changes.
func (s *Slider) SetValue(value int32) {
	value = max(s.Min, min(s.Max, value))
	if value == s.Value {
		return
	}
	s.Value = value
	if w := s.View.Window(); w != nil {
		w.Invalidate(s.View)
	}
	if s.OnChange != nil {
		s.OnChange(s)
	}
}

// Add moves the value by delta.
func (s *Slider) Add(delta int32) {
	s.SetValue(s.Value + delta)
}

// Text returns the label for the current value.
func (s *Slider) Text() string {
	return s.textFor(s.Value)
}

func (s *Slider) textFor(value int32) string {
	if s.Format != nil {
		return s.Format(value)
	}
	label := s.label
	if w := s.View.Window(); w != nil {
		label = w.DisplayText(s.View)
	}
	if strings.Contains(label, "%") {
		return fmt.Sprintf(label, value)
	}
	return fmt.Sprintf("%s: %d", label, value)
}

// measure sizes the slider for the widest of its minimum and maximum
// labels so the layout does not jump as the value changes.
func (s *Slider) measure(v *view.View) {
	w := v.Window()
	f := fontOf(v)
	if w == nil || w.Metrics == nil || f == nil {
		return
	}
	v.Em = w.Metrics.Em(f)
	lo := w.Metrics.Measure(f, s.textFor(s.Min))
	hi := w.Metrics.Measure(f, s.textFor(s.Max))
	s.textSize = graphics.Pt(max(lo.X, hi.X, int32(float32(v.Em.X)*v.Width+0.5)), max(lo.Y, hi.Y))
	l, t, r, b := v.Insets.Pixels(v.Em)
	v.W = l + s.Dec.W + s.textSize.X + s.Inc.W + r
	v.H = t + max(s.textSize.Y, s.Dec.H, s.Inc.H) + b
}

func (s *Slider) layout(v *view.View) {
	l, t, r, b := v.Insets.Pixels(v.Em)
	inner := v.H - t - b
	s.Dec.X = v.X + l
	s.Dec.Y = v.Y + t + (inner-s.Dec.H)/2
	s.Inc.X = v.X + v.W - r - s.Inc.W
	s.Inc.Y = v.Y + t + (inner-s.Inc.H)/2
}

func (s *Slider) paint(v *view.View, c graphics.Canvas) {
	w := v.Window()
	if w.Focus == v {
		c.FrameRect(v.Rect(), w.Color(theme.ColorFocus))
	}
	mid := graphics.RectXYWH(s.Dec.X+s.Dec.W, v.Y, s.Inc.X-(s.Dec.X+s.Dec.W), v.H)
	if s.Max > s.Min {
		filled := mid
		filled.W = int32(int64(mid.W) * int64(s.Value-s.Min) / int64(s.Max-s.Min))
		c.FillRect(filled, w.Color(theme.ColorHighlight))
	}
	f := fontOf(v)
	if f == nil {
		return
	}
	str := s.Text()
	ext := w.Metrics.Measure(f, str)
	c.DrawText(graphics.Pt(mid.X+(mid.W-ext.X)/2, mid.Y+(mid.H-ext.Y)/2), str, f.Key(), textColor(v))
}

// repeat steps the value while a button stays armed past RepeatDelay.
func (s *Slider) repeat(v *view.View) {
	w := v.Window()
	if w == nil || v.IsDisabled() {
		return
	}
	var held *view.View
	switch {
	case s.Dec.Armed:
		held = s.Dec
	case s.Inc.Armed:
		held = s.Inc
	default:
		s.heldSince = time.Time{}
		return
	}
	now := w.Now()
	if s.heldSince.IsZero() {
		s.heldSince = now
		return
	}
	if now.Sub(s.heldSince) < RepeatDelay {
		return
	}
	if held == s.Dec {
		s.Add(-s.Step)
	} else {
		s.Add(s.Step)
	}
}

func (s *Slider) wheel(v *view.View, _, dy int32) {
	if !v.Hover {
		return
	}
	switch {
	case dy > 0:
		s.Add(s.Step)
	case dy < 0:
		s.Add(-s.Step)
	}
}

func (s *Slider) key(v *view.View, key view.Key) {
	if v.Window().Focus != v {
		return
	}
	switch key {
	case view.KeyLeft, view.KeyDown:
		s.Add(-s.Step)
	case view.KeyRight, view.KeyUp:
		s.Add(s.Step)
	}
}
