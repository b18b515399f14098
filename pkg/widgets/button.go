package widgets

import (
	"unicode/utf8"

	"github.com/go-drift/ui/pkg/errors"
	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/theme"
	"github.com/go-drift/ui/pkg/view"
)

// ButtonState is the View.Data of a button.
type ButtonState struct {
	// OnTap runs when the button is clicked, pressed or its shortcut typed.
	OnTap func(b *view.View)
	// Toggle makes each activation flip View.Pressed.
	Toggle bool
}

// DefaultButtonInsets pad the label inside the button frame.
var DefaultButtonInsets = graphics.Gaps{Left: 0.5, Top: 0.125, Right: 0.5, Bottom: 0.125}

// NewButton returns a focusable button. A "&x" marker in label sets the
// keyboard shortcut.
func NewButton(label string, minWidthEm float32, onTap func(b *view.View)) *view.View {
	v := view.New(view.KindButton, label)
	v.Width = minWidthEm
	v.Focusable = true
	v.ColorID = theme.ColorButtonText
	v.Insets = DefaultButtonInsets
	v.Data = &ButtonState{OnTap: onTap}
	v.Measure = measureWithInsets
	v.Paint = paintButton
	v.Mouse = buttonMouse
	v.Tap = buttonTap
	v.Press = buttonPress
	v.Character = buttonCharacter
	v.KeyPressed = buttonKey
	v.SetFocus = func(*view.View) bool { return true }
	v.KillFocus = func(b *view.View) { b.Window().Invalidate(b) }
	return v
}

// NewToggle returns a button whose activation flips its pressed state.
func NewToggle(label string, minWidthEm float32, onTap func(b *view.View)) *view.View {
	v := NewButton(label, minWidthEm, onTap)
	v.Data.(*ButtonState).Toggle = true
	return v
}

func buttonState(v *view.View) *ButtonState {
	st, ok := v.Data.(*ButtonState)
	errors.Swear(ok && v.Kind == view.KindButton, "widgets.Button",
		"%s is not a button", v.Name())
	return st
}

// Activate runs the button action as if it had been clicked.
func Activate(v *view.View) {
	st := buttonState(v)
	if st.Toggle {
		v.Pressed = !v.Pressed
	}
	if w := v.Window(); w != nil {
		w.Invalidate(v)
	}
	if st.OnTap != nil {
		st.OnTap(v)
	}
}

func buttonMouse(v *view.View, m view.MouseMessage, _ view.Modifiers) {
	w := v.Window()
	switch m {
	case view.LeftButtonDown:
		if v.Inside(w.Pointer) {
			v.Armed = true
			w.Invalidate(v)
		}
	case view.LeftButtonUp:
		if v.Armed {
			v.Armed = false
			w.Invalidate(v)
		}
	}
}

func buttonTap(v *view.View, button int) bool {
	if button != view.ButtonLeft {
		return false
	}
	Activate(v)
	return true
}

func buttonPress(v *view.View, button int) bool {
	if button != view.ButtonLeft || !v.Inside(v.Window().Pointer) {
		return false
	}
	Activate(v)
	return true
}

func buttonCharacter(v *view.View, s string) {
	r, _ := utf8.DecodeRuneInString(s)
	if r != utf8.RuneError && v.Window().IsKeyboardShortcut(v, view.Key(r)) {
		Activate(v)
	}
}

func buttonKey(v *view.View, key view.Key) {
	if v.Window().Focus == v && (key == view.KeyEnter || key == ' ') {
		Activate(v)
	}
}

func paintButton(v *view.View, c graphics.Canvas) {
	w := v.Window()
	r := v.Rect()
	switch {
	case v.Armed || v.Pressed:
		c.FillRect(r, w.Color(theme.ColorButtonPressed))
	case v.Hover && !v.IsDisabled():
		c.FillRect(r, w.Color(theme.ColorButtonHover))
	case !v.Flat:
		c.FillRect(r, w.Color(theme.ColorButton))
	}
	if w.Focus == v {
		c.FrameRect(r, w.Color(theme.ColorFocus))
	}
	drawCentered(v, c, w.DisplayText(v), textColor(v))
}
