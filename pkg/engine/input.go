package engine

import (
	"github.com/go-drift/ui/pkg/errors"
	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/view"
)

var buttonMods = [...]view.Modifiers{
	view.ButtonLeft:   view.ModLeftButton,
	view.ButtonMiddle: view.ModMiddleButton,
	view.ButtonRight:  view.ModRightButton,
}

var buttonMessages = [...][2]view.MouseMessage{
	view.ButtonLeft:   {view.LeftButtonUp, view.LeftButtonDown},
	view.ButtonMiddle: {view.MiddleButtonUp, view.MiddleButtonDown},
	view.ButtonRight:  {view.RightButtonUp, view.RightButtonDown},
}

func (e *Engine) modifiers() view.Modifiers {
	w := e.Window
	mods := e.buttons
	if w.Alt {
		mods |= view.ModAlt
	}
	if w.Ctrl {
		mods |= view.ModCtrl
	}
	if w.Shift {
		mods |= view.ModShift
	}
	return mods
}

// MouseMove moves the pointer to pt and updates hover state.
func (e *Engine) MouseMove(pt graphics.Point) {
	defer errors.Recover("engine.MouseMove")
	w := e.Window
	w.Pointer = pt
	if w.Root != nil {
		w.Mouse(w.Root, view.MouseMove, e.modifiers())
	}
}

// MouseButton delivers a button transition at the current pointer. A left
// press moves focus to the focusable view under the pointer, if any. A
// release is a click: it is offered as a Tap, and a right click nobody
// taps opens the context menu.
func (e *Engine) MouseButton(button int, down bool) {
	defer errors.Recover("engine.MouseButton")
	errors.Swear(button >= 0 && button < len(buttonMods), "engine.MouseButton",
		"unknown button %d", button)
	w, root := e.Window, e.Window.Root
	if root == nil {
		return
	}
	if down {
		e.buttons |= buttonMods[button]
		if button == view.ButtonLeft {
			if v := view.FocusableAt(root, w.Pointer); v != nil {
				w.MoveFocus(v)
			}
		}
		w.Mouse(root, buttonMessages[button][1], e.modifiers())
		return
	}
	e.buttons &^= buttonMods[button]
	w.Mouse(root, buttonMessages[button][0], e.modifiers())
	if !w.Tap(root, button) && button == view.ButtonRight {
		w.ContextMenu(root)
	}
	e.Pipeline.RequestLayout()
}

// LongPress delivers a press to the first view that takes it.
func (e *Engine) LongPress(button int) bool {
	defer errors.Recover("engine.LongPress")
	if e.Window.Root == nil {
		return false
	}
	e.Pipeline.RequestLayout()
	return e.Window.Press(e.Window.Root, button)
}

// Wheel scrolls by dx, dy notches.
func (e *Engine) Wheel(dx, dy int32) {
	defer errors.Recover("engine.Wheel")
	if e.Window.Root != nil {
		e.Window.MouseWheel(e.Window.Root, dx, dy)
	}
}

// Key delivers a key transition. mods replaces the window modifier state.
func (e *Engine) Key(key view.Key, down bool, mods view.Modifiers) {
	defer errors.Recover("engine.Key")
	w := e.Window
	w.Alt = mods&view.ModAlt != 0
	w.Ctrl = mods&view.ModCtrl != 0
	w.Shift = mods&view.ModShift != 0
	if w.Root == nil {
		return
	}
	if down {
		w.KeyPressed(w.Root, key)
	} else {
		w.KeyReleased(w.Root, key)
	}
	e.Pipeline.RequestLayout()
}

// Char delivers typed text, one character per call.
func (e *Engine) Char(s string) {
	defer errors.Recover("engine.Char")
	if e.Window.Root == nil {
		return
	}
	e.Window.Character(e.Window.Root, s)
	e.Pipeline.RequestLayout()
}

// HitTest classifies pt for the host's non-client handling.
func (e *Engine) HitTest(pt graphics.Point) view.HitTest {
	if e.Window.Root == nil {
		return view.HitClient
	}
	return e.Window.HitTest(e.Window.Root, pt)
}
