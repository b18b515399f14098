package view

import "github.com/go-drift/ui/pkg/graphics"

// KeyPressed delivers a key press pre-order, skipping hidden and disabled
// subtrees.
func (w *Window) KeyPressed(v *View, key Key) {
	if v.Hidden || v.Disabled {
		return
	}
	if v.KeyPressed != nil {
		v.KeyPressed(v, key)
	}
	for _, c := range v.Children {
		w.KeyPressed(c, key)
	}
}

// KeyReleased delivers a key release pre-order, skipping hidden and
// disabled subtrees.
func (w *Window) KeyReleased(v *View, key Key) {
	if v.Hidden || v.Disabled {
		return
	}
	if v.KeyReleased != nil {
		v.KeyReleased(v, key)
	}
	for _, c := range v.Children {
		w.KeyReleased(c, key)
	}
}

// Character delivers typed text pre-order, skipping hidden and disabled
// subtrees.
func (w *Window) Character(v *View, utf8 string) {
	if v.Hidden || v.Disabled {
		return
	}
	if v.Character != nil {
		v.Character(v, utf8)
	}
	for _, c := range v.Children {
		w.Character(c, utf8)
	}
}

// MouseWheel delivers a wheel delta pre-order to every enabled visible view.
func (w *Window) MouseWheel(v *View, dx, dy int32) {
	if v.IsHidden() || v.IsDisabled() {
		return
	}
	if v.MouseWheel != nil {
		v.MouseWheel(v, dx, dy)
	}
	for _, c := range v.Children {
		w.MouseWheel(c, dx, dy)
	}
}

// Mouse delivers a pointer event to every enabled visible view in the
// subtree. For move and hover events it first updates the view's Hover
// state from the window pointer; a change repaints the bounds grown by a
// quarter of the view size on each side and notifies HoverChanged.
func (w *Window) Mouse(v *View, m MouseMessage, mods Modifiers) {
	if (m == MouseMove || m == MouseHover) && !v.IsHidden() {
		r := v.Rect()
		was := v.Hover
		v.Hover = r.Contains(w.Pointer)
		if was != v.Hover {
			w.InvalidateRect(r.Inflate(v.W/4, v.H/4))
			if v.Hovering != nil {
				w.HoverChanged(v)
			}
		}
	}
	if v.IsHidden() || v.IsDisabled() {
		return
	}
	if v.Mouse != nil {
		v.Mouse(v, m, mods)
	}
	for _, c := range v.Children {
		w.Mouse(c, m, mods)
	}
}

// Tap routes a click to the deepest enabled visible view under the pointer
// whose Tap consumes it. Children are offered the event before their
// parent; the first consumer stops dispatch.
func (w *Window) Tap(v *View, button int) bool {
	if v.IsHidden() || v.IsDisabled() || !v.Inside(w.Pointer) {
		return false
	}
	for _, c := range v.Children {
		if w.Tap(c, button) {
			return true
		}
	}
	return v.Tap != nil && v.Tap(v, button)
}

// Press routes a long press like Tap but without the pointer test, so that
// keyboard driven presses reach views anywhere in the tree.
func (w *Window) Press(v *View, button int) bool {
	if v.IsHidden() || v.IsDisabled() {
		return false
	}
	for _, c := range v.Children {
		if w.Press(c, button) {
			return true
		}
	}
	return v.Press != nil && v.Press(v, button)
}

// ContextMenu offers a context menu request to the deepest enabled visible
// view under the pointer that has a handler. Returns true once a handler
// ran.
func (w *Window) ContextMenu(v *View) bool {
	if v.IsHidden() || v.IsDisabled() {
		return false
	}
	for _, c := range v.Children {
		if w.ContextMenu(c) {
			return true
		}
	}
	if v.ContextMenu != nil && v.Inside(w.Pointer) {
		v.ContextMenu(v)
		return true
	}
	return false
}

// Message delivers m pre-order to every view, hidden and disabled included.
// Before a view sees the message its overdue hover task, if any, fires.
// The first handler returning true stops dispatch.
func (w *Window) Message(v *View, m *Message) bool {
	w.fireHover(v)
	if v.Message != nil && v.Message(v, m) {
		return true
	}
	for _, c := range v.Children {
		if w.Message(c, m) {
			return true
		}
	}
	return false
}

// IsKeyboardShortcut reports whether key triggers v's shortcut. Keys are
// compared upper-cased and only printable ASCII qualifies. While another
// view holds focus the shortcut needs Alt; otherwise Alt is optional.
func (w *Window) IsKeyboardShortcut(v *View, key Key) bool {
	if key < 0x20 || key > 0x7F || v.Shortcut == 0 {
		return false
	}
	ch := upperASCII(rune(key))
	needAlt := w.Focus != nil && w.Focus != v
	return (w.Alt || !needAlt) && upperASCII(v.Shortcut) == ch
}

// HitTest classifies pt for the platform's non-client handling. The
// deepest visible view under pt with a HitTest callback decides; anything
// else is client area.
func (w *Window) HitTest(v *View, pt graphics.Point) HitTest {
	if v.Hidden || !v.Inside(pt) {
		return HitClient
	}
	for _, c := range v.Children {
		if c.Hidden || !c.Inside(pt) {
			continue
		}
		if ht := w.HitTest(c, pt); ht != HitClient || c.HitTest != nil {
			return ht
		}
	}
	if v.HitTest != nil {
		return v.HitTest(v, pt)
	}
	return HitClient
}
