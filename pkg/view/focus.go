package view

import "github.com/go-drift/ui/pkg/graphics"

// SetFocus offers focus depth-first, children before their parent. A view
// accepts when it is focusable, not hidden or disabled (inherited), has a
// SetFocus callback that returns true, and either nothing is focused or it
// already is. The first acceptance wins and becomes Window.Focus.
func (w *Window) SetFocus(v *View) bool {
	for _, c := range v.Children {
		if w.SetFocus(c) {
			return true
		}
	}
	if v.Focusable && v.SetFocus != nil && !v.IsHidden() && !v.IsDisabled() &&
		(w.Focus == nil || w.Focus == v) {
		if v.SetFocus(v) {
			w.Focus = v
			return true
		}
	}
	return false
}

// KillFocus notifies every focusable view in the subtree, children first.
func (w *Window) KillFocus(v *View) {
	for _, c := range v.Children {
		w.KillFocus(c)
	}
	if v.Focusable && v.KillFocus != nil {
		v.KillFocus(v)
	}
}

// KillHiddenFocus drops the window focus when the focused view in this
// subtree is hidden or disabled, directly or through an ancestor. The view
// is still told it lost focus.
func (w *Window) KillHiddenFocus(v *View) {
	if w.Focus == nil {
		return
	}
	if w.Focus == v {
		if v.IsHidden() || v.IsDisabled() {
			w.Focus = nil
			if v.KillFocus != nil {
				v.KillFocus(v)
			}
		}
		return
	}
	for _, c := range v.Children {
		w.KillHiddenFocus(c)
	}
}

// RequestFocus moves focus off a hidden or disabled view and then offers
// it to the first eligible view under root.
func (w *Window) RequestFocus(root *View) bool {
	w.KillHiddenFocus(root)
	return w.SetFocus(root)
}

// MoveFocus moves focus to v, notifying the previous owner.
func (w *Window) MoveFocus(v *View) bool {
	if w.Focus == v {
		return true
	}
	if prev := w.Focus; prev != nil {
		w.Focus = nil
		if prev.KillFocus != nil {
			prev.KillFocus(prev)
		}
		w.Invalidate(prev)
	}
	if v == nil {
		return true
	}
	if !w.SetFocus(v) {
		return false
	}
	w.Invalidate(v)
	return true
}

// FocusableAt returns the innermost view under pt that could take focus,
// or nil. Hidden and disabled subtrees are skipped.
func FocusableAt(v *View, pt graphics.Point) *View {
	if v.Hidden || v.Disabled || !v.Inside(pt) {
		return nil
	}
	for _, c := range v.Children {
		if f := FocusableAt(c, pt); f != nil {
			return f
		}
	}
	if v.Focusable && v.SetFocus != nil {
		return v
	}
	return nil
}
