package view

import (
	"time"

	"github.com/go-drift/ui/pkg/errors"
	"github.com/go-drift/ui/pkg/graphics"
)

type hoverState int

const (
	hoverIdle hoverState = iota
	hoverPending
	hoverDelivered
)

// hoverTask is the deferred Hovering(v, true) call. It is polled on every
// Message dispatch; overwriting the state is the only way to cancel it.
type hoverTask struct {
	state    hoverState
	deadline time.Time
}

// HoverPending reports whether a deferred hover notification is scheduled
// and when it is due.
func (v *View) HoverPending() (time.Time, bool) {
	return v.hover.deadline, v.hover.state == hoverPending
}

// HoverChanged reacts to a change of v.Hover. Leaving cancels any pending
// notification and calls Hovering(v, false). Entering with a zero delay
// calls Hovering(v, true) at once; a positive delay schedules it for
// now+delay unless it was already delivered.
func (w *Window) HoverChanged(v *View) {
	if v.Hovering == nil || v.Hidden {
		return
	}
	if !v.Hover {
		v.hover = hoverTask{}
		v.Hovering(v, false)
		return
	}
	errors.Swear(v.HoverDelay >= 0, "view.HoverChanged",
		"%s: negative hover delay %v", v.Name(), v.HoverDelay)
	switch {
	case v.HoverDelay == 0:
		v.hover = hoverTask{state: hoverDelivered}
		v.Hovering(v, true)
	case v.hover.state != hoverDelivered:
		v.hover = hoverTask{state: hoverPending, deadline: w.Now().Add(v.HoverDelay)}
	}
}

func (w *Window) fireHover(v *View) {
	if v.Hovering == nil || v.Hidden || v.hover.state != hoverPending {
		return
	}
	if w.Now().After(v.hover.deadline) {
		v.hover.state = hoverDelivered
		v.Hovering(v, true)
	}
}

// ShowTip is the default Hovering callback: it shows the view's tooltip
// above the pointer, or below it when there is no room, and hides it when
// hovering ends.
func ShowTip(v *View, start bool) {
	w := v.Window()
	if w == nil || w.Tooltip == nil {
		return
	}
	if start && w.Tooltip.TooltipOwner() == nil && v.Tip != "" && !v.IsHidden() {
		tip := v.Tip
		if w.NLS != nil {
			tip = w.NLS.Str(tip)
		}
		y := w.Pointer.Y - v.Em.Y
		if y < v.Em.Y {
			y = w.Pointer.Y + v.Em.Y*3/2
		}
		y = min(w.CRC.H-v.Em.Y*3/2, max(0, y))
		w.Tooltip.ShowTooltip(v, tip, graphics.Pt(w.Pointer.X, y))
	} else if !start && w.Tooltip.TooltipOwner() == v {
		w.Tooltip.HideTooltip()
	}
}
