package view

import "github.com/go-drift/ui/pkg/errors"

// SetParents links every descendant of v to its parent. A child that
// already belongs to another view is a fatal assertion.
func (w *Window) SetParents(v *View) {
	v.window = w
	for _, c := range v.Children {
		if c.Parent == nil {
			c.Parent = v
		}
		errors.Swear(c.Parent == v, "view.SetParents",
			"no reparenting: %s belongs to %s, found under %s",
			c.Name(), c.Parent.Name(), v.Name())
		w.SetParents(c)
	}
}

// InitTree runs the init pass on root and all its descendants.
func (w *Window) InitTree(root *View) {
	w.initView(root, root.Parent)
	w.InitChildren(root)
}

// InitChildren runs each child's Init exactly once (the slot is cleared
// after the call), gives children without a font the window's regular
// font, derives a missing em from the parent's font and localizes
// non-empty text. Pre-order.
func (w *Window) InitChildren(v *View) {
	for _, c := range v.Children {
		w.initView(c, v)
		w.InitChildren(c)
	}
}

func (w *Window) initView(c, parent *View) {
	c.window = w
	if c.Init != nil {
		init := c.Init
		c.Init = nil
		init(c)
	}
	if c.Font == nil {
		c.Font = w.Fonts.Regular
	}
	if (c.Em.X == 0 || c.Em.Y == 0) && w.Metrics != nil {
		f := c.Font
		if parent != nil && parent.Font != nil {
			f = parent.Font
		}
		if f != nil {
			c.Em = w.Metrics.Em(f)
		}
	}
	if c.Text != "" {
		w.Localize(c)
	}
}

// MeasureChildren measures bottom-up: children first, then v. Hidden
// subtrees are skipped.
func (w *Window) MeasureChildren(v *View) {
	if v.Hidden {
		return
	}
	for _, c := range v.Children {
		w.MeasureChildren(c)
	}
	if v.Measure != nil {
		v.Measure(v)
	}
}

// LayoutChildren lays out top-down: v positions its children before they
// lay out their own. Hidden subtrees are skipped.
func (w *Window) LayoutChildren(v *View) {
	if v.Hidden {
		return
	}
	if v.Layout != nil {
		v.Layout(v)
	}
	for _, c := range v.Children {
		w.LayoutChildren(c)
	}
}

// BeforeMeasure and the other bracket hooks walk the whole visible tree.
func (w *Window) BeforeMeasure(v *View) {
	w.visitVisible(v, func(x *View) {
		if x.BeforeMeasure != nil {
			x.BeforeMeasure(x)
		}
	})
}

// Measured calls each visible view's Measured hook, pre-order.
func (w *Window) Measured(v *View) {
	w.visitVisible(v, func(x *View) {
		if x.Measured != nil {
			x.Measured(x)
		}
	})
}

// Layouted calls each visible view's Layouted hook, pre-order.
func (w *Window) Layouted(v *View) {
	w.visitVisible(v, func(x *View) {
		if x.Layouted != nil {
			x.Layouted(x)
		}
	})
}

func (w *Window) visitVisible(v *View, fn func(*View)) {
	if v.Hidden {
		return
	}
	fn(v)
	for _, c := range v.Children {
		w.visitVisible(c, fn)
	}
}

// Timer delivers a timer tick to every view, hidden and disabled included.
func (w *Window) Timer(v *View, id TimerID) {
	if v.Timer != nil {
		v.Timer(v, id)
	}
	for _, c := range v.Children {
		w.Timer(c, id)
	}
}

// EverySec delivers the one second tick to every view.
func (w *Window) EverySec(v *View) {
	if v.EverySec != nil {
		v.EverySec(v)
	}
	for _, c := range v.Children {
		w.EverySec(c)
	}
}

// Every100ms delivers the 100 millisecond tick to every view.
func (w *Window) Every100ms(v *View) {
	if v.Every100ms != nil {
		v.Every100ms(v)
	}
	for _, c := range v.Children {
		w.Every100ms(c)
	}
}

// Walk calls fn for v and every descendant, pre-order, regardless of state.
// fn returning false prunes the subtree below that view.
func Walk(v *View, fn func(v *View) bool) {
	if !fn(v) {
		return
	}
	for _, c := range v.Children {
		Walk(c, fn)
	}
}
