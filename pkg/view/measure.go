package view

// Localized returns the localized form of the view's text.
func (w *Window) Localized(v *View) string {
	if v.StrID != 0 && w.NLS != nil {
		return w.NLS.String(v.StrID, v.Text)
	}
	return v.Text
}

// DisplayText is the localized text without shortcut markers.
func (w *Window) DisplayText(v *View) string {
	return StripMnemonic(w.Localized(v))
}

// Localize looks up the string id of the view's text.
func (w *Window) Localize(v *View) {
	if v.Text != "" && w.NLS != nil {
		v.StrID = w.NLS.StrID(v.Text)
	}
}

// MeasureText is the default Measure: it refreshes the view's em,
// baseline and descent from its font and sizes the view to its text,
// no narrower than Width ems.
func MeasureText(v *View) {
	w := v.Window()
	if w == nil || w.Metrics == nil {
		return
	}
	f := v.Font
	if f == nil {
		f = w.Fonts.Regular
	}
	if f == nil {
		return
	}
	m := w.Metrics
	v.Em = m.Em(f)
	v.Baseline = m.Baseline(f)
	v.Descent = m.Descent(f)
	if v.Text == "" {
		return
	}
	minW := int32(float32(v.Em.X)*v.Width + 0.5)
	s := w.DisplayText(v)
	var h, tw int32
	if v.Kind == KindLabel && v.Multiline {
		wrap := minW
		if wrap == 0 {
			wrap = -1
		}
		mt := m.MeasureMultiline(f, wrap, s)
		tw, h = mt.X, mt.Y
	} else {
		mt := m.Measure(f, s)
		tw, h = mt.X, mt.Y
	}
	v.W = max(minW, tw)
	v.H = h
}
