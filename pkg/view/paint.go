package view

import "github.com/go-drift/ui/pkg/graphics"

// Paint paints v and then its children, so parents draw background and
// chrome underneath. Nothing is painted while the client rectangle is
// empty, and hidden subtrees are skipped.
func (w *Window) Paint(v *View, c graphics.Canvas) {
	if v.Hidden || w.CRC.W <= 0 || w.CRC.H <= 0 {
		return
	}
	if v.Paint != nil {
		v.Paint(v, c)
	}
	for _, child := range v.Children {
		w.Paint(child, c)
	}
}
