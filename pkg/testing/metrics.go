package testing

import (
	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/text"
)

// NewFixedMetrics returns text.FixedMetrics with the given cell size.
func NewFixedMetrics(charW, lineH int32) *text.FixedMetrics {
	return text.NewFixedMetrics(charW, lineH)
}

// RecordingInvalidator collects invalidated rectangles. It satisfies
// view.Invalidator.
type RecordingInvalidator struct {
	Rects []graphics.Rect
}

// Invalidate records r.
func (r *RecordingInvalidator) Invalidate(rect graphics.Rect) {
	r.Rects = append(r.Rects, rect)
}

// Bounds returns the union of every recorded rectangle.
func (r *RecordingInvalidator) Bounds() graphics.Rect {
	var u graphics.Rect
	for _, rect := range r.Rects {
		u = u.Union(rect)
	}
	return u
}

// Reset forgets all recorded rectangles.
func (r *RecordingInvalidator) Reset() {
	r.Rects = r.Rects[:0]
}
