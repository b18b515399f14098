package text

import (
	"unicode/utf8"

	"github.com/go-drift/ui/pkg/graphics"
)

// FixedMetrics is a Metrics where every rune has the same advance. CharW
// and LineH apply to a font of Size equal to LineH; other sizes scale
// proportionally, so layout arithmetic is exact.
type FixedMetrics struct {
	CharW int32
	LineH int32
}

// NewFixedMetrics returns metrics with the given cell size.
func NewFixedMetrics(charW, lineH int32) *FixedMetrics {
	return &FixedMetrics{CharW: charW, LineH: lineH}
}

func (m *FixedMetrics) cell(f *Font) graphics.Point {
	if f == nil || f.Size <= 0 || int32(f.Size) == m.LineH {
		return graphics.Pt(m.CharW, m.LineH)
	}
	scale := f.Size / float64(m.LineH)
	return graphics.Pt(int32(float64(m.CharW)*scale+0.5), int32(f.Size+0.5))
}

func (m *FixedMetrics) width(f *Font, s string) int32 {
	return int32(utf8.RuneCountInString(s)) * m.cell(f).X
}

// Em returns the cell size.
func (m *FixedMetrics) Em(f *Font) graphics.Point {
	return m.cell(f)
}

// Measure returns rune count times the cell width by one line.
func (m *FixedMetrics) Measure(f *Font, s string) graphics.Point {
	return graphics.Pt(m.width(f, s), m.cell(f).Y)
}

// MeasureMultiline wraps with Wrap.
func (m *FixedMetrics) MeasureMultiline(f *Font, width int32, s string) graphics.Point {
	lines := Wrap(s, width, func(line string) int32 { return m.width(f, line) })
	var pt graphics.Point
	for _, line := range lines {
		pt.X = max(pt.X, m.width(f, line))
	}
	pt.Y = int32(len(lines)) * m.cell(f).Y
	return pt
}

// Ascent is four fifths of the line height.
func (m *FixedMetrics) Ascent(f *Font) int32 {
	return m.cell(f).Y * 4 / 5
}

// Baseline equals Ascent; fixed metrics have no leading.
func (m *FixedMetrics) Baseline(f *Font) int32 {
	return m.Ascent(f)
}

// Descent is the rest of the line below the baseline.
func (m *FixedMetrics) Descent(f *Font) int32 {
	return m.cell(f).Y - m.Ascent(f)
}
