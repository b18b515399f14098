package graphics

import "fmt"

// Point is a position or an extent in device pixels.
type Point struct {
	X int32
	Y int32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis aligned rectangle given by its top-left corner and extent.
// The right and bottom edges are exclusive.
type Rect struct {
	X int32
	Y int32
	W int32
	H int32
}

// RectXYWH constructs a Rect from position and size.
func RectXYWH(x, y, w, h int32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int32 {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int32 {
	return r.Y + r.H
}

// IsEmpty reports whether the rectangle covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether pt lies inside r.
func (r Rect) Contains(pt Point) bool {
	x := pt.X - r.X
	y := pt.Y - r.Y
	return 0 <= x && x < r.W && 0 <= y && y < r.H
}

// Inflate grows the rectangle by dx on the left and right and by dy on the
// top and bottom. Negative values shrink it.
func (r Rect) Inflate(dx, dy int32) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}

// Union returns the smallest rectangle containing both r and s.
// An empty rectangle does not contribute.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	x0, y0 := min(r.X, s.X), min(r.Y, s.Y)
	x1, y1 := max(r.Right(), s.Right()), max(r.Bottom(), s.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersect returns the overlap of r and s, or the zero Rect.
func (r Rect) Intersect(s Rect) Rect {
	x0, y0 := max(r.X, s.X), max(r.Y, s.Y)
	x1, y1 := min(r.Right(), s.Right()), min(r.Bottom(), s.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// Gaps describes insets or padding on the four sides of a view.
// Values are fractions of the font em, so 0.5 means half a character cell.
type Gaps struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// UniformGaps returns Gaps with the same value on every side.
func UniformGaps(v float32) Gaps {
	return Gaps{Left: v, Top: v, Right: v, Bottom: v}
}

// EmToPx converts a length expressed in ems into pixels for a font whose
// em is em pixels long, rounding to the nearest pixel.
func EmToPx(em int32, ratio float32) int32 {
	if em == 0 {
		return 0
	}
	return int32(float32(em)*ratio + 0.5)
}

// Pixels resolves the gaps against the em size of a view.
func (g Gaps) Pixels(em Point) (left, top, right, bottom int32) {
	return EmToPx(em.X, g.Left), EmToPx(em.Y, g.Top),
		EmToPx(em.X, g.Right), EmToPx(em.Y, g.Bottom)
}
