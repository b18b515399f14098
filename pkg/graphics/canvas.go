package graphics

// Canvas is the drawing surface handed to paint callbacks. Coordinates are
// window client pixels. Fonts are identified by name; the surface resolves
// them however it renders text.
type Canvas interface {
	// FillRect fills r with c.
	FillRect(r Rect, c Color)
	// FrameRect strokes a one pixel border just inside r.
	FrameRect(r Rect, c Color)
	// DrawText draws s with its top-left corner at pt.
	DrawText(pt Point, s string, font string, c Color)
	// Size returns the drawable extent.
	Size() Point
}
