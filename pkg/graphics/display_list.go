package graphics

import (
	"fmt"
	"strings"
)

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []Op
	size Point
}

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpFrameRect
	OpDrawText
)

// Op is one recorded drawing call.
type Op struct {
	Kind  OpKind
	Rect  Rect
	At    Point
	Text  string
	Font  string
	Color Color
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpFillRect:
			canvas.FillRect(op.Rect, op.Color)
		case OpFrameRect:
			canvas.FrameRect(op.Rect, op.Color)
		case OpDrawText:
			canvas.DrawText(op.At, op.Text, op.Font, op.Color)
		}
	}
}

// Ops returns the recorded operations in order.
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Texts returns the strings drawn, in paint order.
func (d *DisplayList) Texts() []string {
	var out []string
	for _, op := range d.ops {
		if op.Kind == OpDrawText {
			out = append(out, op.Text)
		}
	}
	return out
}

// String lists the operations one per line.
func (d *DisplayList) String() string {
	var b strings.Builder
	for _, op := range d.ops {
		switch op.Kind {
		case OpFillRect:
			fmt.Fprintf(&b, "fillRect rect=%s color=%s\n", formatRect(op.Rect), op.Color.Hex())
		case OpFrameRect:
			fmt.Fprintf(&b, "frameRect rect=%s color=%s\n", formatRect(op.Rect), op.Color.Hex())
		case OpDrawText:
			fmt.Fprintf(&b, "drawText at=%d,%d text=%s font=%s color=%s\n",
				op.At.X, op.At.Y, op.Text, op.Font, op.Color.Hex())
		}
	}
	return b.String()
}

func formatRect(r Rect) string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.W, r.H)
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Point {
	return d.size
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []Op
	recording bool
	size      Point
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Point) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops, size: r.size}
}

func (r *PictureRecorder) append(op Op) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type recordingCanvas struct {
	recorder *PictureRecorder
}

func (c *recordingCanvas) FillRect(r Rect, col Color) {
	c.recorder.append(Op{Kind: OpFillRect, Rect: r, Color: col})
}

func (c *recordingCanvas) FrameRect(r Rect, col Color) {
	c.recorder.append(Op{Kind: OpFrameRect, Rect: r, Color: col})
}

func (c *recordingCanvas) DrawText(pt Point, s string, font string, col Color) {
	c.recorder.append(Op{Kind: OpDrawText, At: pt, Text: s, Font: font, Color: col})
}

func (c *recordingCanvas) Size() Point {
	return c.recorder.size
}
