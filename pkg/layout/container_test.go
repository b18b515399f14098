package layout

import (
	"testing"

	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/view"
)

func TestContainer_Alignment(t *testing.T) {
	tests := []struct {
		name  string
		align graphics.Align
		x, y  int32
	}{
		{"center", graphics.AlignCenter, 40, 20},
		{"top left", graphics.AlignLeft | graphics.AlignTop, 0, 0},
		{"bottom right", graphics.AlignRight | graphics.AlignBottom, 80, 40},
		{"left|right centers", graphics.AlignLeft | graphics.AlignRight, 40, 20},
		{"top|bottom centers", graphics.AlignTop | graphics.AlignBottom | graphics.AlignLeft, 0, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := Pinned(20, 10, tt.align)
			c := NewContainer(sp)
			run(newWindow(100, 50), c)
			if sp.X != tt.x || sp.Y != tt.y {
				t.Errorf("%s: at %d,%d, want %d,%d", tt.align, sp.X, sp.Y, tt.x, tt.y)
			}
			if sp.W != 20 || sp.H != 10 {
				t.Errorf("size %dx%d, want 20x10", sp.W, sp.H)
			}
		})
	}
}

func TestContainer_GreedySpacerFillsInnerArea(t *testing.T) {
	sp := NewSpacer()
	c := NewContainer(sp)
	c.Insets = graphics.UniformGaps(0.5)
	run(newWindow(100, 50), c)
	// em is 8x16: 4px left and right, 8px top and bottom.
	if sp.Rect() != graphics.RectXYWH(4, 8, 92, 34) {
		t.Errorf("spacer at %s", sp.Rect())
	}
}

func TestContainer_RejectsNonSpacer(t *testing.T) {
	c := NewContainer(fixed(10, 10))
	expectAssertion(t, "layout.ContainerMeasure", func() { ContainerMeasure(c) })
	expectAssertion(t, "layout.ContainerLayout", func() { ContainerLayout(c) })
}

func TestPipeline_InvalidateUnion(t *testing.T) {
	var p Pipeline
	if p.NeedsPaint() {
		t.Fatal("fresh pipeline needs paint")
	}
	p.Invalidate(graphics.RectXYWH(10, 10, 10, 10))
	p.Invalidate(graphics.RectXYWH(30, 0, 5, 5))
	p.Invalidate(graphics.Rect{})
	r, ok := p.FlushPaint()
	if !ok || r != graphics.RectXYWH(10, 0, 25, 20) {
		t.Errorf("FlushPaint = %s, %v", r, ok)
	}
	if _, ok := p.FlushPaint(); ok || p.NeedsPaint() {
		t.Error("FlushPaint must clear dirty state")
	}
}

func TestPipeline_FlushLayout(t *testing.T) {
	win := newWindow(320, 200)
	root := NewVStack(fixed(10, 10))
	win.SetRoot(root)
	win.InitTree(root)

	var p Pipeline
	if p.FlushLayout(win, root) {
		t.Fatal("layout ran without a request")
	}
	p.RequestLayout()
	if !p.NeedsLayout() || !p.FlushLayout(win, root) {
		t.Fatal("requested layout did not run")
	}
	if p.NeedsLayout() || p.Layouts() != 1 {
		t.Errorf("needsLayout=%v layouts=%d", p.NeedsLayout(), p.Layouts())
	}
	if root.Rect() != win.CRC {
		t.Errorf("root at %s, want client rect %s", root.Rect(), win.CRC)
	}
	if r, ok := p.FlushPaint(); !ok || r != win.CRC {
		t.Errorf("layout must repaint the client area, got %s %v", r, ok)
	}
}

func TestPipeline_HooksBracketPasses(t *testing.T) {
	win := newWindow(100, 100)
	var order []string
	leaf := fixed(10, 10)
	leaf.BeforeMeasure = func(v *view.View) { order = append(order, "before") }
	leaf.Measure = func(v *view.View) { order = append(order, "measure") }
	leaf.Measured = func(v *view.View) { order = append(order, "measured") }
	leaf.Layout = func(v *view.View) { order = append(order, "layout") }
	leaf.Layouted = func(v *view.View) { order = append(order, "layouted") }
	root := NewVStack(leaf)
	run(win, root)
	want := []string{"before", "measure", "measured", "layout", "layouted"}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}
