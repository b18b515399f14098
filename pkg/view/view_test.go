package view

import (
	"strings"
	"testing"
	"time"

	"github.com/go-drift/ui/pkg/errors"
	"github.com/go-drift/ui/pkg/graphics"
	uitest "github.com/go-drift/ui/pkg/testing"
	"github.com/go-drift/ui/pkg/text"
)

func newTestWindow() (*Window, *uitest.FakeClock, *uitest.RecordingInvalidator) {
	w := NewWindow(uitest.NewFixedMetrics(8, 16), text.DefaultFonts(16))
	clk := uitest.NewFakeClock()
	inv := &uitest.RecordingInvalidator{}
	w.Clock = clk
	w.Invalidator = inv
	w.CRC = graphics.RectXYWH(0, 0, 640, 480)
	return w, clk, inv
}

func expectAssertion(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected assertion from %s", op)
		}
		ae, ok := r.(*errors.AssertionError)
		if !ok {
			t.Fatalf("expected *errors.AssertionError, got %T: %v", r, r)
		}
		if ae.Op != op {
			t.Errorf("assertion op = %q, want %q", ae.Op, op)
		}
	}()
	fn()
}

func TestHiddenAndDisabledAreInherited(t *testing.T) {
	leaf := New(KindLabel, "leaf")
	mid := New(KindHStack, "").Add(leaf)
	root := New(KindContainer, "").Add(mid)

	if leaf.IsHidden() || leaf.IsDisabled() {
		t.Fatal("fresh tree must be visible and enabled")
	}
	root.Hidden = true
	if !leaf.IsHidden() || !mid.IsHidden() {
		t.Error("hidden root must hide descendants")
	}
	root.Hidden = false
	mid.Disabled = true
	if !leaf.IsDisabled() {
		t.Error("disabled parent must disable leaf")
	}
	if root.IsDisabled() {
		t.Error("disabled child must not disable its parent")
	}
}

func TestAddRejectsReparenting(t *testing.T) {
	child := New(KindLabel, "x")
	New(KindHStack, "").Add(child)
	other := New(KindHStack, "")
	expectAssertion(t, "view.Add", func() { other.Add(child) })
}

func TestSetParentsRejectsReparenting(t *testing.T) {
	w, _, _ := newTestWindow()
	shared := New(KindLabel, "shared")
	a := New(KindHStack, "").Add(shared)
	b := &View{Kind: KindHStack, Children: []*View{shared}}
	root := &View{Kind: KindContainer, Children: []*View{a, b}}
	expectAssertion(t, "view.SetParents", func() { w.SetParents(root) })
}

func TestSetParentsLinksChildren(t *testing.T) {
	w, _, _ := newTestWindow()
	leaf := &View{Kind: KindLabel}
	mid := &View{Kind: KindHStack, Children: []*View{leaf}}
	root := &View{Kind: KindContainer, Children: []*View{mid}}
	w.SetParents(root)
	if leaf.Parent != mid || mid.Parent != root || root.Parent != nil {
		t.Fatal("parents not linked")
	}
	if leaf.Window() != w {
		t.Error("window not propagated")
	}
}

func TestInitRunsOnce(t *testing.T) {
	w, _, _ := newTestWindow()
	calls := 0
	leaf := New(KindLabel, "Hello")
	leaf.Init = func(v *View) { calls++ }
	root := New(KindContainer, "").Add(leaf)
	w.SetRoot(root)

	w.InitChildren(root)
	w.InitChildren(root)

	if calls != 1 {
		t.Errorf("Init called %d times, want 1", calls)
	}
	if leaf.Init != nil {
		t.Error("Init slot must be cleared after the first pass")
	}
	if leaf.Font != w.Fonts.Regular {
		t.Error("font must default to the window regular font")
	}
	if leaf.Em != graphics.Pt(8, 16) {
		t.Errorf("em = %v, want 8x16", leaf.Em)
	}
}

func TestInitTreeIncludesRoot(t *testing.T) {
	w, _, _ := newTestWindow()
	ran := false
	root := New(KindContainer, "")
	root.Init = func(v *View) { ran = true }
	w.SetRoot(root)
	w.InitTree(root)
	if !ran {
		t.Error("root Init not called")
	}
}

func TestSetTextShortcut(t *testing.T) {
	tests := []struct {
		text     string
		shortcut rune
		display  string
	}{
		{"&Open", 'O', "Open"},
		{"Save &as", 'a', "Save as"},
		{"R&&D", 0, "R&D"},
		{"R&&D &x", 'x', "R&D x"},
		{"plain", 0, "plain"},
		{"trailing&", 0, "trailing&"},
	}
	for _, tt := range tests {
		v := New(KindButton, "")
		v.SetText(tt.text)
		if v.Shortcut != tt.shortcut {
			t.Errorf("SetText(%q) shortcut = %q, want %q", tt.text, v.Shortcut, tt.shortcut)
		}
		if got := StripMnemonic(tt.text); got != tt.display {
			t.Errorf("StripMnemonic(%q) = %q, want %q", tt.text, got, tt.display)
		}
	}
}

func TestMeasureText(t *testing.T) {
	w, _, _ := newTestWindow()
	label := New(KindLabel, "&Hello")
	w.SetRoot(label)
	w.InitTree(label)
	w.MeasureChildren(label)
	if label.W != 40 || label.H != 16 {
		t.Errorf("measured %dx%d, want 40x16", label.W, label.H)
	}

	label.Width = 10
	w.MeasureChildren(label)
	if label.W != 80 {
		t.Errorf("min width in ems: got %d, want 80", label.W)
	}
}

func TestMeasureTextMultiline(t *testing.T) {
	w, _, _ := newTestWindow()
	label := New(KindLabel, "one two three")
	label.Multiline = true
	label.Width = 6
	w.SetRoot(label)
	w.InitTree(label)
	w.MeasureChildren(label)
	if label.W != 48 || label.H != 48 {
		t.Errorf("measured %dx%d, want 48x48", label.W, label.H)
	}
}

func TestMeasureSkipsHidden(t *testing.T) {
	w, _, _ := newTestWindow()
	measured := false
	leaf := New(KindLabel, "x")
	leaf.Measure = func(v *View) { measured = true }
	root := New(KindContainer, "").Add(leaf)
	root.Measure = nil
	root.Hidden = true
	w.MeasureChildren(root)
	if measured {
		t.Error("hidden subtree was measured")
	}
}

func TestPaintOrderAndEmptyClient(t *testing.T) {
	w, _, _ := newTestWindow()
	var order []string
	paint := func(v *View, c graphics.Canvas) { order = append(order, v.Text) }
	a := New(KindLabel, "a")
	b := New(KindLabel, "b")
	b.Hidden = true
	root := New(KindContainer, "root").Add(a, b)
	for _, v := range []*View{root, a, b} {
		v.Paint = paint
	}
	var rec graphics.PictureRecorder
	w.Paint(root, rec.BeginRecording(graphics.Pt(640, 480)))
	if strings.Join(order, ",") != "root,a" {
		t.Errorf("paint order %v", order)
	}

	order = nil
	w.CRC = graphics.Rect{}
	w.Paint(root, rec.BeginRecording(graphics.Pt(0, 0)))
	if len(order) != 0 {
		t.Errorf("painted with empty client rect: %v", order)
	}
}

func TestTimersReachHiddenAndDisabled(t *testing.T) {
	w, _, _ := newTestWindow()
	var ticks, secs, fast int
	leaf := New(KindLabel, "x")
	leaf.Hidden = true
	leaf.Disabled = true
	leaf.Timer = func(v *View, id TimerID) { ticks++ }
	leaf.EverySec = func(v *View) { secs++ }
	leaf.Every100ms = func(v *View) { fast++ }
	root := New(KindContainer, "").Add(leaf)
	root.Hidden = true

	w.Timer(root, 7)
	w.EverySec(root)
	w.Every100ms(root)
	if ticks != 1 || secs != 1 || fast != 1 {
		t.Errorf("ticks=%d secs=%d fast=%d", ticks, secs, fast)
	}
}

func TestKeyboardSkipsOwnFlags(t *testing.T) {
	w, _, _ := newTestWindow()
	var got []string
	mk := func(name string) *View {
		v := New(KindButton, name)
		v.KeyPressed = func(v *View, k Key) { got = append(got, v.Text) }
		return v
	}
	a, b, c := mk("a"), mk("b"), mk("c")
	b.Disabled = true
	b.Add(mk("under-b"))
	root := New(KindContainer, "").Add(a, b, c)
	w.KeyPressed(root, 'X')
	if strings.Join(got, ",") != "a,c" {
		t.Errorf("delivered to %v", got)
	}
}

func TestTapChildrenFirstAndInside(t *testing.T) {
	w, _, _ := newTestWindow()
	var tapped []string
	tap := func(v *View, button int) bool {
		tapped = append(tapped, v.Text)
		return v.Text == "inner"
	}
	inner := New(KindButton, "inner")
	inner.X, inner.Y, inner.W, inner.H = 10, 10, 20, 20
	inner.Tap = tap
	outer := New(KindContainer, "outer").Add(inner)
	outer.W, outer.H = 100, 100
	outer.Tap = tap

	w.Pointer = graphics.Pt(15, 15)
	if !w.Tap(outer, ButtonLeft) {
		t.Fatal("tap not consumed")
	}
	if strings.Join(tapped, ",") != "inner" {
		t.Errorf("tap order %v", tapped)
	}

	tapped = nil
	w.Pointer = graphics.Pt(50, 50)
	if w.Tap(outer, ButtonLeft) {
		t.Error("outer does not consume")
	}
	if strings.Join(tapped, ",") != "outer" {
		t.Errorf("tap outside inner reached %v", tapped)
	}

	tapped = nil
	w.Pointer = graphics.Pt(150, 150)
	w.Tap(outer, ButtonLeft)
	if len(tapped) != 0 {
		t.Errorf("tap outside root reached %v", tapped)
	}
}

func TestPressIgnoresPointer(t *testing.T) {
	w, _, _ := newTestWindow()
	pressed := false
	btn := New(KindButton, "b")
	btn.Press = func(v *View, button int) bool { pressed = true; return true }
	root := New(KindContainer, "").Add(btn)
	w.Pointer = graphics.Pt(-100, -100)
	if !w.Press(root, ButtonLeft) || !pressed {
		t.Error("press not delivered")
	}
}

func TestContextMenu(t *testing.T) {
	w, _, _ := newTestWindow()
	opened := ""
	item := New(KindLabel, "item")
	item.W, item.H = 50, 20
	item.ContextMenu = func(v *View) { opened = v.Text }
	root := New(KindContainer, "").Add(item)
	root.W, root.H = 200, 200

	w.Pointer = graphics.Pt(10, 10)
	if !w.ContextMenu(root) || opened != "item" {
		t.Errorf("context menu: opened %q", opened)
	}
	opened = ""
	w.Pointer = graphics.Pt(100, 100)
	if w.ContextMenu(root) || opened != "" {
		t.Error("context menu outside item must not be consumed")
	}
}

func TestMessageReachesHiddenAndStops(t *testing.T) {
	w, _, _ := newTestWindow()
	var seen []string
	handler := func(v *View, m *Message) bool {
		seen = append(seen, v.Text)
		return v.Text == "b"
	}
	a, b, c := New(KindLabel, "a"), New(KindLabel, "b"), New(KindLabel, "c")
	a.Hidden = true
	for _, v := range []*View{a, b, c} {
		v.Message = handler
	}
	root := New(KindContainer, "").Add(a, b, c)
	if !w.Message(root, &Message{ID: 1}) {
		t.Fatal("message not consumed")
	}
	if strings.Join(seen, ",") != "a,b" {
		t.Errorf("message order %v", seen)
	}
}

func TestIsKeyboardShortcut(t *testing.T) {
	w, _, _ := newTestWindow()
	btn := New(KindButton, "&Quit")
	other := New(KindButton, "other")

	if !w.IsKeyboardShortcut(btn, 'q') || !w.IsKeyboardShortcut(btn, 'Q') {
		t.Error("case-insensitive match without focus")
	}
	if w.IsKeyboardShortcut(btn, 'x') {
		t.Error("wrong key matched")
	}
	w.Focus = other
	if w.IsKeyboardShortcut(btn, 'Q') {
		t.Error("Alt required while another view has focus")
	}
	w.Alt = true
	if !w.IsKeyboardShortcut(btn, 'Q') {
		t.Error("Alt+Q must match")
	}
	w.Alt = false
	w.Focus = btn
	if !w.IsKeyboardShortcut(btn, 'Q') {
		t.Error("focused view matches without Alt")
	}
	if w.IsKeyboardShortcut(btn, KeyEscape) {
		t.Error("control keys never match")
	}
}

func TestDump(t *testing.T) {
	leaf := New(KindSpacer, "")
	leaf.MaxW, leaf.MaxH = Infinite, Infinite
	leaf.Hidden = true
	root := New(KindHStack, "").Add(leaf)
	root.W, root.H = 300, 20
	want := "h_stack 0,0 300x20\n  spacer 0,0 0x0 max=inf,inf hidden\n"
	if got := Dump(root); got != want {
		t.Errorf("Dump =\n%s\nwant\n%s", got, want)
	}
}

func TestDefaultHoverDelay(t *testing.T) {
	if v := New(KindLabel, ""); v.HoverDelay != DefaultHoverDelay || DefaultHoverDelay != 1500*time.Millisecond {
		t.Errorf("hover delay = %v", v.HoverDelay)
	}
}
