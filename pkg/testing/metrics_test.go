package testing

import (
	"testing"

	"github.com/go-drift/ui/pkg/graphics"
)

func TestRecordingInvalidator(t *testing.T) {
	var inv RecordingInvalidator
	inv.Invalidate(graphics.RectXYWH(0, 0, 10, 10))
	inv.Invalidate(graphics.RectXYWH(20, 5, 10, 10))

	if len(inv.Rects) != 2 {
		t.Fatalf("expected 2 rects, got %d", len(inv.Rects))
	}
	if got := inv.Bounds(); got != graphics.RectXYWH(0, 0, 30, 15) {
		t.Errorf("Bounds = %v", got)
	}
	inv.Reset()
	if len(inv.Rects) != 0 || !inv.Bounds().IsEmpty() {
		t.Error("Reset did not clear")
	}
}

func TestSerializeDisplayList(t *testing.T) {
	var rec graphics.PictureRecorder
	c := rec.BeginRecording(graphics.Pt(100, 50))
	c.FillRect(graphics.RectXYWH(0, 0, 100, 50), graphics.ColorWhite)
	c.DrawText(graphics.Pt(4, 12), "OK", "regular@16", graphics.ColorBlack)
	ops := SerializeDisplayList(rec.EndRecording())

	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(ops))
	}
	if ops[0].Op != "fillRect" || ops[1].Op != "drawText" {
		t.Errorf("unexpected ops %+v", ops)
	}
	if ops[1].Params["text"] != "OK" {
		t.Errorf("text param = %v", ops[1].Params["text"])
	}
}
