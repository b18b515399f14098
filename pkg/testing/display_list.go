package testing

import (
	"fmt"

	"github.com/go-drift/ui/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// SerializeDisplayList converts recorded drawing operations to DisplayOps
// for comparison in tests.
func SerializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	if dl == nil {
		return nil
	}
	ops := make([]DisplayOp, 0, len(dl.Ops()))
	for _, op := range dl.Ops() {
		switch op.Kind {
		case graphics.OpFillRect:
			ops = append(ops, DisplayOp{Op: "fillRect", Params: map[string]any{
				"rect":  serializeRect(op.Rect),
				"color": op.Color.Hex(),
			}})
		case graphics.OpFrameRect:
			ops = append(ops, DisplayOp{Op: "frameRect", Params: map[string]any{
				"rect":  serializeRect(op.Rect),
				"color": op.Color.Hex(),
			}})
		case graphics.OpDrawText:
			ops = append(ops, DisplayOp{Op: "drawText", Params: map[string]any{
				"at":    fmt.Sprintf("%d,%d", op.At.X, op.At.Y),
				"text":  op.Text,
				"font":  op.Font,
				"color": op.Color.Hex(),
			}})
		}
	}
	return ops
}

func serializeRect(r graphics.Rect) string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.W, r.H)
}
