// Package layout implements the stack and container layout callbacks and
// the pipeline that decides when a window needs layout and repaint.
package layout

import (
	"log"

	"github.com/go-drift/ui/pkg/view"
)

// Debug enables tracing of the stack distribution phases to the logger of
// the window being laid out.
var Debug = false

func debugf(v *view.View, format string, args ...any) {
	if !Debug {
		return
	}
	if w := v.Window(); w != nil {
		w.Logf("layout: "+format, args...)
		return
	}
	log.Printf("layout: "+format, args...)
}
