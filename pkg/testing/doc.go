// Package testing provides fixtures for testing view trees without a
// platform window: a controllable clock, fixed-pitch text metrics, an
// invalidation recorder and display list serialization.
//
// # Quick Start
//
//	clk := uitest.NewFakeClock()
//	w := view.NewWindow(uitest.NewFixedMetrics(8, 16), text.DefaultFonts(16))
//	w.Clock = clk
//	inv := &uitest.RecordingInvalidator{}
//	w.Invalidator = inv
//
//	clk.Advance(2 * time.Second)
//	w.Message(root, &view.Message{})
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import uitest "github.com/go-drift/ui/pkg/testing"
package testing
