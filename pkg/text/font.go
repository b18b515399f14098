// Package text provides fonts and the text metrics contract consumed by the
// view core: string extents, em size, ascent, baseline and descent.
package text

import (
	"fmt"

	"github.com/go-drift/ui/pkg/graphics"
)

// Font names a typeface at a size. Fonts are value-like handles; the
// Metrics provider resolves them to rasterizable faces.
type Font struct {
	// Family is the registered typeface name ("regular", "bold", "mono").
	Family string
	// Size is the em height in pixels.
	Size float64
}

// Key returns the identifier used by canvases and caches.
func (f *Font) Key() string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%s@%g", f.Family, f.Size)
}

func (f *Font) String() string {
	return f.Key()
}

// Metrics measures text. Implementations must be deterministic: the same
// font and string always yield the same extent.
type Metrics interface {
	// Em returns the width and height of one character cell.
	Em(f *Font) graphics.Point
	// Measure returns the extent of s on a single line.
	Measure(f *Font, s string) graphics.Point
	// MeasureMultiline returns the extent of s wrapped to width pixels.
	// A negative width breaks lines only at '\n'.
	MeasureMultiline(f *Font, width int32, s string) graphics.Point
	// Ascent returns the distance from the top of the line to the baseline
	// not including internal leading.
	Ascent(f *Font) int32
	// Baseline returns the distance from the top of the line box to the baseline.
	Baseline(f *Font) int32
	// Descent returns the distance from the baseline to the bottom of the line box.
	Descent(f *Font) int32
}

// Fonts is the set of fonts a window offers its views.
type Fonts struct {
	Regular *Font
	Mono    *Font
	H1      *Font
	H2      *Font
	H3      *Font
}

// DefaultFonts derives a font set from the regular text height in pixels.
func DefaultFonts(px float64) Fonts {
	return Fonts{
		Regular: &Font{Family: FamilyRegular, Size: px},
		Mono:    &Font{Family: FamilyMono, Size: px},
		H1:      &Font{Family: FamilyBold, Size: px * 2.0},
		H2:      &Font{Family: FamilyBold, Size: px * 1.5},
		H3:      &Font{Family: FamilyBold, Size: px * 1.25},
	}
}
