// Package theme resolves symbolic color identifiers into concrete colors
// for active and inactive windows.
package theme

import "github.com/go-drift/ui/pkg/graphics"

// Brightness indicates if a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// Theme holds two palettes: one used while the window is active and one
// while it is not.
type Theme struct {
	Name       string
	Brightness Brightness
	active     [colorCount]graphics.Color
	inactive   [colorCount]graphics.Color
}

// Color resolves id for the given window activation state.
// Unknown ids resolve to transparent.
func (t *Theme) Color(id ColorID, active bool) graphics.Color {
	if id < 0 || id >= colorCount {
		return graphics.ColorTransparent
	}
	if active {
		return t.active[id]
	}
	return t.inactive[id]
}

// Set overrides one entry of the active or inactive palette.
func (t *Theme) Set(id ColorID, active bool, c graphics.Color) {
	if id < 0 || id >= colorCount {
		return
	}
	if active {
		t.active[id] = c
	} else {
		t.inactive[id] = c
	}
}

// Copy returns an independent copy of the theme.
func (t *Theme) Copy() *Theme {
	c := *t
	return &c
}

// Light returns the default light theme.
func Light() *Theme {
	t := &Theme{Name: "light", Brightness: BrightnessLight}
	t.fill(map[ColorID]graphics.Color{
		ColorWindow:         graphics.RGB(0xF3, 0xF3, 0xF3),
		ColorWindowText:     graphics.RGB(0x1B, 0x1B, 0x1B),
		ColorButton:         graphics.RGB(0xFB, 0xFB, 0xFB),
		ColorButtonText:     graphics.RGB(0x1B, 0x1B, 0x1B),
		ColorButtonHover:    graphics.RGB(0xE5, 0xF1, 0xFB),
		ColorButtonPressed:  graphics.RGB(0xCC, 0xE4, 0xF7),
		ColorButtonDisabled: graphics.RGB(0xA0, 0xA0, 0xA0),
		ColorActiveTitle:    graphics.RGB(0xE8, 0xE8, 0xE8),
		ColorInactiveTitle:  graphics.RGB(0xF3, 0xF3, 0xF3),
		ColorTooltip:        graphics.RGB(0xFF, 0xFF, 0xE1),
		ColorTooltipText:    graphics.RGB(0x00, 0x00, 0x00),
		ColorHighlight:      graphics.RGB(0x00, 0x78, 0xD4),
		ColorFocus:          graphics.RGB(0x00, 0x5F, 0xB8),
	})
	return t
}

// Dark returns the default dark theme.
func Dark() *Theme {
	t := &Theme{Name: "dark", Brightness: BrightnessDark}
	t.fill(map[ColorID]graphics.Color{
		ColorWindow:         graphics.RGB(0x20, 0x20, 0x20),
		ColorWindowText:     graphics.RGB(0xE6, 0xE6, 0xE6),
		ColorButton:         graphics.RGB(0x2D, 0x2D, 0x2D),
		ColorButtonText:     graphics.RGB(0xE6, 0xE6, 0xE6),
		ColorButtonHover:    graphics.RGB(0x3A, 0x3A, 0x3A),
		ColorButtonPressed:  graphics.RGB(0x1F, 0x4F, 0x7A),
		ColorButtonDisabled: graphics.RGB(0x6E, 0x6E, 0x6E),
		ColorActiveTitle:    graphics.RGB(0x1F, 0x1F, 0x1F),
		ColorInactiveTitle:  graphics.RGB(0x2B, 0x2B, 0x2B),
		ColorTooltip:        graphics.RGB(0x2B, 0x2B, 0x2B),
		ColorTooltipText:    graphics.RGB(0xF0, 0xF0, 0xF0),
		ColorHighlight:      graphics.RGB(0x4C, 0xC2, 0xFF),
		ColorFocus:          graphics.RGB(0x99, 0xEB, 0xFF),
	})
	return t
}

// fill sets both palettes; inactive text is dimmed toward the background.
func (t *Theme) fill(colors map[ColorID]graphics.Color) {
	for id, c := range colors {
		t.active[id] = c
		t.inactive[id] = c
	}
	dim := 0.75
	if t.Brightness == BrightnessLight {
		dim = 1.6
	}
	for _, id := range []ColorID{ColorWindowText, ColorButtonText} {
		t.inactive[id] = colors[id].Dim(dim)
	}
}
