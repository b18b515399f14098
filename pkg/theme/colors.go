package theme

import "fmt"

// ColorID is a symbolic color resolved through the active Theme.
type ColorID int

const (
	ColorWindow ColorID = iota
	ColorWindowText
	ColorButton
	ColorButtonText
	ColorButtonHover
	ColorButtonPressed
	ColorButtonDisabled
	ColorActiveTitle
	ColorInactiveTitle
	ColorTooltip
	ColorTooltipText
	ColorHighlight
	ColorFocus
	colorCount
)

var colorNames = [...]string{
	ColorWindow:         "window",
	ColorWindowText:     "window_text",
	ColorButton:         "button",
	ColorButtonText:     "button_text",
	ColorButtonHover:    "button_hover",
	ColorButtonPressed:  "button_pressed",
	ColorButtonDisabled: "button_disabled",
	ColorActiveTitle:    "active_title",
	ColorInactiveTitle:  "inactive_title",
	ColorTooltip:        "tooltip",
	ColorTooltipText:    "tooltip_text",
	ColorHighlight:      "highlight",
	ColorFocus:          "focus",
}

func (id ColorID) String() string {
	if id >= 0 && id < colorCount {
		return colorNames[id]
	}
	return fmt.Sprintf("ColorID(%d)", int(id))
}

// ParseColorID maps a config key such as "window_text" to its ColorID.
func ParseColorID(name string) (ColorID, bool) {
	for id, n := range colorNames {
		if n == name {
			return ColorID(id), true
		}
	}
	return 0, false
}
