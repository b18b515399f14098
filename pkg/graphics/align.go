package graphics

import "strings"

// Align is a set of alignment bits. The zero value centers on both axes.
// A side bit pins the view to that side; setting both sides of one axis is
// read as centering on that axis.
type Align uint8

const (
	AlignCenter Align = 0
	AlignLeft   Align = 0x01
	AlignTop    Align = 0x02
	AlignRight  Align = 0x04
	AlignBottom Align = 0x08
)

// Horizontal returns only the left/right bits.
func (a Align) Horizontal() Align {
	return a & (AlignLeft | AlignRight)
}

// Vertical returns only the top/bottom bits.
func (a Align) Vertical() Align {
	return a & (AlignTop | AlignBottom)
}

func (a Align) String() string {
	if a == AlignCenter {
		return "center"
	}
	var parts []string
	if a&AlignLeft != 0 {
		parts = append(parts, "left")
	}
	if a&AlignTop != 0 {
		parts = append(parts, "top")
	}
	if a&AlignRight != 0 {
		parts = append(parts, "right")
	}
	if a&AlignBottom != 0 {
		parts = append(parts, "bottom")
	}
	return strings.Join(parts, "|")
}
