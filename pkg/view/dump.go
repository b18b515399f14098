package view

import (
	"fmt"
	"strings"
)

// Dump returns an indented outline of the subtree, one view per line with
// its bounds and state flags.
func Dump(v *View) string {
	var b strings.Builder
	dump(&b, v, 0)
	return b.String()
}

func dump(b *strings.Builder, v *View, depth int) {
	fmt.Fprintf(b, "%s%s %d,%d %dx%d", strings.Repeat("  ", depth), v.Name(), v.X, v.Y, v.W, v.H)
	if v.MaxW != 0 || v.MaxH != 0 {
		fmt.Fprintf(b, " max=%s,%s", maxString(v.MaxW), maxString(v.MaxH))
	}
	for _, f := range []struct {
		on   bool
		name string
	}{
		{v.Hidden, "hidden"},
		{v.Disabled, "disabled"},
		{v.Focusable, "focusable"},
		{v.Hover, "hover"},
		{v.Pressed, "pressed"},
	} {
		if f.on {
			b.WriteString(" " + f.name)
		}
	}
	b.WriteByte('\n')
	for _, c := range v.Children {
		dump(b, c, depth+1)
	}
}

func maxString(m int32) string {
	if m == Infinite {
		return "inf"
	}
	return fmt.Sprint(m)
}
