package text

import "strings"

// Wrap breaks s into lines no wider than width using measure. Lines always
// break at '\n'. A word wider than width occupies a line of its own.
// A negative width disables wrapping.
func Wrap(s string, width int32, measure func(string) int32) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		if width < 0 {
			lines = append(lines, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate) <= width {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = w
		}
		lines = append(lines, line)
	}
	return lines
}
