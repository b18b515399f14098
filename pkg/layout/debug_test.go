package layout

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/go-drift/ui/pkg/graphics"
)

func TestDebugTracesToWindowLogger(t *testing.T) {
	var buf bytes.Buffer
	win := newWindow(100, 20)
	win.Logger = log.New(&buf, "", 0)

	run(win, NewHStack(fixed(10, 10), NewSpacer()))
	if buf.Len() != 0 {
		t.Fatalf("traced with Debug off:\n%s", buf.String())
	}

	Debug = true
	t.Cleanup(func() { Debug = false })
	s := NewHStack(fixed(10, 10), NewSpacer())
	s.Insets = graphics.Gaps{}
	run(win, s)

	out := buf.String()
	for _, want := range []string{"layout: HStack measured", "phase 1", "layout: HStack laid out"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace missing %q:\n%s", want, out)
		}
	}
}
