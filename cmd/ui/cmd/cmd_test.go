package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/ui/pkg/config"
	"github.com/go-drift/ui/pkg/errors"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestVersion(t *testing.T) {
	out := capture(t)
	if err := run([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("output %q", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	capture(t)
	if err := run([]string{"bogus"}); err == nil {
		t.Error("unknown command accepted")
	}
}

func TestLayoutCommand(t *testing.T) {
	out := capture(t)
	dir := t.TempDir()
	err := run([]string{"layout", "--dir", dir, "--fixed", "--frames", "3", "--list"})
	if err != nil {
		t.Fatal(err)
	}
	s := out.String()
	for _, want := range []string{
		"headless",
		"v_stack 0,0 384x192",
		"caption",
		"button[&Quit]",
		"text=Hola",
		"text=Velocidad: 0",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
}

func TestLayoutCommandSize(t *testing.T) {
	out := capture(t)
	err := run([]string{"layout", "--dir", t.TempDir(), "--fixed", "--width", "500", "--height", "300"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "v_stack 0,0 500x300") {
		t.Errorf("output:\n%s", out)
	}
}

func TestParseLayoutArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"defaults", nil, false},
		{"frames", []string{"--frames", "4"}, false},
		{"missing frames", []string{"--frames"}, true},
		{"negative", []string{"--width", "-3"}, true},
		{"unknown", []string{"--wat"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseLayoutArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigCommand(t *testing.T) {
	out := capture(t)
	dir := t.TempDir()
	yaml := "app:\n  name: Greeter\nui:\n  locale: de-DE\n"
	if err := os.WriteFile(filepath.Join(dir, "ui.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run([]string{"config", "--dir", dir}); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	for _, want := range []string{"Greeter (class greeter)", "Locale:      de-DE", "(384,192) initial"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
}

type recordingHandler struct {
	errs []*errors.UIError
}

func (h *recordingHandler) HandleError(err *errors.UIError) { h.errs = append(h.errs, err) }

func (h *recordingHandler) HandlePanic(*errors.PanicError) {}

func TestSampleReportsBadLocale(t *testing.T) {
	cfg, err := config.Resolve(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	app, err := newSampleApp(cfg, sampleOptions{fixed: true})
	if err != nil {
		t.Fatal(err)
	}
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	title := app.caption.Title.Text
	app.locales = []string{"not a locale"}
	app.everySec()
	if len(h.errs) != 1 || h.errs[0].Op != "sample.everySec" || h.errs[0].Kind != errors.KindConfig {
		t.Fatalf("reported %v", h.errs)
	}
	if app.caption.Title.Text != title {
		t.Errorf("title changed to %q after a failed switch", app.caption.Title.Text)
	}
}
