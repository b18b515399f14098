package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module github.com/acme/sample-one/v2\n\ngo 1.24\n")

	r, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if r.ModulePath != "github.com/acme/sample-one/v2" {
		t.Errorf("module path = %q", r.ModulePath)
	}
	if r.AppName != "sample-one" {
		t.Errorf("app name = %q", r.AppName)
	}
	if r.Class != "sample_one" {
		t.Errorf("class = %q", r.Class)
	}
	if r.Locale != "en-US" || r.HoverDelay != DefaultHoverDelay || r.Debug {
		t.Errorf("ui defaults = %q %s %v", r.Locale, r.HoverDelay, r.Debug)
	}
	if got := r.InitialSize(); got.X != 384 || got.Y != 192 {
		t.Errorf("initial size = %s", got)
	}
	if got := r.MinimumSize(); got.X != 336 || got.Y != 144 {
		t.Errorf("minimum size = %s", got)
	}
}

func TestResolveWithoutModule(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Sample1")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	r, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if r.ModulePath != "" || r.AppName != "Sample1" || r.Class != "sample1" {
		t.Errorf("resolved %+v", r)
	}
}

func TestResolveFromFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/app\n")
	writeFile(t, dir, FileName, `
app:
  name: Hello
  class: hello_class
window:
  min_w: 2
  min_h: 1
  ini_w: 5
  ini_h: 3
  dpi: 120
ui:
  locale: fr-FR
  theme: themes/dark.toml
  strings: strings.yaml
  hover_delay: 250ms
  debug: true
`)

	r, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if r.AppName != "Hello" || r.Class != "hello_class" {
		t.Errorf("app = %q %q", r.AppName, r.Class)
	}
	if got := r.InitialSize(); got.X != 600 || got.Y != 360 {
		t.Errorf("initial size = %s", got)
	}
	if r.Locale != "fr-FR" || r.HoverDelay != 250*time.Millisecond || !r.Debug {
		t.Errorf("ui = %q %s %v", r.Locale, r.HoverDelay, r.Debug)
	}
	if r.ThemePath != filepath.Join(dir, "themes", "dark.toml") {
		t.Errorf("theme path = %q", r.ThemePath)
	}
	if r.StringsPath != filepath.Join(dir, "strings.yaml") {
		t.Errorf("strings path = %q", r.StringsPath)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "app: [", "failed to parse ui.yaml"},
		{"bad delay", "ui:\n  hover_delay: soon\n", "invalid ui.hover_delay"},
		{"negative delay", "ui:\n  hover_delay: -1s\n", "cannot be negative"},
		{"too small", "window:\n  min_w: 5\n  ini_w: 4\n", "smaller than"},
		{"negative size", "window:\n  dpi: -1\n", "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.yaml)
			_, err := Resolve(dir)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestSanitizeClass(t *testing.T) {
	tests := map[string]string{
		"Sample 1":  "sample_1",
		"1st":       "_1st",
		"!!!":       "ui_app",
		"my.app-v2": "my_app_v2",
	}
	for in, want := range tests {
		if got := sanitizeClass(in); got != want {
			t.Errorf("sanitizeClass(%q) = %q, want %q", in, got, want)
		}
	}
}
