// Package config reads the optional ui.yaml application file and resolves
// defaults from the enclosing Go module.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-drift/ui/pkg/graphics"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the application config file.
const FileName = "ui.yaml"

// Config represents the optional ui.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Window WindowConfig `yaml:"window"`
	UI     UIConfig     `yaml:"ui"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name  string `yaml:"name,omitempty"`
	Class string `yaml:"class,omitempty"`
}

// WindowConfig sizes the window in inches.
type WindowConfig struct {
	MinW float32 `yaml:"min_w,omitempty"`
	MinH float32 `yaml:"min_h,omitempty"`
	IniW float32 `yaml:"ini_w,omitempty"`
	IniH float32 `yaml:"ini_h,omitempty"`
	DPI  float32 `yaml:"dpi,omitempty"`
}

// UIConfig contains view tree settings.
type UIConfig struct {
	Locale     string `yaml:"locale,omitempty"`
	Theme      string `yaml:"theme,omitempty"`
	Strings    string `yaml:"strings,omitempty"`
	HoverDelay string `yaml:"hover_delay,omitempty"`
	Debug      bool   `yaml:"debug,omitempty"`
}

// Window size defaults in inches, and the pixel density assumed without
// one.
const (
	DefaultMinW = 3.5
	DefaultMinH = 1.5
	DefaultIniW = 4.0
	DefaultIniH = 2.0
	DefaultDPI  = 96
)

// DefaultHoverDelay is used when ui.hover_delay is not set.
const DefaultHoverDelay = 1500 * time.Millisecond

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Class      string
	Window     WindowConfig
	Locale     string
	// ThemePath and StringsPath are absolute, or empty when unset.
	ThemePath   string
	StringsPath string
	HoverDelay  time.Duration
	Debug       bool
}

// LoadOptional reads ui.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads ui.yaml (if present) and resolves defaults. The directory
// need not be a module root; without go.mod the names derive from dir.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	class := strings.TrimSpace(cfg.App.Class)
	if class == "" {
		class = sanitizeClass(appName)
	}
	if err := validateClass(class); err != nil {
		return nil, err
	}

	win := cfg.Window
	orDefault(&win.MinW, DefaultMinW)
	orDefault(&win.MinH, DefaultMinH)
	orDefault(&win.IniW, DefaultIniW)
	orDefault(&win.IniH, DefaultIniH)
	orDefault(&win.DPI, DefaultDPI)
	if win.MinW < 0 || win.MinH < 0 || win.IniW < 0 || win.IniH < 0 || win.DPI < 0 {
		return nil, fmt.Errorf("window sizes must not be negative")
	}
	if win.IniW < win.MinW || win.IniH < win.MinH {
		return nil, fmt.Errorf("window.ini_w x ini_h (%gx%g) is smaller than min_w x min_h (%gx%g)",
			win.IniW, win.IniH, win.MinW, win.MinH)
	}

	hover := DefaultHoverDelay
	if s := strings.TrimSpace(cfg.UI.HoverDelay); s != "" {
		hover, err = time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid ui.hover_delay: %w", err)
		}
		if hover < 0 {
			return nil, fmt.Errorf("ui.hover_delay cannot be negative (%s)", s)
		}
	}

	locale := strings.TrimSpace(cfg.UI.Locale)
	if locale == "" {
		locale = "en-US"
	}

	return &Resolved{
		Root:        dir,
		ModulePath:  modulePath,
		AppName:     appName,
		Class:       class,
		Window:      win,
		Locale:      locale,
		ThemePath:   resolvePath(dir, cfg.UI.Theme),
		StringsPath: resolvePath(dir, cfg.UI.Strings),
		HoverDelay:  hover,
		Debug:       cfg.UI.Debug,
	}, nil
}

// InchesToPixels converts inches to pixels at the configured density.
func (r *Resolved) InchesToPixels(in float32) int32 {
	return int32(in*r.Window.DPI + 0.5)
}

// InitialSize returns the initial client size in pixels.
func (r *Resolved) InitialSize() graphics.Point {
	return graphics.Pt(r.InchesToPixels(r.Window.IniW), r.InchesToPixels(r.Window.IniH))
}

// MinimumSize returns the smallest client size in pixels.
func (r *Resolved) MinimumSize() graphics.Point {
	return graphics.Pt(r.InchesToPixels(r.Window.MinW), r.InchesToPixels(r.Window.MinH))
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func orDefault(v *float32, def float32) {
	if *v == 0 {
		*v = def
	}
}

func resolvePath(dir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "ui_app"
	}
	return base
}

// sanitizeClass turns an app name into a window class name: lower case
// letters, digits and underscores, never starting with a digit.
func sanitizeClass(name string) string {
	var out []rune
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == '-' || r == '.' || r == ' ':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		out = []rune("ui_app")
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = append([]rune{'_'}, out...)
	}
	return string(out)
}

func validateClass(class string) error {
	if len(class) > 255 {
		return fmt.Errorf("app.class is longer than 255 characters")
	}
	for _, r := range class {
		if r < 0x20 || r == 0x7F {
			return fmt.Errorf("app.class contains control character %q", r)
		}
	}
	return nil
}
