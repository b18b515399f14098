package theme

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/go-drift/ui/pkg/errors"
	"github.com/go-drift/ui/pkg/graphics"
)

// File is the on-disk form of a theme:
//
//	name = "solarized"
//	base = "dark"
//
//	[active]
//	window = "#002B36"
//
//	[inactive]
//	window_text = "#586E75"
type File struct {
	Name     string                    `toml:"name"`
	Base     string                    `toml:"base"`
	Active   map[string]graphics.Color `toml:"active"`
	Inactive map[string]graphics.Color `toml:"inactive"`
	// Both applies to the active and inactive palettes before they are
	// overridden individually.
	Both map[string]graphics.Color `toml:"colors"`
}

// Parse decodes a TOML theme and applies it on top of its base theme.
func Parse(data []byte) (*Theme, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, &errors.UIError{Op: "theme.Parse", Kind: errors.KindConfig, Err: err}
	}
	return f.Build()
}

// Build resolves the file against its base theme.
func (f *File) Build() (*Theme, error) {
	var t *Theme
	switch f.Base {
	case "", "light":
		t = Light()
	case "dark":
		t = Dark()
	default:
		return nil, &errors.UIError{
			Op:   "theme.Build",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("unknown base theme %q", f.Base),
		}
	}
	if f.Name != "" {
		t.Name = f.Name
	}
	apply := func(colors map[string]graphics.Color, active, inactive bool) error {
		for name, c := range colors {
			id, ok := ParseColorID(name)
			if !ok {
				return &errors.UIError{
					Op:   "theme.Build",
					Kind: errors.KindConfig,
					Err:  fmt.Errorf("unknown color %q", name),
				}
			}
			if active {
				t.Set(id, true, c)
			}
			if inactive {
				t.Set(id, false, c)
			}
		}
		return nil
	}
	if err := apply(f.Both, true, true); err != nil {
		return nil, err
	}
	if err := apply(f.Active, true, false); err != nil {
		return nil, err
	}
	if err := apply(f.Inactive, false, true); err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads a theme file from disk.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.UIError{
			Op:   "theme.Load",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("failed to read %s: %w", path, err),
		}
	}
	return Parse(data)
}
