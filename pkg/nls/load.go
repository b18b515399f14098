package nls

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/ui/pkg/errors"
)

// Table is the YAML form of a catalog:
//
//	strings: [Hello, Quit]
//	locales:
//	  de-DE:
//	    Hello: Hallo
//	    Quit: Beenden
type Table struct {
	// Strings fixes the id order of display strings. Strings that only
	// appear under locales get ids after these, in sorted order.
	Strings []string                     `yaml:"strings"`
	Locales map[string]map[string]string `yaml:"locales"`
}

// Parse decodes a YAML string table into a new catalog.
func Parse(data []byte) (*Catalog, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, &errors.UIError{
			Op:   "nls.Parse",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("failed to parse string table: %w", err),
		}
	}
	return t.Catalog()
}

// Catalog builds a catalog from the table with deterministic ids.
func (t *Table) Catalog() (*Catalog, error) {
	c := New()
	for _, s := range t.Strings {
		c.Register(s)
	}
	locales := make([]string, 0, len(t.Locales))
	for l := range t.Locales {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	for _, l := range locales {
		entries := t.Locales[l]
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := c.Add(l, k, entries[k]); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// Load reads a YAML string table from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.UIError{
			Op:   "nls.Load",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("failed to read %s: %w", path, err),
		}
	}
	return Parse(data)
}
