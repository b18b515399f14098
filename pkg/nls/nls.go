// Package nls maps display strings to numeric string ids and back to their
// localized form for the active locale.
package nls

import (
	"fmt"
	"slices"
	"sort"

	"golang.org/x/text/language"

	"github.com/go-drift/ui/pkg/errors"
)

// Catalog holds translated string tables. The zero value is not usable;
// call New.
type Catalog struct {
	ids     map[string]int
	keys    []string // keys[id-1] is the display string with that id
	tables  map[language.Tag]map[int]string
	tags    []language.Tag
	matcher language.Matcher
	locale  language.Tag
	current map[int]string
}

// New returns an empty catalog whose active locale is English.
func New() *Catalog {
	return &Catalog{
		ids:    make(map[string]int),
		tables: make(map[language.Tag]map[int]string),
		locale: language.English,
	}
}

// Register assigns an id to s if it does not have one and returns the id.
// Ids start at 1 and are assigned in registration order.
func (c *Catalog) Register(s string) int {
	if id, ok := c.ids[s]; ok {
		return id
	}
	c.keys = append(c.keys, s)
	id := len(c.keys)
	c.ids[s] = id
	return id
}

// Add records the translation of s for locale.
func (c *Catalog) Add(locale, s, translated string) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return &errors.UIError{
			Op:   "nls.Add",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("invalid locale %q: %w", locale, err),
		}
	}
	id := c.Register(s)
	table, ok := c.tables[tag]
	if !ok {
		table = make(map[int]string)
		c.tables[tag] = table
		c.tags = append(c.tags, tag)
		c.matcher = nil
	}
	table[id] = translated
	if tag == c.locale {
		c.current = table
	}
	return nil
}

// StrID returns the id of a display string, or 0 when it has no
// translations.
func (c *Catalog) StrID(s string) int {
	return c.ids[s]
}

// String returns the localized string for id in the active locale, or
// fallback when there is none.
func (c *Catalog) String(id int, fallback string) string {
	if id <= 0 || c.current == nil {
		return fallback
	}
	if s, ok := c.current[id]; ok {
		return s
	}
	return fallback
}

// Str localizes a display string directly.
func (c *Catalog) Str(s string) string {
	return c.String(c.StrID(s), s)
}

// Key returns the display string registered under id.
func (c *Catalog) Key(id int) (string, bool) {
	if id <= 0 || id > len(c.keys) {
		return "", false
	}
	return c.keys[id-1], true
}

// SetLocale activates the closest available table for a BCP 47 tag such as
// "de-DE" or "sr-Latn-RS". Without a reasonable match strings fall back to
// their display form.
func (c *Catalog) SetLocale(locale string) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return &errors.UIError{
			Op:   "nls.SetLocale",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("invalid locale %q: %w", locale, err),
		}
	}
	c.locale = tag
	c.current = nil
	if len(c.tags) == 0 {
		return nil
	}
	if c.matcher == nil {
		c.matcher = language.NewMatcher(c.tags)
	}
	_, index, confidence := c.matcher.Match(tag)
	if confidence >= language.High {
		c.current = c.tables[c.tags[index]]
	}
	return nil
}

// Locale returns the active locale tag.
func (c *Catalog) Locale() language.Tag {
	return c.locale
}

// Locales lists the locales with translations, sorted by tag string.
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.tags))
	for _, t := range c.tags {
		out = append(out, t.String())
	}
	sort.Strings(out)
	return slices.Compact(out)
}
