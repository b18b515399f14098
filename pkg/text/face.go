package text

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/ui/pkg/errors"
	"github.com/go-drift/ui/pkg/graphics"
)

// Families registered by NewFaceMetrics.
const (
	FamilyRegular = "regular"
	FamilyBold    = "bold"
	FamilyMono    = "mono"
)

const defaultCacheSize = 1024

type measureKey struct {
	font  string
	width int32
	multi bool
	text  string
}

// FaceMetrics implements Metrics on top of golang.org/x/image font faces.
// Measurements are memoized in an LRU cache keyed by font, wrap width and
// string.
type FaceMetrics struct {
	families map[string]*opentype.Font
	faces    map[string]font.Face
	cache    *lru.Cache
}

// NewFaceMetrics returns a provider with the Go fonts registered as
// "regular", "bold" and "mono".
func NewFaceMetrics() (*FaceMetrics, error) {
	cache, err := lru.New(defaultCacheSize)
	if err != nil {
		return nil, &errors.UIError{Op: "text.NewFaceMetrics", Kind: errors.KindFont, Err: err}
	}
	m := &FaceMetrics{
		families: make(map[string]*opentype.Font),
		faces:    make(map[string]font.Face),
		cache:    cache,
	}
	for name, ttf := range map[string][]byte{
		FamilyRegular: goregular.TTF,
		FamilyBold:    gobold.TTF,
		FamilyMono:    gomono.TTF,
	} {
		if err := m.Register(name, ttf); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Register parses a TrueType/OpenType font and makes it available under name.
func (m *FaceMetrics) Register(name string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return &errors.UIError{
			Op:   "text.Register",
			Kind: errors.KindFont,
			Err:  fmt.Errorf("parse %s: %w", name, err),
		}
	}
	m.families[name] = f
	for key := range m.faces {
		if strings.HasPrefix(key, name+"@") {
			delete(m.faces, key)
		}
	}
	m.cache.Purge()
	return nil
}

func (m *FaceMetrics) face(f *Font) font.Face {
	errors.Swear(f != nil, "text.FaceMetrics", "nil font")
	key := f.Key()
	if face, ok := m.faces[key]; ok {
		return face
	}
	family, ok := m.families[f.Family]
	if !ok {
		family = m.families[FamilyRegular]
	}
	face, err := opentype.NewFace(family, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	errors.Swear(err == nil, "text.FaceMetrics", "face %s: %v", key, err)
	m.faces[key] = face
	return face
}

// Em returns the advance of 'M' and the line height.
func (m *FaceMetrics) Em(f *Font) graphics.Point {
	face := m.face(f)
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		adv = fixed.I(int(f.Size))
	}
	return graphics.Point{X: int32(adv.Ceil()), Y: lineHeight(face)}
}

// Measure returns the single line extent of s.
func (m *FaceMetrics) Measure(f *Font, s string) graphics.Point {
	key := measureKey{font: f.Key(), text: s}
	if v, ok := m.cache.Get(key); ok {
		return v.(graphics.Point)
	}
	face := m.face(f)
	pt := graphics.Point{
		X: int32(font.MeasureString(face, s).Ceil()),
		Y: lineHeight(face),
	}
	m.cache.Add(key, pt)
	return pt
}

// MeasureMultiline wraps s at word boundaries to fit width pixels.
func (m *FaceMetrics) MeasureMultiline(f *Font, width int32, s string) graphics.Point {
	key := measureKey{font: f.Key(), width: width, multi: true, text: s}
	if v, ok := m.cache.Get(key); ok {
		return v.(graphics.Point)
	}
	face := m.face(f)
	measure := func(line string) int32 {
		return int32(font.MeasureString(face, line).Ceil())
	}
	lines := Wrap(s, width, measure)
	var pt graphics.Point
	for _, line := range lines {
		pt.X = max(pt.X, measure(line))
	}
	pt.Y = int32(len(lines)) * lineHeight(face)
	m.cache.Add(key, pt)
	return pt
}

// Ascent returns the font ascent in pixels.
func (m *FaceMetrics) Ascent(f *Font) int32 {
	return int32(m.face(f).Metrics().Ascent.Ceil())
}

// Baseline returns the distance from the line top to the baseline.
func (m *FaceMetrics) Baseline(f *Font) int32 {
	face := m.face(f)
	met := face.Metrics()
	leading := met.Height - met.Ascent - met.Descent
	if leading < 0 {
		leading = 0
	}
	return int32((leading/2 + met.Ascent).Ceil())
}

// Descent returns the font descent in pixels.
func (m *FaceMetrics) Descent(f *Font) int32 {
	return int32(m.face(f).Metrics().Descent.Ceil())
}

// CacheLen reports the number of memoized measurements.
func (m *FaceMetrics) CacheLen() int {
	return m.cache.Len()
}

func lineHeight(face font.Face) int32 {
	return int32(face.Metrics().Height.Ceil())
}
