package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-drift/ui/pkg/config"
	"github.com/go-drift/ui/pkg/engine"
	"github.com/go-drift/ui/pkg/errors"
	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/layout"
	"github.com/go-drift/ui/pkg/nls"
	"github.com/go-drift/ui/pkg/platform"
	"github.com/go-drift/ui/pkg/text"
	"github.com/go-drift/ui/pkg/theme"
	"github.com/go-drift/ui/pkg/view"
	"github.com/go-drift/ui/pkg/widgets"
)

// sampleStrings are used when ui.yaml names no string table.
const sampleStrings = `
strings: [Hello, "&Quit", Speed]
locales:
  en-US: {Hello: Hello}
  fr-FR: {Hello: Bonjour, "&Quit": "&Quitter", Speed: Vitesse}
  de-DE: {Hello: Hallo, "&Quit": "&Beenden", Speed: Tempo}
  es-ES: {Hello: Hola, "&Quit": "&Salir", Speed: Velocidad}
  ja-JP: {Hello: こんにちは}
  ru-RU: {Hello: Привет, "&Quit": "В&ыход"}
`

// stepClock is a clock the sample advances one frame at a time so its
// output does not depend on wall time.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// sampleApp greets in a different locale every second: a caption bar, a
// large label and a row with a slider and a quit button.
type sampleApp struct {
	engine  *engine.Engine
	clock   *stepClock
	caption *widgets.Caption
	label   *view.View
	speed   *widgets.Slider
	quit    *view.View
	locales []string
	next    int
}

type sampleOptions struct {
	fixed  bool
	width  int32
	height int32
}

func newSampleApp(cfg *config.Resolved, opts sampleOptions) (*sampleApp, error) {
	size := cfg.InitialSize()
	if opts.width > 0 {
		size.X = opts.width
	}
	if opts.height > 0 {
		size.Y = opts.height
	}
	host := platform.NewHeadless(size.X, size.Y, graphics.Pt(size.X*4, size.Y*4))
	host.SetTitle(cfg.AppName)

	var metrics text.Metrics
	if opts.fixed {
		metrics = text.NewFixedMetrics(8, 16)
	} else {
		fm, err := text.NewFaceMetrics()
		if err != nil {
			return nil, err
		}
		metrics = fm
	}
	px := float64(cfg.InchesToPixels(1.0 / 6))
	if opts.fixed {
		px = 16
	}
	e := engine.New(host, metrics, text.DefaultFonts(px))
	w := e.Window
	w.Clock = &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	if cfg.Debug {
		layout.Debug = true
		logger := log.New(os.Stderr, "", log.LstdFlags)
		host.Logger = logger
		w.Logger = logger
	}

	th, err := loadTheme(cfg.ThemePath)
	if err != nil {
		return nil, err
	}
	w.Theme = th

	catalog, err := loadStrings(cfg.StringsPath)
	if err != nil {
		return nil, err
	}
	w.NLS = catalog
	if err := catalog.SetLocale(cfg.Locale); err != nil {
		return nil, err
	}

	app := &sampleApp{engine: e, clock: w.Clock.(*stepClock), locales: catalog.Locales()}
	if i := slices.Index(app.locales, cfg.Locale); i >= 0 {
		app.next = i
	}

	app.caption = widgets.NewCaption(host)
	app.caption.Show()
	app.label = widgets.NewLabel("Hello", 0)
	app.label.Font = w.Fonts.H1
	app.speed = widgets.NewSlider("Speed", 6, 0, 10, nil)
	app.quit = widgets.NewButton("&Quit", 0, func(*view.View) { host.Quit() })

	row := layout.NewHStack(app.speed.View, layout.NewSpacer(), app.quit)
	root := layout.NewVStack(app.caption.View, layout.NewSpacer(), app.label, layout.NewSpacer(), row)
	root.Insets = graphics.Gaps{}
	root.EverySec = func(*view.View) { app.everySec() }
	app.caption.InstallEscape(root)
	for _, v := range []*view.View{app.label, app.speed.View, app.quit} {
		v.HoverDelay = cfg.HoverDelay
	}
	e.SetRoot(root)
	return app, nil
}

func loadTheme(path string) (*theme.Theme, error) {
	switch strings.ToLower(filepath.Base(path)) {
	case ".", "", "light":
		return theme.Light(), nil
	case "dark":
		return theme.Dark(), nil
	}
	return theme.Load(path)
}

func loadStrings(path string) (*nls.Catalog, error) {
	if path == "" {
		return nls.Parse([]byte(sampleStrings))
	}
	return nls.Load(path)
}

// everySec switches to the next locale and retitles the window.
func (a *sampleApp) everySec() {
	if len(a.locales) == 0 {
		return
	}
	w := a.engine.Window
	locale := a.locales[a.next]
	a.next = (a.next + 1) % len(a.locales)
	if err := w.NLS.SetLocale(locale); err != nil {
		errors.Report(&errors.UIError{Op: "sample.everySec", Kind: errors.KindConfig, Err: err})
		return
	}
	w.Localize(a.label)
	a.caption.SetTitle(fmt.Sprintf("Hello %s%s %s [%s]",
		glyphLeftArrow, glyphRightArrow, w.NLS.Str("Hello"), locale))
}

const (
	glyphLeftArrow  = "⮜" // heavy leftwards arrow with equilateral arrowhead
	glyphRightArrow = "⮞" // heavy rightwards arrow with equilateral arrowhead
)

// step advances one second and runs a frame onto c.
func (a *sampleApp) step(c graphics.Canvas) {
	a.engine.Tick(a.clock.advance(time.Second))
	a.engine.Frame(c)
}

// snapshot repaints the whole window and returns what was drawn.
func (a *sampleApp) snapshot() *graphics.DisplayList {
	var rec graphics.PictureRecorder
	a.engine.Pipeline.RequestLayout()
	crc := a.engine.Window.CRC
	a.engine.Frame(rec.BeginRecording(graphics.Pt(crc.W, crc.H)))
	return rec.EndRecording()
}
