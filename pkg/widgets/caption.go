package widgets

import (
	"github.com/go-drift/ui/pkg/errors"
	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/layout"
	"github.com/go-drift/ui/pkg/platform"
	"github.com/go-drift/ui/pkg/theme"
	"github.com/go-drift/ui/pkg/view"
)

// Caption glyphs.
const (
	GlyphRestore    = "⧉" // two joined squares
	GlyphMenu       = "☰" // trigram for heaven
	GlyphMinimize   = "➖" // heavy minus sign
	GlyphMaximize   = "⬜" // white large square
	GlyphFullScreen = "⛶" // square four corners
	GlyphQuit       = "⨉" // n-ary times operator
)

// Caption is the title bar drawn inside the client area of a borderless
// window: icon, menu, title, then minimize, maximize or restore, full
// screen and quit buttons on the right. Each window owns its own.
type Caption struct {
	View   *view.View
	Icon   *view.View
	Menu   *view.View
	Title  *view.View
	Spacer *view.View
	Mini   *view.View
	Maxi   *view.View
	Full   *view.View
	Quit   *view.View

	chrome platform.Chrome
}

// NewCaption builds a caption bar driving chrome. It starts hidden; Show
// reveals it.
func NewCaption(chrome platform.Chrome) *Caption {
	errors.Swear(chrome != nil, "widgets.NewCaption", "nil chrome")
	c := &Caption{chrome: chrome}
	c.Icon = NewButton(" ", 0, nil)
	c.Menu = NewButton(GlyphMenu, 0, nil)
	c.Title = NewLabel(chrome.Title(), 0)
	c.Spacer = layout.NewSpacer()
	c.Mini = NewButton(GlyphMinimize, 0, func(*view.View) { c.chrome.Minimize() })
	c.Maxi = NewButton(GlyphMaximize, 0, func(*view.View) { c.maximizeOrRestore() })
	c.Full = NewButton(GlyphFullScreen, 0, func(*view.View) { c.ToggleFullScreen() })
	c.Quit = NewButton(GlyphQuit, 0, func(*view.View) { c.chrome.Quit() })
	c.Mini.Tip = "Minimize"
	c.Maxi.Tip = "Maximize"
	c.Full.Tip = "Full Screen (ESC to restore)"
	c.Quit.Tip = "Close"

	v := layout.NewHStack(c.Icon, c.Menu, c.Title, c.Spacer, c.Mini, c.Maxi, c.Full, c.Quit)
	v.Kind = view.KindCaption
	v.Text = "caption"
	v.Hidden = true
	v.Align = graphics.AlignLeft
	v.ColorID = theme.ColorWindowText
	v.Insets = graphics.Gaps{Left: 0.75, Top: 0.125, Right: 0.75, Bottom: 0.125}
	v.Data = c
	v.Init = c.init
	v.HitTest = c.hitTest
	v.BeforeMeasure = func(*view.View) { c.Title.Hidden = false }
	v.Measured = c.measured
	v.Layouted = func(v *view.View) { v.X = 0 }
	v.Paint = c.paint
	c.View = v
	return c
}

func (c *Caption) init(v *view.View) {
	w := v.Window()
	for _, ch := range v.Children {
		if w != nil {
			ch.Font = w.Fonts.H3
		}
		ch.ColorID = v.ColorID
		ch.Flat = true
		ch.Padding = graphics.UniformGaps(0.25)
	}
	c.Icon.Focusable = false
	c.Menu.Focusable = false
	c.syncMaximize()
}

// Show reveals the caption unless the window is full screen.
func (c *Caption) Show() {
	c.View.Hidden = c.chrome.IsFullScreen()
	if w := c.View.Window(); w != nil {
		w.RequestLayout()
	}
}

// SetTitle updates the window and caption titles.
func (c *Caption) SetTitle(title string) {
	c.chrome.SetTitle(title)
	c.Title.SetText(title)
	if w := c.View.Window(); w != nil {
		w.Localize(c.Title)
		w.RequestLayout()
	}
}

// ToggleFullScreen switches full-screen mode. The caption hides while the
// window is full screen.
func (c *Caption) ToggleFullScreen() {
	c.chrome.FullScreen(!c.chrome.IsFullScreen())
	c.View.Hidden = c.chrome.IsFullScreen()
	if w := c.View.Window(); w != nil {
		w.RequestLayout()
	}
}

// InstallEscape makes ESC typed anywhere under parent leave full screen.
// An existing Character handler on parent still runs first.
func (c *Caption) InstallEscape(parent *view.View) {
	prev := parent.Character
	parent.Character = func(v *view.View, s string) {
		if prev != nil {
			prev(v, s)
		}
		if s == "\x1b" && c.chrome.IsFullScreen() {
			c.ToggleFullScreen()
		}
	}
}

func (c *Caption) maximizeOrRestore() {
	if c.chrome.IsMaximized() || c.chrome.IsMinimized() {
		c.chrome.Restore()
	} else {
		c.chrome.Maximize()
	}
	c.syncMaximize()
	if w := c.View.Window(); w != nil {
		w.RequestLayout()
	}
}

func (c *Caption) syncMaximize() {
	if c.chrome.IsMaximized() {
		c.Maxi.SetText(GlyphRestore)
		c.Maxi.Tip = "Restore"
	} else {
		c.Maxi.SetText(GlyphMaximize)
		c.Maxi.Tip = "Maximize"
	}
}

// measured hides the title when the bar would not fit and stretches the
// bar to the client width.
func (c *Caption) measured(v *view.View) {
	w := v.Window()
	if w == nil {
		return
	}
	c.Title.Hidden = v.W > w.CRC.W
	v.W = w.CRC.W
}

// hitTest classifies pt for non-client handling: buttons are client area,
// the icon opens the system menu and the rest drags the window.
func (c *Caption) hitTest(v *view.View, pt graphics.Point) view.HitTest {
	if c.chrome.IsFullScreen() {
		return view.HitClient
	}
	if c.Icon.Inside(pt) {
		return view.HitSystemMenu
	}
	for _, ch := range v.Children {
		switch ch.Kind {
		case view.KindContainer, view.KindSpacer, view.KindLabel:
			continue
		}
		if !ch.Hidden && ch.Inside(pt) {
			return view.HitClient
		}
	}
	return view.HitCaption
}

func (c *Caption) paint(v *view.View, cv graphics.Canvas) {
	w := v.Window()
	id := theme.ColorActiveTitle
	if !w.Active {
		id = theme.ColorInactiveTitle
	}
	cv.FillRect(v.Rect(), w.Color(id))
}
