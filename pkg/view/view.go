// Package view implements the view tree: nodes with optional behavior
// callbacks, and the tree-walk passes that initialize, measure, lay out,
// paint and route input through them.
//
// A View is a plain struct. Behavior is attached by filling callback slots
// (Measure, Layout, Paint, Tap, ...), not by embedding or subclassing; a
// stack is an ordinary View whose Measure and Layout slots distribute space
// among its children. Every pass recurses into children whether or not the
// node itself has the corresponding callback.
package view

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-drift/ui/pkg/errors"
	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/text"
	"github.com/go-drift/ui/pkg/theme"
)

// Infinite is the MaxW/MaxH sentinel for a view that may grow to fill all
// available space along that axis.
const Infinite int32 = math.MaxInt32

// DefaultHoverDelay is the delay before a hovered view receives
// Hovering(v, true).
const DefaultHoverDelay = 1500 * time.Millisecond

// Kind tags the role of a view. Layout callbacks assert on it.
type Kind int

const (
	KindView Kind = iota
	KindContainer
	KindHStack
	KindVStack
	KindSpacer
	KindLabel
	KindButton
	KindSlider
	KindCaption
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindView:
		return "view"
	case KindContainer:
		return "container"
	case KindHStack:
		return "h_stack"
	case KindVStack:
		return "v_stack"
	case KindSpacer:
		return "spacer"
	case KindLabel:
		return "label"
	case KindButton:
		return "button"
	case KindSlider:
		return "slider"
	case KindCaption:
		return "caption"
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TimerID identifies a platform timer delivered through Window.Timer.
type TimerID uint64

// View is a node of the view tree.
type View struct {
	Kind Kind

	// Position is in window client coordinates.
	X, Y int32
	W, H int32
	// MaxW and MaxH bound growth during layout. Zero means the view keeps
	// its natural size; Infinite means it takes all leftover space.
	MaxW, MaxH int32

	Insets  graphics.Gaps
	Padding graphics.Gaps
	Align   graphics.Align
	Font    *text.Font
	ColorID theme.ColorID

	Text      string
	StrID     int
	Shortcut  rune
	Tip       string
	Width     float32 // minimum width in ems
	Multiline bool

	Hidden    bool
	Disabled  bool
	Focusable bool
	Flat      bool
	Pressed   bool
	Armed     bool
	Hover     bool

	HoverDelay time.Duration

	// Em is the size of one character cell of the view's font.
	Em       graphics.Point
	Baseline int32
	Descent  int32

	Parent   *View
	Children []*View

	// Data carries widget state for callbacks that need it.
	Data any

	Init        func(v *View)
	Measure     func(v *View)
	Layout      func(v *View)
	Paint       func(v *View, c graphics.Canvas)
	Mouse       func(v *View, m MouseMessage, mods Modifiers)
	MouseWheel  func(v *View, dx, dy int32)
	Tap         func(v *View, button int) bool
	Press       func(v *View, button int) bool
	Character   func(v *View, utf8 string)
	KeyPressed  func(v *View, key Key)
	KeyReleased func(v *View, key Key)
	Timer       func(v *View, id TimerID)
	EverySec    func(v *View)
	Every100ms  func(v *View)
	ContextMenu func(v *View)
	SetFocus    func(v *View) bool
	KillFocus   func(v *View)
	Hovering    func(v *View, start bool)
	Message     func(v *View, m *Message) bool
	HitTest     func(v *View, pt graphics.Point) HitTest

	// BeforeMeasure, Measured and Layouted bracket the measure and layout
	// passes for views that need to adjust themselves around them.
	BeforeMeasure func(v *View)
	Measured      func(v *View)
	Layouted      func(v *View)

	window *Window
	hover  hoverTask
}

// New returns a view of the given kind with the default measure (text
// metrics) and hover (tooltip) behavior.
func New(kind Kind, label string) *View {
	v := &View{Kind: kind}
	v.Measure = MeasureText
	v.Hovering = ShowTip
	v.HoverDelay = DefaultHoverDelay
	if label != "" {
		v.SetText(label)
	}
	return v
}

// Add appends children to v. A child that already has a different parent
// is a fatal assertion.
func (v *View) Add(children ...*View) *View {
	for _, c := range children {
		errors.Swear(c != nil, "view.Add", "nil child of %s", v.Name())
		errors.Swear(c.Parent == nil || c.Parent == v, "view.Add",
			"no reparenting: %s already belongs to %s", c.Name(), c.Parent.Name())
		c.Parent = v
		if v.window != nil {
			c.setWindow(v.window)
		}
		v.Children = append(v.Children, c)
	}
	return v
}

// Window returns the window the view is attached to, or nil.
func (v *View) Window() *Window {
	return v.window
}

func (v *View) setWindow(w *Window) {
	v.window = w
	for _, c := range v.Children {
		c.setWindow(w)
	}
}

// Rect returns the view bounds.
func (v *View) Rect() graphics.Rect {
	return graphics.Rect{X: v.X, Y: v.Y, W: v.W, H: v.H}
}

// Inside reports whether pt falls within the view bounds.
func (v *View) Inside(pt graphics.Point) bool {
	return v.Rect().Contains(pt)
}

// Name returns a short description for diagnostics.
func (v *View) Name() string {
	if v == nil {
		return "<nil>"
	}
	if v.Text != "" {
		return fmt.Sprintf("%s[%s]", v.Kind, v.Text)
	}
	return v.Kind.String()
}

// SetText replaces the label and derives the keyboard shortcut from the
// first "&x" marker ("&&" is a literal ampersand). The string id is reset
// so the next localization pass picks the new text up.
func (v *View) SetText(s string) {
	v.Text = s
	v.StrID = 0
	v.Shortcut = 0
	for i := 0; i < len(s)-1; i++ {
		if s[i] != '&' {
			continue
		}
		if s[i+1] == '&' {
			i++
			continue
		}
		r, _ := utf8.DecodeRuneInString(s[i+1:])
		v.Shortcut = r
		break
	}
}

// StripMnemonic removes "&" shortcut markers, keeping escaped "&&" as "&".
func StripMnemonic(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '&' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// IsHidden reports whether v or any ancestor is hidden.
func (v *View) IsHidden() bool {
	for p := v; p != nil; p = p.Parent {
		if p.Hidden {
			return true
		}
	}
	return false
}

// IsDisabled reports whether v or any ancestor is disabled.
func (v *View) IsDisabled() bool {
	for p := v; p != nil; p = p.Parent {
		if p.Disabled {
			return true
		}
	}
	return false
}

func upperASCII(r rune) rune {
	if r < 0x80 {
		return unicode.ToUpper(r)
	}
	return r
}
