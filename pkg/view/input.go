package view

// MouseMessage identifies a pointer event delivered to Window.Mouse.
type MouseMessage int

const (
	MouseMove MouseMessage = iota
	MouseHover
	LeftButtonDown
	LeftButtonUp
	LeftDoubleClick
	RightButtonDown
	RightButtonUp
	RightDoubleClick
	MiddleButtonDown
	MiddleButtonUp
)

func (m MouseMessage) String() string {
	switch m {
	case MouseMove:
		return "mouse_move"
	case MouseHover:
		return "mouse_hover"
	case LeftButtonDown:
		return "left_button_down"
	case LeftButtonUp:
		return "left_button_up"
	case LeftDoubleClick:
		return "left_double_click"
	case RightButtonDown:
		return "right_button_down"
	case RightButtonUp:
		return "right_button_up"
	case RightDoubleClick:
		return "right_double_click"
	case MiddleButtonDown:
		return "middle_button_down"
	case MiddleButtonUp:
		return "middle_button_up"
	default:
		return "mouse_unknown"
	}
}

// Modifiers is the set of keyboard modifiers and buttons held during an event.
type Modifiers uint8

const (
	ModAlt Modifiers = 1 << iota
	ModCtrl
	ModShift
	ModLeftButton
	ModRightButton
	ModMiddleButton
)

// Mouse buttons as passed to Tap and Press.
const (
	ButtonLeft   = 0
	ButtonMiddle = 1
	ButtonRight  = 2
)

// Key is a key code. Printable ASCII keys use their character code.
type Key int32

const (
	KeyBackspace Key = 0x08
	KeyTab       Key = 0x09
	KeyEnter     Key = 0x0D
	KeyEscape    Key = 0x1B
	KeyLeft      Key = 0x25
	KeyUp        Key = 0x26
	KeyRight     Key = 0x27
	KeyDown      Key = 0x28
)

// Message is a generic event delivered to every view, hidden and disabled
// ones included, so that work posted from other goroutines through the
// platform queue can reach any node.
type Message struct {
	ID     int32
	WParam int64
	LParam int64
	// Ret is the result reported back to the platform by the handler.
	Ret int64
}

// HitTest classifies a window point for the platform's non-client handling.
type HitTest int

const (
	HitClient HitTest = iota
	HitCaption
	HitSystemMenu
	HitNowhere
)

func (h HitTest) String() string {
	switch h {
	case HitClient:
		return "client"
	case HitCaption:
		return "caption"
	case HitSystemMenu:
		return "system_menu"
	default:
		return "nowhere"
	}
}
