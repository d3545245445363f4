package messages

import (
	"screen-edge-offsets/src/selection"
)

// Event is the base interface for all input events fed to a session.
type Event interface {
	Type() string
}

// Event type constants for identification in logs and scripts
const (
	TypePointerDown        = "PointerDown"
	TypePointerMove        = "PointerMove"
	TypePointerUp          = "PointerUp"
	TypeKeyDown            = "KeyDown"
	TypeKeyUp              = "KeyUp"
	TypeClose              = "Close"
	TypeDisplayChangeCheck = "DisplayChangeCheck"
	TypeTick               = "Tick"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonOther
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "left"
	case ButtonSecondary:
		return "right"
	default:
		return "other"
	}
}

// Key identifies the keys the session reacts to; everything else is KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyF4
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	case KeyF4:
		return "f4"
	default:
		return "other"
	}
}

// PointerDown - a button was pressed at Point (client coordinates)
type PointerDown struct {
	Point  selection.Point
	Button Button
}

func (m PointerDown) Type() string { return TypePointerDown }

// PointerMove - the pointer moved to Point
type PointerMove struct {
	Point selection.Point
}

func (m PointerMove) Type() string { return TypePointerMove }

// PointerUp - a button was released at Point
type PointerUp struct {
	Point  selection.Point
	Button Button
}

func (m PointerUp) Type() string { return TypePointerUp }

// KeyDown - a key was pressed; Repeat is set for auto-repeat
type KeyDown struct {
	Key    Key
	Alt    bool
	Repeat bool
}

func (m KeyDown) Type() string { return TypeKeyDown }

// KeyUp - a key was released
type KeyUp struct {
	Key Key
	Alt bool
}

func (m KeyUp) Type() string { return TypeKeyUp }

// Close - the window is being closed by the system or the user
type Close struct{}

func (m Close) Type() string { return TypeClose }

// DisplayChangeCheck - the pointer left the window; the display under it may have changed
type DisplayChangeCheck struct{}

func (m DisplayChangeCheck) Type() string { return TypeDisplayChangeCheck }

// Tick - fixed-interval redraw timer fired
type Tick struct{}

func (m Tick) Type() string { return TypeTick }
