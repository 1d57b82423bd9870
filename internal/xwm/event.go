package xwm

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// syntheticBit is set in the response type of events sent with SendEvent.
const syntheticBit = 0x80

// Event is one of the events the manager reacts to. Decode builds it once per
// received event.
type Event interface {
	event()
}

type Expose struct {
	Window xproto.Window
}

type ButtonPress struct {
	Event  xproto.Window
	Child  xproto.Window
	Button xproto.Button
}

type KeyPress struct {
	Event   xproto.Window
	Keycode xproto.Keycode
}

type CreateNotify struct {
	Window xproto.Window
	Parent xproto.Window
}

type MapRequest struct {
	Window xproto.Window
	Parent xproto.Window
}

type ConfigureRequest struct {
	Window      xproto.Window
	Parent      xproto.Window
	Sibling     xproto.Window
	X           int16
	Y           int16
	Width       uint16
	Height      uint16
	BorderWidth uint16
	StackMode   byte
	ValueMask   uint16
}

type UnmapNotify struct {
	Event  xproto.Window
	Window xproto.Window
}

type DestroyNotify struct {
	Event  xproto.Window
	Window xproto.Window
}

// Unknown is any event the manager ignores.
type Unknown struct {
	Code byte
	Raw  xgb.Event
}

func (Expose) event()           {}
func (ButtonPress) event()      {}
func (KeyPress) event()         {}
func (CreateNotify) event()     {}
func (MapRequest) event()       {}
func (ConfigureRequest) event() {}
func (UnmapNotify) event()      {}
func (DestroyNotify) event()    {}
func (Unknown) event()          {}

// Decode converts an event received from the server.
func Decode(ev xgb.Event) Event {
	switch ev := ev.(type) {
	case xproto.ExposeEvent:
		return Expose{Window: ev.Window}
	case xproto.ButtonPressEvent:
		return ButtonPress{Event: ev.Event, Child: ev.Child, Button: ev.Detail}
	case xproto.KeyPressEvent:
		return KeyPress{Event: ev.Event, Keycode: ev.Detail}
	case xproto.CreateNotifyEvent:
		return CreateNotify{Window: ev.Window, Parent: ev.Parent}
	case xproto.MapRequestEvent:
		return MapRequest{Window: ev.Window, Parent: ev.Parent}
	case xproto.ConfigureRequestEvent:
		return ConfigureRequest{
			Window:      ev.Window,
			Parent:      ev.Parent,
			Sibling:     ev.Sibling,
			X:           ev.X,
			Y:           ev.Y,
			Width:       ev.Width,
			Height:      ev.Height,
			BorderWidth: ev.BorderWidth,
			StackMode:   ev.StackMode,
			ValueMask:   ev.ValueMask,
		}
	case xproto.UnmapNotifyEvent:
		return UnmapNotify{Event: ev.Event, Window: ev.Window}
	case xproto.DestroyNotifyEvent:
		return DestroyNotify{Event: ev.Event, Window: ev.Window}
	default:
		return Unknown{Code: code(ev), Raw: ev}
	}
}

func code(ev xgb.Event) byte {
	if ev == nil {
		return 0
	}
	b := ev.Bytes()
	if len(b) == 0 {
		return 0
	}
	return ResponseType(b[0])
}

// ResponseType strips the synthetic bit from the first byte of an event.
func ResponseType(b byte) byte {
	return b &^ syntheticBit
}
