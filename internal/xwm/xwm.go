// Package xwm is a small reparenting window manager for X11.
//
// It claims substructure redirect on the root window, wraps every client
// that asks to be mapped in a frame window, and follows the client's
// lifecycle so the frame goes away with it.
package xwm

import "github.com/jezek/xgb/xproto"

// RootEventMask is selected on the root window. Holding substructure redirect
// is what makes this process the window manager.
const RootEventMask = xproto.EventMaskSubstructureRedirect |
	xproto.EventMaskSubstructureNotify |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskPropertyChange |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskFocusChange

// FrameEventMask is selected on every frame window.
const FrameEventMask = xproto.EventMaskButtonPress | // mouse button is pressed
	xproto.EventMaskButtonRelease | // mouse button is released
	xproto.EventMaskPointerMotion | // mouse is moved
	xproto.EventMaskExposure | // frame needs to be redrawn
	xproto.EventMaskStructureNotify | // frame gets destroyed
	xproto.EventMaskSubstructureRedirect | // client tries to map or resize itself
	xproto.EventMaskSubstructureNotify | // client gets destroyed or unmapped
	xproto.EventMaskEnterWindow // cursor moves inside the frame

// ClientEventMask is selected on every client once it is reparented.
const ClientEventMask = xproto.EventMaskPropertyChange |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskFocusChange

// FrameBorderWidth is the border of every frame window in pixels.
const FrameBorderWidth = 1

// Screen is the part of the connection setup the manager works with.
type Screen struct {
	Root   xproto.Window
	Visual xproto.Visualid
	Width  uint16
	Height uint16
}

func NewScreen(info *xproto.ScreenInfo) Screen {
	return Screen{
		Root:   info.Root,
		Visual: info.RootVisual,
		Width:  info.WidthInPixels,
		Height: info.HeightInPixels,
	}
}

// Geometry is the position and size of a window relative to its parent.
type Geometry struct {
	X      int16
	Y      int16
	Width  uint16
	Height uint16
}

// Attributes is the subset of window attributes used when adopting windows.
type Attributes struct {
	OverrideRedirect bool
	Viewable         bool
}
