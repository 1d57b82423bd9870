package xwm

import (
	"github.com/ItsNotGoodName/x-framewm/internal/xcursor"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Conn is the set of X requests the window manager issues.
//
// Requests without a return value are unchecked; their errors arrive later
// through WaitForEvent.
type Conn interface {
	NewWindowID() (xproto.Window, error)
	GetGeometry(wid xproto.Window) (Geometry, error)
	GetWindowAttributes(wid xproto.Window) (Attributes, error)
	QueryTree(wid xproto.Window) ([]xproto.Window, error)

	CreateWindow(wid, parent xproto.Window, geom Geometry, borderWidth uint16, visual xproto.Visualid, eventMask uint32)
	ReparentWindow(wid, parent xproto.Window, x, y int16)
	SelectInput(wid xproto.Window, eventMask uint32)
	SelectInputChecked(wid xproto.Window, eventMask uint32) error
	ConfigureWindow(wid xproto.Window, valueMask uint16, values []uint32)
	MapWindow(wid xproto.Window)
	UnmapWindow(wid xproto.Window)
	DestroyWindow(wid xproto.Window)
	DefineCursor(wid xproto.Window, glyph uint16) error
	// SendConfigureNotify sends wid a synthetic ConfigureNotify with geom in
	// root coordinates.
	SendConfigureNotify(wid xproto.Window, geom Geometry)

	// Flush sends queued requests to the server.
	Flush()
	// WaitForEvent blocks until an event or an error arrives. Both are nil
	// once the connection is closed.
	WaitForEvent() (xgb.Event, xgb.Error)
	Close()
}

var _ Conn = (*XConn)(nil)

// XConn implements Conn on top of a xgb connection.
type XConn struct {
	X *xgb.Conn
}

func NewXConn(x *xgb.Conn) *XConn {
	return &XConn{X: x}
}

func (c *XConn) NewWindowID() (xproto.Window, error) {
	return xproto.NewWindowId(c.X)
}

func (c *XConn) GetGeometry(wid xproto.Window) (Geometry, error) {
	reply, err := xproto.GetGeometry(c.X, xproto.Drawable(wid)).Reply()
	if err != nil {
		return Geometry{}, err
	}
	if reply == nil {
		return Geometry{}, errNoReply
	}

	return Geometry{
		X:      reply.X,
		Y:      reply.Y,
		Width:  reply.Width,
		Height: reply.Height,
	}, nil
}

func (c *XConn) GetWindowAttributes(wid xproto.Window) (Attributes, error) {
	reply, err := xproto.GetWindowAttributes(c.X, wid).Reply()
	if err != nil {
		return Attributes{}, err
	}
	if reply == nil {
		return Attributes{}, errNoReply
	}

	return Attributes{
		OverrideRedirect: reply.OverrideRedirect,
		Viewable:         reply.MapState == xproto.MapStateViewable,
	}, nil
}

func (c *XConn) QueryTree(wid xproto.Window) ([]xproto.Window, error) {
	reply, err := xproto.QueryTree(c.X, wid).Reply()
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, errNoReply
	}

	return reply.Children, nil
}

func (c *XConn) CreateWindow(wid, parent xproto.Window, geom Geometry, borderWidth uint16, visual xproto.Visualid, eventMask uint32) {
	xproto.CreateWindow(c.X, 0, // depth copied from parent
		wid, parent,
		geom.X, geom.Y, geom.Width, geom.Height, borderWidth,
		xproto.WindowClassInputOutput, visual,
		xproto.CwEventMask,
		[]uint32{eventMask})
}

func (c *XConn) ReparentWindow(wid, parent xproto.Window, x, y int16) {
	xproto.ReparentWindow(c.X, wid, parent, x, y)
}

func (c *XConn) SelectInput(wid xproto.Window, eventMask uint32) {
	xproto.ChangeWindowAttributes(c.X, wid, xproto.CwEventMask, []uint32{eventMask})
}

func (c *XConn) SelectInputChecked(wid xproto.Window, eventMask uint32) error {
	return xproto.ChangeWindowAttributesChecked(c.X, wid, xproto.CwEventMask, []uint32{eventMask}).Check()
}

func (c *XConn) ConfigureWindow(wid xproto.Window, valueMask uint16, values []uint32) {
	xproto.ConfigureWindow(c.X, wid, valueMask, values)
}

func (c *XConn) MapWindow(wid xproto.Window) {
	xproto.MapWindow(c.X, wid)
}

func (c *XConn) UnmapWindow(wid xproto.Window) {
	xproto.UnmapWindow(c.X, wid)
}

func (c *XConn) DestroyWindow(wid xproto.Window) {
	xproto.DestroyWindow(c.X, wid)
}

func (c *XConn) DefineCursor(wid xproto.Window, glyph uint16) error {
	cursor, err := xcursor.CreateCursor(c.X, glyph)
	if err != nil {
		return err
	}

	return xproto.ChangeWindowAttributesChecked(c.X, wid, xproto.CwCursor, []uint32{uint32(cursor)}).Check()
}

func (c *XConn) SendConfigureNotify(wid xproto.Window, geom Geometry) {
	ev := xproto.ConfigureNotifyEvent{
		Event:        wid,
		Window:       wid,
		AboveSibling: xproto.WindowNone,
		X:            geom.X,
		Y:            geom.Y,
		Width:        geom.Width,
		Height:       geom.Height,
	}
	xproto.SendEvent(c.X, false, wid, xproto.EventMaskStructureNotify, string(ev.Bytes()))
}

// Flush is a no-op because xgb writes every request as soon as it is issued.
func (c *XConn) Flush() {}

func (c *XConn) WaitForEvent() (xgb.Event, xgb.Error) {
	return c.X.WaitForEvent()
}

// Close can be called more than once; xgb ignores repeated closes.
func (c *XConn) Close() {
	c.X.Close()
}
