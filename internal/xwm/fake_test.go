package xwm

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

const (
	testRoot   xproto.Window   = 0x100
	testVisual xproto.Visualid = 0x21
)

var testScreen = Screen{Root: testRoot, Visual: testVisual, Width: 1920, Height: 1080}

type request struct {
	Op     string
	Window xproto.Window
	Parent xproto.Window
	Geom   Geometry
	Border uint16
	Visual xproto.Visualid
	Mask   uint32
	X, Y   int16
	Values []uint32
}

type received struct {
	ev  xgb.Event
	err xgb.Error
}

// fakeConn records every request instead of talking to a server.
type fakeConn struct {
	nextID      xproto.Window
	geometry    map[xproto.Window]Geometry
	attributes  map[xproto.Window]Attributes
	children    []xproto.Window
	registerErr error
	cursorErr   error
	queue       []received

	requests []request
	closed   bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		nextID:     0x200000,
		geometry:   make(map[xproto.Window]Geometry),
		attributes: make(map[xproto.Window]Attributes),
	}
}

func (c *fakeConn) push(ev xgb.Event) {
	c.queue = append(c.queue, received{ev: ev})
}

func (c *fakeConn) pushError(err xgb.Error) {
	c.queue = append(c.queue, received{err: err})
}

func (c *fakeConn) record(r request) {
	c.requests = append(c.requests, r)
}

// ops returns the names of the recorded requests.
func (c *fakeConn) ops() []string {
	var ops []string
	for _, r := range c.requests {
		ops = append(ops, r.Op)
	}
	return ops
}

func (c *fakeConn) count(op string) int {
	n := 0
	for _, r := range c.requests {
		if r.Op == op {
			n++
		}
	}
	return n
}

func (c *fakeConn) NewWindowID() (xproto.Window, error) {
	id := c.nextID
	c.nextID++
	return id, nil
}

func (c *fakeConn) GetGeometry(wid xproto.Window) (Geometry, error) {
	c.record(request{Op: "GetGeometry", Window: wid})
	geom, ok := c.geometry[wid]
	if !ok {
		return Geometry{}, xproto.DrawableError{}
	}
	return geom, nil
}

func (c *fakeConn) GetWindowAttributes(wid xproto.Window) (Attributes, error) {
	attrs, ok := c.attributes[wid]
	if !ok {
		return Attributes{}, xproto.WindowError{}
	}
	return attrs, nil
}

func (c *fakeConn) QueryTree(wid xproto.Window) ([]xproto.Window, error) {
	return c.children, nil
}

func (c *fakeConn) CreateWindow(wid, parent xproto.Window, geom Geometry, borderWidth uint16, visual xproto.Visualid, eventMask uint32) {
	c.record(request{Op: "CreateWindow", Window: wid, Parent: parent, Geom: geom, Border: borderWidth, Visual: visual, Mask: eventMask})
}

func (c *fakeConn) ReparentWindow(wid, parent xproto.Window, x, y int16) {
	c.record(request{Op: "ReparentWindow", Window: wid, Parent: parent, X: x, Y: y})
}

func (c *fakeConn) SelectInput(wid xproto.Window, eventMask uint32) {
	c.record(request{Op: "SelectInput", Window: wid, Mask: eventMask})
}

func (c *fakeConn) SelectInputChecked(wid xproto.Window, eventMask uint32) error {
	c.record(request{Op: "SelectInputChecked", Window: wid, Mask: eventMask})
	return c.registerErr
}

func (c *fakeConn) ConfigureWindow(wid xproto.Window, valueMask uint16, values []uint32) {
	c.record(request{Op: "ConfigureWindow", Window: wid, Mask: uint32(valueMask), Values: values})
}

func (c *fakeConn) MapWindow(wid xproto.Window) {
	c.record(request{Op: "MapWindow", Window: wid})
}

func (c *fakeConn) UnmapWindow(wid xproto.Window) {
	c.record(request{Op: "UnmapWindow", Window: wid})
}

func (c *fakeConn) DestroyWindow(wid xproto.Window) {
	c.record(request{Op: "DestroyWindow", Window: wid})
}

func (c *fakeConn) DefineCursor(wid xproto.Window, glyph uint16) error {
	c.record(request{Op: "DefineCursor", Window: wid, Mask: uint32(glyph)})
	return c.cursorErr
}

func (c *fakeConn) SendConfigureNotify(wid xproto.Window, geom Geometry) {
	c.record(request{Op: "SendConfigureNotify", Window: wid, Geom: geom})
}

func (c *fakeConn) Flush() {
	c.record(request{Op: "Flush"})
}

func (c *fakeConn) WaitForEvent() (xgb.Event, xgb.Error) {
	if c.closed || len(c.queue) == 0 {
		return nil, nil
	}
	r := c.queue[0]
	c.queue = c.queue[1:]
	return r.ev, r.err
}

func (c *fakeConn) Close() {
	c.closed = true
}
