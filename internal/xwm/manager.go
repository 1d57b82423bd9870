package xwm

import (
	"context"
	"log/slog"

	"github.com/ItsNotGoodName/x-framewm/internal/logging"
	"github.com/jezek/xgb/xproto"
	"github.com/k0kubun/pp"
)

type Options struct {
	// QuitKey stops the manager when pressed. Zero disables it.
	QuitKey xproto.Keycode
}

// Manager reacts to events on a managed screen. It is not safe for concurrent
// use; Run is the only caller of Handle.
type Manager struct {
	conn    Conn
	screen  Screen
	quitKey xproto.Keycode
	quit    bool

	// frames maps a client window to the frame it was reparented into.
	frames map[xproto.Window]xproto.Window
}

func NewManager(conn Conn, screen Screen, opts Options) *Manager {
	return &Manager{
		conn:    conn,
		screen:  screen,
		quitKey: opts.QuitKey,
		frames:  make(map[xproto.Window]xproto.Window),
	}
}

// Frame returns the frame of client.
func (m *Manager) Frame(client xproto.Window) (xproto.Window, bool) {
	frame, ok := m.frames[client]
	return frame, ok
}

// Stopped reports whether the quit key was pressed.
func (m *Manager) Stopped() bool {
	return m.quit
}

// Handle dispatches ev to its handler. Errors only concern ev and the caller
// may continue with the next event.
func (m *Manager) Handle(ev Event) error {
	switch ev := ev.(type) {
	case Expose:
		m.expose(ev)
	case ButtonPress:
		m.buttonPress(ev)
	case KeyPress:
		m.keyPress(ev)
	case CreateNotify:
		m.createNotify(ev)
	case MapRequest:
		return m.mapRequest(ev)
	case ConfigureRequest:
		m.configureRequest(ev)
	case UnmapNotify:
		m.unmapNotify(ev)
	case DestroyNotify:
		m.destroyNotify(ev)
	case Unknown:
		m.unknown(ev)
	}
	return nil
}

func (m *Manager) expose(ev Expose) {
	slog.Debug("Window exposed", "window", ev.Window)
}

func (m *Manager) buttonPress(ev ButtonPress) {
	slog.Debug("Button pressed", "window", ev.Event, "child", ev.Child, "button", buttonName(ev.Button))
}

func buttonName(button xproto.Button) string {
	switch button {
	case xproto.ButtonIndex1:
		return "left"
	case xproto.ButtonIndex2:
		return "middle"
	case xproto.ButtonIndex3:
		return "right"
	case xproto.ButtonIndex4:
		return "scroll-up"
	case xproto.ButtonIndex5:
		return "scroll-down"
	default:
		return "other"
	}
}

func (m *Manager) keyPress(ev KeyPress) {
	slog.Debug("Key pressed", "window", ev.Event, "keycode", ev.Keycode)

	if m.quitKey != 0 && ev.Keycode == m.quitKey {
		slog.Info("Quit key pressed", "keycode", ev.Keycode)
		m.quit = true
	}
}

func (m *Manager) createNotify(ev CreateNotify) {
	slog.Debug("Window created", "window", ev.Window, "parent", ev.Parent)
}

func (m *Manager) mapRequest(ev MapRequest) error {
	slog.Debug("Map request", "window", ev.Window, "parent", ev.Parent)

	if frame, ok := m.frames[ev.Window]; ok {
		m.conn.MapWindow(frame)
		m.conn.MapWindow(ev.Window)
		m.conn.Flush()
		return nil
	}

	_, err := m.reparent(ev.Window)
	return err
}

func (m *Manager) configureRequest(ev ConfigureRequest) {
	slog.Debug("Configure request", "window", ev.Window, "mask", ev.ValueMask)

	frame, ok := m.frames[ev.Window]
	if !ok {
		m.conn.ConfigureWindow(ev.Window, ev.ValueMask, configureValues(ev, ev.ValueMask))
		m.conn.Flush()
		return
	}

	// The frame takes the position and stacking, the client fills the frame.
	// Frames keep their own border.
	frameMask := ev.ValueMask &^ xproto.ConfigWindowBorderWidth
	frameEv := ev
	if frameMask&xproto.ConfigWindowSibling != 0 {
		// Siblings of the client are clients inside other frames; stack
		// against their frames instead.
		if sibling, ok := m.frames[ev.Sibling]; ok {
			frameEv.Sibling = sibling
		} else {
			frameMask &^= xproto.ConfigWindowSibling
		}
	}
	if frameMask != 0 {
		m.conn.ConfigureWindow(frame, frameMask, configureValues(frameEv, frameMask))
	}

	clientMask := ev.ValueMask & (xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	if clientMask != 0 {
		m.conn.ConfigureWindow(ev.Window, clientMask, configureValues(ev, clientMask))
	} else {
		// The client was not resized, so the server sends it nothing.
		m.notifyConfigure(ev.Window, frame)
	}
	m.conn.Flush()
}

// notifyConfigure tells client where it is on the root window.
func (m *Manager) notifyConfigure(client, frame xproto.Window) {
	geom, err := m.conn.GetGeometry(frame)
	if err != nil {
		slog.Warn("Failed to notify client of its geometry", "client", client,
			"error", MissingReplyError{Request: "GetGeometry", Window: frame, Err: err})
		return
	}

	m.conn.SendConfigureNotify(client, Geometry{
		X:      geom.X + FrameBorderWidth,
		Y:      geom.Y + FrameBorderWidth,
		Width:  geom.Width,
		Height: geom.Height,
	})
}

// configureValues returns the values of ev selected by mask in protocol order.
func configureValues(ev ConfigureRequest, mask uint16) []uint32 {
	var values []uint32
	if mask&xproto.ConfigWindowX != 0 {
		values = append(values, uint32(ev.X))
	}
	if mask&xproto.ConfigWindowY != 0 {
		values = append(values, uint32(ev.Y))
	}
	if mask&xproto.ConfigWindowWidth != 0 {
		values = append(values, uint32(ev.Width))
	}
	if mask&xproto.ConfigWindowHeight != 0 {
		values = append(values, uint32(ev.Height))
	}
	if mask&xproto.ConfigWindowBorderWidth != 0 {
		values = append(values, uint32(ev.BorderWidth))
	}
	if mask&xproto.ConfigWindowSibling != 0 {
		values = append(values, uint32(ev.Sibling))
	}
	if mask&xproto.ConfigWindowStackMode != 0 {
		values = append(values, uint32(ev.StackMode))
	}
	return values
}

func (m *Manager) unmapNotify(ev UnmapNotify) {
	slog.Debug("Window unmapped", "window", ev.Window, "event", ev.Event)

	// Reparenting a mapped window reports an unmap on the root.
	if ev.Event == m.screen.Root {
		return
	}

	frame, ok := m.frames[ev.Window]
	if !ok {
		return
	}

	m.conn.UnmapWindow(frame)
	m.conn.Flush()
}

func (m *Manager) destroyNotify(ev DestroyNotify) {
	slog.Debug("Window destroyed", "window", ev.Window, "event", ev.Event)

	frame, ok := m.frames[ev.Window]
	if !ok {
		return
	}
	delete(m.frames, ev.Window)

	m.conn.DestroyWindow(frame)
	m.conn.Flush()

	slog.Debug("Frame destroyed", "frame", frame, "client", ev.Window)
}

func (m *Manager) unknown(ev Unknown) {
	if !slog.Default().Enabled(context.Background(), logging.LevelTrace) {
		return
	}
	slog.Log(context.Background(), logging.LevelTrace, "Unhandled event", "code", ev.Code, "event", pp.Sprint(ev.Raw))
}
