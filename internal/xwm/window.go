package xwm

import (
	"log/slog"

	"github.com/jezek/xgb/xproto"
)

// reparent wraps client in a new frame on the root window and maps both.
// Nothing is created when the client's geometry cannot be read.
func (m *Manager) reparent(client xproto.Window) (xproto.Window, error) {
	geom, err := m.conn.GetGeometry(client)
	if err != nil {
		return 0, MissingReplyError{Request: "GetGeometry", Window: client, Err: err}
	}

	frame, err := m.conn.NewWindowID()
	if err != nil {
		return 0, err
	}

	m.conn.CreateWindow(frame, m.screen.Root, geom, FrameBorderWidth, m.screen.Visual, FrameEventMask)
	m.conn.ReparentWindow(client, frame, 0, 0)
	m.conn.SelectInput(client, ClientEventMask)
	m.frames[client] = frame

	// Frame first so the client is never shown without it.
	m.conn.MapWindow(frame)
	m.conn.MapWindow(client)
	m.conn.Flush()

	slog.Debug("Client framed", "client", client, "frame", frame,
		"x", geom.X, "y", geom.Y, "width", geom.Width, "height", geom.Height)

	return frame, nil
}

// Adopt frames the top-level windows that were already visible before the
// manager started. Windows that vanish while being adopted are skipped.
func (m *Manager) Adopt() error {
	children, err := m.conn.QueryTree(m.screen.Root)
	if err != nil {
		return MissingReplyError{Request: "QueryTree", Window: m.screen.Root, Err: err}
	}

	for _, child := range children {
		if _, ok := m.frames[child]; ok {
			continue
		}

		attrs, err := m.conn.GetWindowAttributes(child)
		if err != nil {
			slog.Warn("Failed to adopt window", "window", child, "error", MissingReplyError{Request: "GetWindowAttributes", Window: child, Err: err})
			continue
		}
		if attrs.OverrideRedirect || !attrs.Viewable {
			continue
		}

		if _, err := m.reparent(child); err != nil {
			slog.Warn("Failed to adopt window", "window", child, "error", err)
		}
	}

	return nil
}
