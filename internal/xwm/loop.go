package xwm

import (
	"context"
	"log/slog"
)

// Run handles events until the quit key is pressed or the connection closes.
// A closed connection after ctx is done is a normal shutdown.
func (m *Manager) Run(ctx context.Context) error {
	for !m.quit {
		// WaitForEvent either returns an event or an error and never both.
		// If both are nil, then the connection is gone.
		//
		// An error can only be seen here as a response to an unchecked
		// request.
		ev, xerr := m.conn.WaitForEvent()
		if ev == nil && xerr == nil {
			if ctx.Err() != nil {
				slog.Debug("exit: connection closed on shutdown")
				return nil
			}
			return ConnectionError{Err: ErrConnectionClosed}
		}

		if xerr != nil {
			slog.Warn("Server rejected request", "error", ProtocolRequestError{Code: ErrorCode(xerr), Err: xerr})
			continue
		}

		if err := m.Handle(Decode(ev)); err != nil {
			slog.Warn("Failed to handle event", "event", ev.String(), "error", err)
		}
	}

	slog.Debug("exit: quit key pressed")

	return nil
}
