package xwm

import (
	"errors"
	"log/slog"

	"github.com/ItsNotGoodName/x-framewm/internal/xcursor"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Connect opens a connection to display, or $DISPLAY when display is empty,
// and returns it with its default screen.
func Connect(display string) (*XConn, Screen, error) {
	x, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, Screen{}, ConnectionError{Display: display, Err: err}
	}

	setup := xproto.Setup(x)
	if setup == nil || len(setup.Roots) == 0 {
		x.Close()
		return nil, Screen{}, ConnectionError{Display: display, Err: errNoReply}
	}

	return NewXConn(x), NewScreen(setup.DefaultScreen(x)), nil
}

// Bootstrap registers conn as the window manager of screen. The connection is
// closed when registration fails. A protocol error means another window
// manager already owns the root window, anything else is a connection error.
func Bootstrap(conn Conn, screen Screen) error {
	if err := conn.SelectInputChecked(screen.Root, RootEventMask); err != nil {
		conn.Close()

		var xerr xgb.Error
		if errors.As(err, &xerr) {
			return AlreadyRunningError{Code: ErrorCode(err), Err: err}
		}
		return ConnectionError{Err: err}
	}

	if err := conn.DefineCursor(screen.Root, xcursor.LeftPtr); err != nil {
		slog.Warn("Failed to set root cursor", "root", screen.Root, "error", err)
	}

	conn.Flush()

	slog.Info("Managing screen", "root", screen.Root, "width", screen.Width, "height", screen.Height)

	return nil
}
