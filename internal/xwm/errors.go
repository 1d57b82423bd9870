package xwm

import (
	"errors"
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// ErrConnectionClosed is returned by Run when the server goes away.
var ErrConnectionClosed = errors.New("connection closed")

var errNoReply = errors.New("no reply")

// ConnectionError means the display server could not be reached or dropped
// the connection. It is fatal.
type ConnectionError struct {
	Display string
	Err     error
}

func (e ConnectionError) Error() string {
	if e.Display == "" {
		return fmt.Sprintf("connection to X server: %s", e.Err)
	}
	return fmt.Sprintf("connection to X server %s: %s", e.Display, e.Err)
}

func (e ConnectionError) Unwrap() error {
	return e.Err
}

// AlreadyRunningError means the server rejected substructure redirect on the
// root window, which happens when another window manager holds it.
type AlreadyRunningError struct {
	Code uint8
	Err  error
}

func (e AlreadyRunningError) Error() string {
	return fmt.Sprintf("another window manager is already running (X error code %d): %s", e.Code, e.Err)
}

func (e AlreadyRunningError) Unwrap() error {
	return e.Err
}

// ProtocolRequestError is an error the server returned for a request.
type ProtocolRequestError struct {
	Code uint8
	Err  error
}

func (e ProtocolRequestError) Error() string {
	return fmt.Sprintf("request failed (X error code %d): %s", e.Code, e.Err)
}

func (e ProtocolRequestError) Unwrap() error {
	return e.Err
}

// MissingReplyError means a synchronous query returned no data, usually
// because the window was destroyed before the server answered.
type MissingReplyError struct {
	Request string
	Window  xproto.Window
	Err     error
}

func (e MissingReplyError) Error() string {
	return fmt.Sprintf("%s on window %d: %s", e.Request, e.Window, e.Err)
}

func (e MissingReplyError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the X error code carried by err, or 0 when err is not a
// core X protocol error.
func ErrorCode(err error) uint8 {
	var xerr xgb.Error
	if !errors.As(err, &xerr) {
		return 0
	}

	switch xerr.(type) {
	case xproto.RequestError:
		return xproto.BadRequest
	case xproto.ValueError:
		return xproto.BadValue
	case xproto.WindowError:
		return xproto.BadWindow
	case xproto.PixmapError:
		return xproto.BadPixmap
	case xproto.AtomError:
		return xproto.BadAtom
	case xproto.CursorError:
		return xproto.BadCursor
	case xproto.FontError:
		return xproto.BadFont
	case xproto.MatchError:
		return xproto.BadMatch
	case xproto.DrawableError:
		return xproto.BadDrawable
	case xproto.AccessError:
		return xproto.BadAccess
	case xproto.AllocError:
		return xproto.BadAlloc
	case xproto.ColormapError:
		return xproto.BadColormap
	case xproto.GContextError:
		return xproto.BadGContext
	case xproto.IDChoiceError:
		return xproto.BadIDChoice
	case xproto.NameError:
		return xproto.BadName
	case xproto.LengthError:
		return xproto.BadLength
	case xproto.ImplementationError:
		return xproto.BadImplementation
	default:
		return 0
	}
}
