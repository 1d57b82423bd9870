// Package xcursor creates cursors from the core X cursor font.
//
// Forked from https://github.com/BurntSushi/xgbutil/blob/master/xcursor/xcursor.go
package xcursor

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Glyphs of the cursor font. Each mask glyph is the next index.
const (
	XCursor  = 0
	Fleur    = 52
	LeftPtr  = 68
	Sizing   = 120
	Watch    = 150
	XTerm    = 152
	fontName = "cursor"
)

// CreateCursor creates a white on black cursor from glyph.
func CreateCursor(x *xgb.Conn, glyph uint16) (xproto.Cursor, error) {
	return CreateCursorColor(x, glyph, 0xffff, 0xffff, 0xffff, 0, 0, 0)
}

func CreateCursorColor(x *xgb.Conn, glyph, foreRed, foreGreen,
	foreBlue, backRed, backGreen, backBlue uint16) (xproto.Cursor, error) {

	fontID, err := xproto.NewFontId(x)
	if err != nil {
		return 0, err
	}

	cursorID, err := xproto.NewCursorId(x)
	if err != nil {
		return 0, err
	}

	if err := xproto.OpenFontChecked(x, fontID, uint16(len(fontName)), fontName).Check(); err != nil {
		return 0, err
	}
	defer xproto.CloseFont(x, fontID)

	if err := xproto.CreateGlyphCursorChecked(x, cursorID, fontID, fontID,
		glyph, glyph+1,
		foreRed, foreGreen, foreBlue,
		backRed, backGreen, backBlue).Check(); err != nil {
		return 0, err
	}

	return cursorID, nil
}
