package editor

import (
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/softwrap/buffer"
)

// screenToPos maps viewport-local cell coordinates to a wrapped position.
//
// (0,0) is the top-left of the content region, inside the border. Gutter
// clicks map to the start of the row and x/y are clamped into the rows.
func (m Model) screenToPos(x, y int) buffer.Pos {
	n := m.buf.WrappedLineCount()
	if n == 0 {
		return buffer.Pos{}
	}
	row := clampInt(m.viewport.YOffset+y, 0, n-1)
	_, text, ok := m.rowText(row)
	if !ok {
		return buffer.Pos{}
	}
	x -= m.gutterWidth()
	if x <= 0 {
		return buffer.Pos{Row: row}
	}
	return buffer.Pos{Row: row, Col: colForCell(text, x)}
}

// colForCell returns the rune column under terminal cell x of text. Cells past
// the end map to the end.
func colForCell(text string, x int) int {
	cell, col := 0, 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if x < cell+w {
			return col
		}
		cell += w
		col++
	}
	return col
}

// CursorScreenPos maps the cursor to viewport-local cell coordinates.
//
// ok is false when the cursor row is scrolled out of view.
func (m Model) CursorScreenPos() (x, y int, ok bool) {
	cur := m.buf.Cursor()
	_, text, found := m.rowText(cur.Row)
	if !found {
		return 0, 0, false
	}
	rs := []rune(text)
	col := clampInt(cur.Col, 0, len(rs))
	x = m.gutterWidth() + runewidth.StringWidth(string(rs[:col]))
	y = cur.Row - m.viewport.YOffset
	if y < 0 || y >= m.viewport.Height {
		return x, y, false
	}
	return x, y, true
}
