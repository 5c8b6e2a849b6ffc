package buffer

type Dir int

const (
	DirLeft Dir = iota
	DirRight
	DirUp
	DirDown
	DirHome // start of the display row
	DirEnd  // end of the display row
)

func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirHome:
		return "home"
	case DirEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Cursor returns the cursor in wrapped coordinates.
func (b *Buffer) Cursor() Pos { return b.cursor }

// SetCursor moves the cursor to p, clamped into the current wrapped rows.
func (b *Buffer) SetCursor(p Pos) {
	next := b.clampCursor(p)
	b.goalCol = -1
	if next == b.cursor {
		return
	}
	b.setCursorMoved(next)
}

// Move moves the cursor one step in display coordinates. Up and down move by
// wrapped row, not by logical line, and remember the column they started from
// until the next horizontal move or edit.
func (b *Buffer) Move(d Dir) error {
	if err := b.ensureWrapped(); err != nil {
		return err
	}
	if d != DirUp && d != DirDown {
		b.goalCol = -1
	}
	next := b.moveCursor(b.cursor, d)
	if next == b.cursor {
		return nil
	}
	b.setCursorMoved(next)
	return nil
}

func (b *Buffer) setCursorMoved(next Pos) {
	line, col := 0, 0
	if l, c, err := b.logicalAt(next); err == nil {
		line, col = l, c
	}
	change := b.beginChange(OpMove, line, col)
	b.cursor = next
	b.version++
	b.commitChange(change)
}

func (b *Buffer) moveCursor(p Pos, d Dir) Pos {
	segs := b.wrap.segments
	row, col := p.Row, p.Col
	last := len(segs) - 1

	switch d {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, Col: col - 1}
		}
		if row > 0 {
			return Pos{Row: row - 1, Col: segs[row-1].Len()}
		}
		return p
	case DirRight:
		n := segs[row].Len()
		if col+1 < n {
			return Pos{Row: row, Col: col + 1}
		}
		if row < last {
			return Pos{Row: row + 1, Col: 0}
		}
		if col < n {
			return Pos{Row: row, Col: col + 1}
		}
		return p
	case DirUp, DirDown:
		target := row - 1
		if d == DirDown {
			target = row + 1
		}
		if target < 0 || target > last {
			return p
		}
		if b.goalCol < 0 {
			b.goalCol = col
		}
		return Pos{Row: target, Col: minInt(b.goalCol, segs[target].Len())}
	case DirHome:
		return Pos{Row: row, Col: 0}
	case DirEnd:
		return Pos{Row: row, Col: segs[row].Len()}
	default:
		return p
	}
}

func (b *Buffer) clampCursor(p Pos) Pos {
	segs := b.wrap.segments
	if len(segs) == 0 {
		return Pos{}
	}
	row := clampInt(p.Row, 0, len(segs)-1)
	return Pos{Row: row, Col: clampInt(p.Col, 0, segs[row].Len())}
}

func (b *Buffer) logicalAt(p Pos) (line, col int, err error) {
	line, err = b.WrappedToLogicalLine(p.Row)
	if err != nil {
		return 0, 0, err
	}
	col, err = b.WrappedToLogicalCol(p.Row, p.Col)
	return line, col, err
}

// ensureWrapped brings the wrap cache up to date at the last used width, or at
// Options.Width when the buffer was never wrapped.
func (b *Buffer) ensureWrapped() error {
	w := b.wrap.width
	if w == 0 {
		w = b.opt.Width
	}
	return b.Rewrap(w)
}
