package buffer

// InsertRune inserts r at the cursor and advances the cursor one logical
// column. A '\n' splits the line like InsertNewline.
func (b *Buffer) InsertRune(r rune) error {
	if r == '\n' {
		return b.InsertNewline()
	}
	line, col, err := b.editPos()
	if err != nil {
		return err
	}
	change := b.beginChange(OpInsertChar, line, col)
	if err := b.insertChar(line, col, r); err != nil {
		return err
	}
	return b.finishEdit(change, line, col+1)
}

// InsertText inserts s at the cursor, splitting lines at '\n'. Carriage
// returns are dropped. The rows are rewrapped once, after the whole text is in.
func (b *Buffer) InsertText(s string) error {
	if s == "" {
		return nil
	}
	line, col, err := b.editPos()
	if err != nil {
		return err
	}
	change := b.beginChange(OpInsertText, line, col)
	for _, r := range s {
		switch r {
		case '\r':
			continue
		case '\n':
			err = b.splitLine(line, col)
			line, col = line+1, 0
		default:
			err = b.insertChar(line, col, r)
			col++
		}
		if err != nil {
			return err
		}
	}
	if !b.wrap.modified {
		return nil
	}
	return b.finishEdit(change, line, col)
}

// InsertNewline splits the logical line at the cursor and moves the cursor to
// the start of the new line.
func (b *Buffer) InsertNewline() error {
	line, col, err := b.editPos()
	if err != nil {
		return err
	}
	change := b.beginChange(OpSplitLine, line, col)
	if err := b.splitLine(line, col); err != nil {
		return err
	}
	return b.finishEdit(change, line+1, 0)
}

// Backspace deletes the rune before the cursor. At the start of a logical line
// the line is joined onto the previous one, which removes it when it is empty.
// At the start of the buffer it does nothing.
func (b *Buffer) Backspace() error {
	line, col, err := b.editPos()
	if err != nil {
		return err
	}
	if line == 0 && col == 0 {
		return nil
	}

	op, nextLine, nextCol := OpDeleteChar, line, col-1
	if col == 0 {
		op, nextLine, nextCol = OpJoinLines, line-1, len(b.lines[line-1])
	}
	change := b.beginChange(op, line, col)
	if _, err := b.deleteChar(line, col); err != nil {
		return err
	}
	return b.finishEdit(change, nextLine, nextCol)
}

// editPos rewraps if needed and returns the cursor's logical position.
func (b *Buffer) editPos() (line, col int, err error) {
	if err := b.ensureWrapped(); err != nil {
		return 0, 0, err
	}
	return b.LogicalCursor()
}

// finishEdit rewraps at the current width and puts the cursor on the logical
// position (line, col).
func (b *Buffer) finishEdit(change changeBuilder, line, col int) error {
	b.version++
	if err := b.Rewrap(b.wrap.width); err != nil {
		return err
	}
	p, err := b.LogicalToWrapped(line, col)
	if err != nil {
		return err
	}
	b.cursor = p
	b.goalCol = -1
	b.commitChange(change)
	return nil
}
