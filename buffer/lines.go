package buffer

import (
	"fmt"
	"slices"
	"strings"
)

// InsertLine inserts content as a new logical line at index pos, shifting the
// following lines down. pos may equal LineCount to append.
func (b *Buffer) InsertLine(content string, pos int) error {
	change := b.beginChange(OpInsertLine, pos, 0)
	if err := b.insertLine(content, pos); err != nil {
		return err
	}
	b.version++
	b.commitChange(change)
	return nil
}

// AppendLine adds content as the last logical line.
func (b *Buffer) AppendLine(content string) error {
	return b.InsertLine(content, len(b.lines))
}

// RemoveLine removes logical line pos. Removing the only line leaves one empty
// line behind.
func (b *Buffer) RemoveLine(pos int) error {
	if pos < 0 || pos >= len(b.lines) {
		return outOfRange("remove line %d of %d", pos, len(b.lines))
	}
	change := b.beginChange(OpRemoveLine, pos, 0)
	if len(b.lines) == 1 {
		b.lines[0] = nil
	} else {
		b.lines = slices.Delete(b.lines, pos, pos+1)
	}
	b.wrap.modified = true
	b.version++
	b.commitChange(change)
	return nil
}

// InsertChar inserts ch into logical line at rune offset col.
func (b *Buffer) InsertChar(line, col int, ch rune) error {
	change := b.beginChange(OpInsertChar, line, col)
	if err := b.insertChar(line, col, ch); err != nil {
		return err
	}
	b.version++
	b.commitChange(change)
	return nil
}

// AppendChar inserts ch at the end of logical line.
func (b *Buffer) AppendChar(line int, ch rune) error {
	if line < 0 || line >= len(b.lines) {
		return outOfRange("append to line %d of %d", line, len(b.lines))
	}
	return b.InsertChar(line, len(b.lines[line]), ch)
}

// DeleteChar applies backspace semantics at (line, col): the rune before col is
// removed, and at col 0 the line is joined onto the previous one. Deleting at
// (0, 0) is a no-op.
func (b *Buffer) DeleteChar(line, col int) error {
	op := OpDeleteChar
	if col == 0 {
		op = OpJoinLines
	}
	change := b.beginChange(op, line, col)
	changed, err := b.deleteChar(line, col)
	if err != nil || !changed {
		return err
	}
	b.version++
	b.commitChange(change)
	return nil
}

// SplitLine breaks logical line at col; the runes from col onwards become a new
// line right after it.
func (b *Buffer) SplitLine(line, col int) error {
	change := b.beginChange(OpSplitLine, line, col)
	if err := b.splitLine(line, col); err != nil {
		return err
	}
	b.version++
	b.commitChange(change)
	return nil
}

func (b *Buffer) insertLine(content string, pos int) error {
	if pos < 0 || pos > len(b.lines) {
		return outOfRange("insert line %d of %d", pos, len(b.lines))
	}
	if strings.ContainsRune(content, '\n') {
		return fmt.Errorf("insert line %d: %w", pos, ErrInvalidText)
	}
	b.lines = slices.Insert(b.lines, pos, []rune(content))
	b.wrap.modified = true
	return nil
}

func (b *Buffer) insertChar(line, col int, ch rune) error {
	if err := b.checkLogical(line, col); err != nil {
		return err
	}
	if ch == '\n' {
		return fmt.Errorf("insert at %d:%d: %w", line, col, ErrInvalidText)
	}
	b.lines[line] = slices.Insert(b.lines[line], col, ch)
	b.wrap.modified = true
	return nil
}

func (b *Buffer) deleteChar(line, col int) (bool, error) {
	if err := b.checkLogical(line, col); err != nil {
		return false, err
	}
	switch {
	case col > 0:
		b.lines[line] = slices.Delete(b.lines[line], col-1, col)
	case line > 0:
		b.lines[line-1] = append(b.lines[line-1], b.lines[line]...)
		b.lines = slices.Delete(b.lines, line, line+1)
	default:
		return false, nil
	}
	b.wrap.modified = true
	return true, nil
}

func (b *Buffer) splitLine(line, col int) error {
	if err := b.checkLogical(line, col); err != nil {
		return err
	}
	tail := slices.Clone(b.lines[line][col:])
	b.lines[line] = b.lines[line][:col]
	b.lines = slices.Insert(b.lines, line+1, tail)
	b.wrap.modified = true
	return nil
}

func (b *Buffer) checkLogical(line, col int) error {
	if line < 0 || line >= len(b.lines) {
		return outOfRange("line %d of %d", line, len(b.lines))
	}
	if col < 0 || col > len(b.lines[line]) {
		return outOfRange("col %d of line %d (len %d)", col, line, len(b.lines[line]))
	}
	return nil
}
