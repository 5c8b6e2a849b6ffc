package buffer

import "sort"

// WrappedToLogicalLine returns the logical line that wrapped row belongs to.
func (b *Buffer) WrappedToLogicalLine(row int) (int, error) {
	if row < 0 || row >= len(b.wrap.segments) {
		return 0, outOfRange("wrapped row %d of %d", row, len(b.wrap.segments))
	}
	return b.wrap.segments[row].Line, nil
}

// WrappedToLogicalCol converts col within wrapped row into a rune offset within
// the row's logical line: the lengths of the earlier rows of the same line plus
// col.
func (b *Buffer) WrappedToLogicalCol(row, col int) (int, error) {
	if row < 0 || row >= len(b.wrap.segments) {
		return 0, outOfRange("wrapped row %d of %d", row, len(b.wrap.segments))
	}
	seg := b.wrap.segments[row]
	if col < 0 || col > seg.Len() {
		return 0, outOfRange("col %d of wrapped row %d (len %d)", col, row, seg.Len())
	}
	// Rows of one line tile it, so the preceding rows add up to seg.Start.
	return seg.Start + col, nil
}

// LogicalToWrapped converts a logical (line, col) into wrapped coordinates.
//
// The end of a row and the start of the next row of the same line name the same
// logical offset; the later row is returned. Only the line's end maps onto the
// end of its last row.
func (b *Buffer) LogicalToWrapped(line, col int) (Pos, error) {
	first, n := b.segmentRun(line)
	if n == 0 {
		return Pos{}, outOfRange("line %d of %d wrapped", line, b.wrappedLogicalCount())
	}
	segs := b.wrap.segments[first : first+n]
	lineLen := segs[n-1].End
	if col < 0 || col > lineLen {
		return Pos{}, outOfRange("col %d of line %d (len %d)", col, line, lineLen)
	}
	for i, seg := range segs {
		if col < seg.End {
			return Pos{Row: first + i, Col: col - seg.Start}, nil
		}
	}
	last := segs[n-1]
	return Pos{Row: first + n - 1, Col: col - last.Start}, nil
}

// LogicalCursor returns the cursor as a logical (line, col).
func (b *Buffer) LogicalCursor() (line, col int, err error) {
	return b.logicalAt(b.cursor)
}

// segmentRun returns the index of the first wrapped row of line and how many
// rows it spans.
func (b *Buffer) segmentRun(line int) (first, n int) {
	segs := b.wrap.segments
	first = sort.Search(len(segs), func(i int) bool { return segs[i].Line >= line })
	for first+n < len(segs) && segs[first+n].Line == line {
		n++
	}
	return first, n
}

func (b *Buffer) wrappedLogicalCount() int {
	if len(b.wrap.segments) == 0 {
		return 0
	}
	return b.wrap.segments[len(b.wrap.segments)-1].Line + 1
}
