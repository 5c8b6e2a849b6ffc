package buffer

import (
	"fmt"
	"slices"
	"strings"
)

// Rewrap rebuilds the wrapped rows at width. It is a no-op when nothing changed
// since the last call with the same width.
//
// A width change alone keeps the cursor on the same logical position. After an
// edit the cursor is clamped into the new rows.
func (b *Buffer) Rewrap(width int) error {
	if width <= 0 {
		return fmt.Errorf("rewrap at width %d: %w", width, ErrInvalidWidth)
	}
	if !b.wrap.modified && b.wrap.width == width {
		return nil
	}

	line, col, keep := 0, 0, false
	if !b.wrap.modified && len(b.wrap.segments) > 0 {
		var err error
		line, col, err = b.LogicalCursor()
		keep = err == nil
	}

	segs := make([]Segment, 0, len(b.lines))
	for i, l := range b.lines {
		segs = appendLineSegments(segs, i, l, width)
	}
	b.wrap = wrapCache{segments: segs, width: width}

	if keep {
		if p, err := b.LogicalToWrapped(line, col); err == nil {
			b.cursor = p
			return nil
		}
	}
	b.cursor = b.clampCursor(b.cursor)
	return nil
}

// Width returns the width of the last successful Rewrap, or 0.
func (b *Buffer) Width() int { return b.wrap.width }

// Modified reports whether the lines changed since the last Rewrap.
func (b *Buffer) Modified() bool { return b.wrap.modified }

// WrappedLineCount returns the number of wrapped rows from the last Rewrap.
func (b *Buffer) WrappedLineCount() int { return len(b.wrap.segments) }

// WrappedLineAt returns the display text of wrapped row. A trailing space that
// hangs past the wrap width is not part of the display text.
func (b *Buffer) WrappedLineAt(row int) (string, error) {
	if row < 0 || row >= len(b.wrap.segments) {
		return "", outOfRange("wrapped row %d of %d", row, len(b.wrap.segments))
	}
	return b.displayText(b.wrap.segments[row]), nil
}

// SegmentAt returns the span of wrapped row.
func (b *Buffer) SegmentAt(row int) (Segment, error) {
	if row < 0 || row >= len(b.wrap.segments) {
		return Segment{}, outOfRange("wrapped row %d of %d", row, len(b.wrap.segments))
	}
	return b.wrap.segments[row], nil
}

// Segments returns a copy of the wrapped rows from the last Rewrap.
func (b *Buffer) Segments() []Segment {
	return slices.Clone(b.wrap.segments)
}

// String renders the wrapped rows, each terminated by '\n'.
func (b *Buffer) String() string {
	var sb strings.Builder
	for _, seg := range b.wrap.segments {
		sb.WriteString(b.displayText(seg))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Buffer) displayText(seg Segment) string {
	if seg.Len() <= b.wrap.width {
		return seg.Text
	}
	r := []rune(seg.Text)
	return string(r[:b.wrap.width])
}

// appendLineSegments greedily packs the words of one logical line into rows of
// at most width runes. A word is the run up to and including the next space;
// that trailing space does not count against the width. Words longer than
// width are split hard.
func appendLineSegments(segs []Segment, lineIdx int, line []rune, width int) []Segment {
	first := len(segs)
	for off := 0; off < len(line); {
		end, fit := nextWord(line, off, width)
		last := len(segs) - 1
		if last < first || segs[last].Len()+fit > width {
			segs = append(segs, Segment{Line: lineIdx, Start: off, End: end})
		} else {
			segs[last].End = end
		}
		off = end
	}
	if len(segs) == first {
		segs = append(segs, Segment{Line: lineIdx})
	}
	for i := first; i < len(segs); i++ {
		segs[i].Text = string(line[segs[i].Start:segs[i].End])
	}
	return segs
}

func nextWord(line []rune, off, width int) (end, fit int) {
	end = len(line)
	if i := slices.Index(line[off:], ' '); i >= 0 {
		end = off + i + 1
	}
	fit = end - off
	if line[end-1] == ' ' {
		fit--
	}
	if fit > width {
		return off + width, width
	}
	return end, fit
}
