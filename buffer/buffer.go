package buffer

import "strings"

type Options struct {
	// Width is the wrap width used by cursor edits until Rewrap is called
	// explicitly. Zero leaves the buffer unwrapped until then.
	Width int
}

type wrapCache struct {
	segments []Segment
	modified bool
	width    int
}

// Buffer owns the logical lines, the wrap cache derived from them, and a cursor
// expressed in wrapped coordinates.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	lines   [][]rune
	version uint64

	wrap    wrapCache
	cursor  Pos
	goalCol int

	opt Options

	lastChange    Change
	hasLastChange bool
}

// New creates a buffer holding text. Text is split into logical lines at '\n';
// an empty text yields exactly one empty line.
func New(text string, opt Options) *Buffer {
	return &Buffer{
		lines:   splitLines(text),
		wrap:    wrapCache{modified: true},
		goalCol: -1,
		opt:     opt,
	}
}

// Text returns the logical lines joined with '\n'.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Version increases on every effective edit or cursor move.
func (b *Buffer) Version() uint64 { return b.version }

// LineCount returns the number of logical lines. It is never less than one.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns logical line i.
func (b *Buffer) Line(i int) (string, error) {
	if i < 0 || i >= len(b.lines) {
		return "", outOfRange("line %d of %d", i, len(b.lines))
	}
	return string(b.lines[i]), nil
}

// Lines returns a copy of all logical lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = string(line)
	}
	return out
}

func (b *Buffer) lineLen(i int) int {
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return len(b.lines[i])
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
