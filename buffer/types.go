package buffer

// Pos points into the wrapped rendering by (row, col) in runes.
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Segment is one wrapped display row: the half-open rune span [Start, End) of
// logical line Line.
//
// Text holds the span as it was when the row was wrapped, including a trailing
// space that hangs past the wrap width. Segments of one logical line are
// contiguous and tile the line exactly.
type Segment struct {
	Line  int
	Start int
	End   int
	Text  string
}

// Len returns the number of runes the segment spans.
func (s Segment) Len() int { return s.End - s.Start }

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
