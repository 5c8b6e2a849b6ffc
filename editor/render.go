package editor

import (
	"strings"

	"github.com/iw2rmb/softwrap/buffer"
)

func (m *Model) renderContent() string {
	segs := m.buf.Segments()
	if len(segs) == 0 {
		return ""
	}

	cursor := m.buf.Cursor()
	cursorLine := -1
	if cursor.Row >= 0 && cursor.Row < len(segs) {
		cursorLine = segs[cursor.Row].Line
	}

	out := make([]string, 0, len(segs))
	for row, seg := range segs {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			sb.WriteString(m.renderGutter(seg.Line, seg.Start == 0, seg.Line == cursorLine))
		}
		text, _ := m.buf.WrappedLineAt(row)
		if m.focused && row == cursor.Row {
			sb.WriteString(m.renderCursorRow(text, cursor.Col))
		} else {
			sb.WriteString(m.cfg.Style.Text.Render(text))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderCursorRow renders text with the caret on col. A caret past the
// visible text sits on a blank cell right after it.
func (m *Model) renderCursorRow(text string, col int) string {
	rs := []rune(text)
	col = clampInt(col, 0, len(rs))

	var sb strings.Builder
	if col > 0 {
		sb.WriteString(m.cfg.Style.Text.Render(string(rs[:col])))
	}
	if col < len(rs) {
		sb.WriteString(m.cfg.Style.Cursor.Render(string(rs[col])))
		if col+1 < len(rs) {
			sb.WriteString(m.cfg.Style.Text.Render(string(rs[col+1:])))
		}
		return sb.String()
	}
	sb.WriteString(m.cfg.Style.Cursor.Render(" "))
	return sb.String()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rowText returns the span and display text of a wrapped row.
func (m Model) rowText(row int) (buffer.Segment, string, bool) {
	seg, err := m.buf.SegmentAt(row)
	if err != nil {
		return buffer.Segment{}, "", false
	}
	text, _ := m.buf.WrappedLineAt(row)
	return seg, text, true
}
