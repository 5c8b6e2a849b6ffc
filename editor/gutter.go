package editor

import (
	"fmt"
	"strings"
)

// LineNumberWidth returns the line-number gutter width for lineCount.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return LineNumberWidth(m.buf.LineCount())
}

// renderGutter returns the gutter cell for one wrapped row. Only the first row
// of a logical line carries its number.
func (m Model) renderGutter(line int, first, cursorLine bool) string {
	digits := gutterDigits(m.buf.LineCount())
	if !first {
		return m.cfg.Style.LineNum.Render(strings.Repeat(" ", digits)) + m.cfg.Style.Gutter.Render(" ")
	}
	numStyle := m.cfg.Style.LineNum
	if m.focused && cursorLine {
		numStyle = m.cfg.Style.LineNumActive
	}
	return numStyle.Render(fmt.Sprintf("%*d", digits, line+1)) + m.cfg.Style.Gutter.Render(" ")
}
