package editor

import "github.com/charmbracelet/lipgloss"

// ASCIIBorder draws the frame with plain ASCII so it renders on any terminal.
var ASCIIBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style

	// Border frames the view when Config.Border is set. A style without a
	// border of its own gets ASCIIBorder.
	Border lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Border:        lipgloss.NewStyle().Border(ASCIIBorder).BorderForeground(lipgloss.Color("240")),
	}
}

func (s Style) frame() lipgloss.Style {
	if s.Border.GetBorderStyle() == (lipgloss.Border{}) {
		return s.Border.Border(ASCIIBorder)
	}
	return s.Border
}
