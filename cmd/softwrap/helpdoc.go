package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/iw2rmb/softwrap/editor"
)

// helpMarkdown lists every editor binding as a markdown table.
func helpMarkdown(km editor.KeyMap) string {
	var sb strings.Builder
	sb.WriteString("# softwrap\n\n")
	sb.WriteString("Lines wrap at spaces; words longer than the row are split.\n\n")
	sb.WriteString("| Key | Action |\n|---|---|\n")
	for _, group := range km.FullHelp() {
		for _, b := range group {
			h := b.Help()
			fmt.Fprintf(&sb, "| %s | %s |\n", h.Key, h.Desc)
		}
	}
	h := quitKeys.Help()
	fmt.Fprintf(&sb, "| %s | %s |\n", h.Key, h.Desc)
	sb.WriteString("\nPress esc or f1 to return.\n")
	return sb.String()
}

// renderHelp renders the help page for width cells using a glamour standard
// style. It falls back to the raw markdown when rendering fails.
func renderHelp(km editor.KeyMap, style string, width int) string {
	md := helpMarkdown(km)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
