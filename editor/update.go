package editor

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/softwrap/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.edit("paste", func() error { return m.buf.InsertText(normalizeNewlines(string(msg.Runes))) })
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.move(msg.String(), buffer.DirLeft)
	case key.Matches(msg, km.Right):
		m.move(msg.String(), buffer.DirRight)
	case key.Matches(msg, km.Up):
		m.move(msg.String(), buffer.DirUp)
	case key.Matches(msg, km.Down):
		m.move(msg.String(), buffer.DirDown)
	case key.Matches(msg, km.Home):
		m.move(msg.String(), buffer.DirHome)
	case key.Matches(msg, km.End):
		m.move(msg.String(), buffer.DirEnd)

	case key.Matches(msg, km.Backspace):
		m.edit(msg.String(), m.buf.Backspace)
	case key.Matches(msg, km.Enter):
		m.edit(msg.String(), m.buf.InsertNewline)
	case key.Matches(msg, km.Tab):
		m.edit(msg.String(), func() error { return m.buf.InsertText(strings.Repeat(" ", m.cfg.TabWidth)) })
	case key.Matches(msg, km.Paste):
		m.pasteClipboard(msg.String())

	default:
		if (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && len(msg.Runes) > 0 && !msg.Alt {
			m.edit(msg.String(), func() error {
				if len(msg.Runes) == 1 {
					return m.buf.InsertRune(msg.Runes[0])
				}
				return m.buf.InsertText(string(msg.Runes))
			})
		}
	}

	return m, nil
}

func (m Model) move(k string, d buffer.Dir) {
	m.logInput(k, m.buf.Move(d))
}

func (m Model) edit(k string, fn func() error) {
	if m.cfg.ReadOnly {
		m.logInput(k, errReadOnly)
		return
	}
	m.logInput(k, fn())
}

func (m Model) pasteClipboard(k string) {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.logInput(k, err)
		return
	}
	if s == "" {
		return
	}
	m.edit(k, func() error { return m.buf.InsertText(normalizeNewlines(s)) })
}

// Normalize newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// logInput records one handled input with the resulting cursor in both
// coordinate systems.
func (m Model) logInput(k string, err error) {
	ctx := context.Background()
	if !m.log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	cur := m.buf.Cursor()
	attrs := []slog.Attr{
		slog.String("key", k),
		slog.Int("row", cur.Row),
		slog.Int("col", cur.Col),
	}
	if line, col, lerr := m.buf.LogicalCursor(); lerr == nil {
		attrs = append(attrs, slog.Int("line", line), slog.Int("line_col", col))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("err", err))
		m.log.LogAttrs(ctx, slog.LevelDebug, "input rejected", attrs...)
		return
	}
	m.log.LogAttrs(ctx, slog.LevelDebug, "input", attrs...)
}
