package editor

import "log/slog"

// wrapWidth is the width the buffer is wrapped at. One cell past the text is
// kept free for the caret at the end of a full row.
func (m Model) wrapWidth() int {
	if m.cfg.Width > 0 {
		return m.cfg.Width
	}
	if m.viewport.Width <= 0 {
		return defaultWrapWidth
	}
	return max(m.viewport.Width-m.gutterWidth()-1, 1)
}

// refresh rewraps the buffer, rebuilds the viewport content and scrolls the
// cursor row into view.
func (m *Model) refresh() {
	if err := m.buf.Rewrap(m.wrapWidth()); err != nil {
		m.log.Warn("rewrap failed", slog.Int("width", m.wrapWidth()), slog.Any("err", err))
	}
	m.rebuildContent()
	m.followCursor()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	cur := m.buf.Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}
