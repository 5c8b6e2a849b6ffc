package editor

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/softwrap/buffer"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer
	log *slog.Logger

	focused bool

	viewport viewport.Model
	// Outer size as last passed to SetSize.
	width, height int

	lastBufVersion uint64
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{Width: cfg.Width}),
		log:      cfg.Logger,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.refresh()
	m.lastBufVersion = m.buf.Version()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the outer size of the component, border included.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	if m.cfg.Border {
		frame := m.cfg.Style.frame()
		width -= frame.GetHorizontalFrameSize()
		height -= frame.GetVerticalFrameSize()
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.refresh()
	return m
}

func (m Model) Layout() Layout {
	return Layout{
		Width:        m.cfg.Width,
		ShowLineNums: m.cfg.ShowLineNums,
		Border:       m.cfg.Border,
		TabWidth:     m.cfg.TabWidth,
	}
}

// SetLayout replaces the layout options and rewraps at the current size. The
// cursor keeps its logical position.
func (m Model) SetLayout(l Layout) Model {
	m.cfg.Width = max(l.Width, 0)
	m.cfg.ShowLineNums = l.ShowLineNums
	m.cfg.Border = l.Border
	if l.TabWidth > 0 {
		m.cfg.TabWidth = l.TabWidth
	}
	return m.SetSize(m.width, m.height)
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.refresh()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.refresh()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
		// Wheel scrolling moves the viewport away from the cursor on purpose.
		m.rebuildContent()
		m.emitChange()
		return m, cmd
	}
	// The host may have mutated the buffer directly.
	m.refresh()
	m.emitChange()
	return m, cmd
}

func (m Model) View() string {
	v := m.viewport.View()
	if m.cfg.Border {
		return m.cfg.Style.frame().Render(v)
	}
	return v
}

func (m *Model) emitChange() {
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return
	}
	m.lastBufVersion = ver
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
}
