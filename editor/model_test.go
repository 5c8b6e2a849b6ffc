package editor

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestModel_WindowSizeMsgResizes(t *testing.T) {
	m := New(Config{Text: "a", Border: true})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 12, Height: 5})

	if got := lipgloss.Width(m.View()); got != 12 {
		t.Fatalf("view width: got %d, want %d", got, 12)
	}
	if got := lipgloss.Height(m.View()); got != 5 {
		t.Fatalf("view height: got %d, want %d", got, 5)
	}
}

func TestModel_WrapWidthFollowsViewport(t *testing.T) {
	m := New(Config{Text: "aaaa bbbb"})
	if got := m.buf.Width(); got != defaultWrapWidth {
		t.Fatalf("width before sizing: got %d, want %d", got, defaultWrapWidth)
	}

	m = m.SetSize(6, 3)
	if got := m.buf.Width(); got != 5 {
		t.Fatalf("width at 6 cells: got %d, want %d", got, 5)
	}
	if got := m.buf.WrappedLineCount(); got != 2 {
		t.Fatalf("rows at 6 cells: got %d, want %d", got, 2)
	}

	m = m.SetSize(12, 3)
	if got := m.buf.WrappedLineCount(); got != 1 {
		t.Fatalf("rows at 12 cells: got %d, want %d", got, 1)
	}
}

func TestModel_WrapWidthReservesGutterAndBorder(t *testing.T) {
	m := New(Config{Text: "x", ShowLineNums: true, Border: true})
	m = m.SetSize(20, 5)

	// 20 - 2 (frame) - 2 (gutter) - 1 (caret).
	if got := m.buf.Width(); got != 15 {
		t.Fatalf("wrap width: got %d, want %d", got, 15)
	}

	m = New(Config{Text: "x", Width: 7})
	m = m.SetSize(40, 5)
	if got := m.buf.Width(); got != 7 {
		t.Fatalf("fixed wrap width: got %d, want %d", got, 7)
	}
}

func TestModel_ResizeKeepsLogicalCursor(t *testing.T) {
	m := New(Config{Text: "aaaa bbbb cccc"})
	m = m.SetSize(5, 5) // width 4: "aaaa ", "bbbb ", "cccc"
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	m = m.SetSize(10, 5) // width 9: "aaaa bbbb ", "cccc"
	line, col, err := m.buf.LogicalCursor()
	if err != nil {
		t.Fatalf("logical cursor: %v", err)
	}
	if line != 0 || col != 11 {
		t.Fatalf("logical cursor after resize: got (%d,%d), want (0,11)", line, col)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "one\ntwo\nthree\nfour\nfive",
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(8, 3)

	want := []string{
		"1 one",
		"2 two",
		"3 three",
	}
	if got := viewLines(m); !slices.Equal(got, want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestModel_LogsInputAtDebug(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := New(Config{Text: "hello world", Width: 5, Logger: logger, ReadOnly: true})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	out := logs.String()
	for _, want := range []string{
		`msg=input key=down row=1 col=0 line=0 line_col=6`,
		`msg="input rejected" key=x`,
		`err="editor is read-only"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestModel_SetLayoutRewrapsInPlace(t *testing.T) {
	m := New(Config{Text: "aaaa bbbb cccc"})
	m = m.SetSize(20, 5)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})

	l := m.Layout()
	l.Width = 4
	l.ShowLineNums = true
	l.Border = true
	m = m.SetLayout(l)

	if got := m.buf.Width(); got != 4 {
		t.Fatalf("wrap width: got %d, want %d", got, 4)
	}
	if got := m.buf.WrappedLineCount(); got != 3 {
		t.Fatalf("rows: got %d, want %d", got, 3)
	}
	line, col, err := m.buf.LogicalCursor()
	if err != nil {
		t.Fatalf("logical cursor: %v", err)
	}
	if line != 0 || col != 14 {
		t.Fatalf("logical cursor: got (%d,%d), want (0,14)", line, col)
	}
	if got := lipgloss.Height(m.View()); got != 5 {
		t.Fatalf("view height: got %d, want %d", got, 5)
	}
	if got := m.Layout(); got != l {
		t.Fatalf("layout: got %+v, want %+v", got, l)
	}
}
