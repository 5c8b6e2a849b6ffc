package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/softwrap/buffer"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})
	if len(events) != 0 {
		t.Fatalf("events after New: got %d, want %d", len(events), 0)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if got := events[0].Text; got != "ab" {
		t.Fatalf("event text after move: got %q, want %q", got, "ab")
	}
	if got := events[0].Cursor; got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("event cursor after move: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}
	if !events[0].HasChange || events[0].Change.Op != buffer.OpMove {
		t.Fatalf("event change after move: got %+v, want move", events[0].Change)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // to EOL
	if len(events) != 2 {
		t.Fatalf("events after move to EOL: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // no-op at EOL
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 3)
	}
	if got := events[2].Text; got != "abX" {
		t.Fatalf("event text after insert: got %q, want %q", got, "abX")
	}
	if got := events[2].Change.Op; got != buffer.OpInsertChar {
		t.Fatalf("event op after insert: got %v, want %v", got, buffer.OpInsertChar)
	}
}

func TestOnChange_CarriesLogicalCursor(t *testing.T) {
	var last ChangeEvent
	m := New(Config{
		Text:     "hello world",
		Width:    5,
		OnChange: func(ev ChangeEvent) { last = ev },
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := last.Cursor; got != (buffer.Pos{Row: 1, Col: 1}) {
		t.Fatalf("event cursor: got %v, want %v", got, buffer.Pos{Row: 1, Col: 1})
	}
	if last.Line != 0 || last.Col != 7 {
		t.Fatalf("event logical cursor: got (%d,%d), want (0,7)", last.Line, last.Col)
	}
}

func TestOnChange_SeesHostMutations(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text:     "ab",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})

	if err := m.Buffer().AppendLine("cd"); err != nil {
		t.Fatalf("append line: %v", err)
	}
	m, _ = m.Update(nil)
	if len(events) != 1 {
		t.Fatalf("events after host mutation: got %d, want %d", len(events), 1)
	}
	if got := events[0].Change.Op; got != buffer.OpInsertLine {
		t.Fatalf("event op: got %v, want %v", got, buffer.OpInsertLine)
	}
	if got := m.Buffer().WrappedLineCount(); got != 2 {
		t.Fatalf("rows after refresh: got %d, want %d", got, 2)
	}
}
