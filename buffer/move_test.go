package buffer

import (
	"errors"
	"testing"
)

func mustMove(t *testing.T, b *Buffer, d Dir, want Pos) {
	t.Helper()
	if err := b.Move(d); err != nil {
		t.Fatalf("move %v: %v", d, err)
	}
	if got := b.Cursor(); got != want {
		t.Fatalf("cursor after %v: got %v, want %v", d, got, want)
	}
}

func TestMove_LeftWrapsToEndOfPreviousRow(t *testing.T) {
	b := New("abc\ndef", Options{Width: 10})
	mustRewrap(t, b, 10)
	b.SetCursor(Pos{Row: 1, Col: 0})

	mustMove(t, b, DirLeft, Pos{Row: 0, Col: 3})
	mustMove(t, b, DirLeft, Pos{Row: 0, Col: 2})
}

func TestMove_LeftAtBufferStartIsNoOp(t *testing.T) {
	b := New("abc", Options{})
	mustRewrap(t, b, 10)
	v := b.Version()

	mustMove(t, b, DirLeft, Pos{Row: 0, Col: 0})
	if b.Version() != v {
		t.Fatalf("version changed on no-op move: got %d, want %d", b.Version(), v)
	}
}

func TestMove_RightAdvancesToNextRow(t *testing.T) {
	b := New("abc\ndef", Options{})
	mustRewrap(t, b, 10)
	b.SetCursor(Pos{Row: 0, Col: 1})

	mustMove(t, b, DirRight, Pos{Row: 0, Col: 2})
	mustMove(t, b, DirRight, Pos{Row: 1, Col: 0})
	mustMove(t, b, DirRight, Pos{Row: 1, Col: 1})
	mustMove(t, b, DirRight, Pos{Row: 1, Col: 2})
	// The final row may reach its end.
	mustMove(t, b, DirRight, Pos{Row: 1, Col: 3})
	mustMove(t, b, DirRight, Pos{Row: 1, Col: 3})
}

func TestMove_RightCrossesSoftWrap(t *testing.T) {
	b := New("aaaaaa", Options{})
	mustRewrap(t, b, 4)
	b.SetCursor(Pos{Row: 0, Col: 2})

	mustMove(t, b, DirRight, Pos{Row: 0, Col: 3})
	mustMove(t, b, DirRight, Pos{Row: 1, Col: 0})

	line, col, err := b.LogicalCursor()
	if err != nil {
		t.Fatalf("logical cursor: %v", err)
	}
	if line != 0 || col != 4 {
		t.Fatalf("logical cursor: got (%d,%d), want (0,4)", line, col)
	}
}

func TestMove_UpDownByDisplayRowWithStickyColumn(t *testing.T) {
	// Rows: "aaaa ", "bb", "cc".
	b := New("aaaa bb\ncc", Options{})
	mustRewrap(t, b, 4)
	b.SetCursor(Pos{Row: 0, Col: 4})

	mustMove(t, b, DirDown, Pos{Row: 1, Col: 2})
	mustMove(t, b, DirDown, Pos{Row: 2, Col: 2})
	mustMove(t, b, DirDown, Pos{Row: 2, Col: 2})
	mustMove(t, b, DirUp, Pos{Row: 1, Col: 2})
	mustMove(t, b, DirUp, Pos{Row: 0, Col: 4})
	mustMove(t, b, DirUp, Pos{Row: 0, Col: 4})
}

func TestMove_HorizontalMoveResetsStickyColumn(t *testing.T) {
	b := New("aaaa bb\ncc", Options{})
	mustRewrap(t, b, 4)
	b.SetCursor(Pos{Row: 0, Col: 4})

	mustMove(t, b, DirDown, Pos{Row: 1, Col: 2})
	mustMove(t, b, DirLeft, Pos{Row: 1, Col: 1})
	mustMove(t, b, DirUp, Pos{Row: 0, Col: 1})
}

func TestMove_HomeEnd(t *testing.T) {
	b := New("hello world", Options{})
	mustRewrap(t, b, 5)
	b.SetCursor(Pos{Row: 1, Col: 2})

	mustMove(t, b, DirEnd, Pos{Row: 1, Col: 5})
	mustMove(t, b, DirHome, Pos{Row: 1, Col: 0})
}

func TestMove_RequiresWidth(t *testing.T) {
	b := New("abc", Options{})
	if err := b.Move(DirRight); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("move before wrap: got %v, want ErrInvalidWidth", err)
	}

	b = New("abc", Options{Width: 10})
	mustMove(t, b, DirRight, Pos{Row: 0, Col: 1})
	if got := b.Width(); got != 10 {
		t.Fatalf("width: got %d, want %d", got, 10)
	}
}

func TestSetCursor_Clamps(t *testing.T) {
	b := New("ab\ncd", Options{})
	mustRewrap(t, b, 10)

	b.SetCursor(Pos{Row: 99, Col: 99})
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	b.SetCursor(Pos{Row: -1, Col: -1})
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 0}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}
