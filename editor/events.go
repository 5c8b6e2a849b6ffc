package editor

import "github.com/iw2rmb/softwrap/buffer"

// ChangeEvent describes the buffer state after an Update that changed it.
type ChangeEvent struct {
	Version uint64

	// Cursor is in wrapped coordinates; Line and Col are its logical position.
	Cursor    buffer.Pos
	Line, Col int

	// Change is the last recorded buffer operation, when there is one.
	Change    buffer.Change
	HasChange bool

	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Text:    b.Text(),
	}
	if line, col, err := b.LogicalCursor(); err == nil {
		ev.Line, ev.Col = line, col
	}
	ev.Change, ev.HasChange = b.LastChange()
	return ev
}
