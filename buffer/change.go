package buffer

// Op identifies the kind of operation a Change records.
type Op uint8

const (
	OpInsertLine Op = iota + 1
	OpRemoveLine
	OpInsertChar
	OpInsertText
	OpDeleteChar
	OpJoinLines
	OpSplitLine
	OpMove
)

func (o Op) String() string {
	switch o {
	case OpInsertLine:
		return "insert-line"
	case OpRemoveLine:
		return "remove-line"
	case OpInsertChar:
		return "insert-char"
	case OpInsertText:
		return "insert-text"
	case OpDeleteChar:
		return "delete-char"
	case OpJoinLines:
		return "join-lines"
	case OpSplitLine:
		return "split-line"
	case OpMove:
		return "move"
	default:
		return "unknown"
	}
}

// Change describes the most recent effective operation.
//
// Line and Col are the logical position the operation was applied at. For
// OpMove they are the logical position the cursor moved to.
type Change struct {
	Op            Op
	Line          int
	Col           int
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  Pos
	CursorAfter   Pos
}

type changeBuilder struct {
	op            Op
	line          int
	col           int
	versionBefore uint64
	cursorBefore  Pos
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	return b.lastChange, b.hasLastChange
}

func (b *Buffer) beginChange(op Op, line, col int) changeBuilder {
	return changeBuilder{
		op:            op,
		line:          line,
		col:           col,
		versionBefore: b.version,
		cursorBefore:  b.cursor,
	}
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Op:            cb.op,
		Line:          cb.line,
		Col:           cb.col,
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		CursorBefore:  cb.cursorBefore,
		CursorAfter:   b.cursor,
	}
	b.hasLastChange = true
}
