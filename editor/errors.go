package editor

import "errors"

var errReadOnly = errors.New("editor is read-only")
