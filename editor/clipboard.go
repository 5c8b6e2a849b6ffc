package editor

// Clipboard provides editor-level clipboard integration.
//
// Read errors are logged and otherwise ignored.
type Clipboard interface {
	ReadText() (string, error)
}
