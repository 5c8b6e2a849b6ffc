package editor

import "log/slog"

const (
	defaultTabWidth  = 4
	defaultWrapWidth = 80
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Width fixes the wrap width. Zero follows the viewport width.
	Width int

	// Rendering options.
	ShowLineNums bool
	Border       bool
	Style        Style

	// TabWidth is the number of spaces a tab key inserts. Zero means 4.
	TabWidth int

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap   KeyMap
	ReadOnly bool

	// Clipboard is optional. Without it the paste binding does nothing.
	Clipboard Clipboard

	// OnChange is called once per Update that changed the buffer version.
	OnChange func(ChangeEvent)

	// Logger receives one debug record per handled input. Nil discards.
	Logger *slog.Logger
}

func normalizeConfig(cfg Config) Config {
	if cfg.Width < 0 {
		cfg.Width = 0
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// Layout holds the Config options that can change while the editor runs.
type Layout struct {
	Width        int
	ShowLineNums bool
	Border       bool
	TabWidth     int
}
