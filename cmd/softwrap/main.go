package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/iw2rmb/softwrap"
	"github.com/iw2rmb/softwrap/editor"
	"github.com/iw2rmb/softwrap/internal/config"
	"github.com/iw2rmb/softwrap/internal/logging"
)

const greeting = "Welcome to softwrap.\n\n" +
	"Long lines wrap at word boundaries and follow the terminal width when it changes. " +
	"Arrows move by display row, home and end jump within the row.\n\n" +
	"F1 shows the key bindings. Ctrl+Q quits."

var (
	quitKeys   = key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit"))
	helpKeys   = key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help"))
	closeHelp  = key.NewBinding(key.WithKeys("esc", "f1"))
	statusNote = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusErr  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// configMsg carries a reloaded config file into the program.
type configMsg struct {
	cfg config.Config
	err error
}

type eventState struct {
	count int
	last  editor.ChangeEvent
}

func (s *eventState) handleChange(ev editor.ChangeEvent) {
	s.count++
	s.last = ev
}

type model struct {
	editor editor.Model
	help   help.Model
	keys   editor.KeyMap
	events *eventState
	log    *slog.Logger

	// widthFlag overrides editor.width from reloaded configs when >= 0.
	widthFlag int
	helpStyle string
	showHelp  bool
	width     int
	height    int
	note      string
	noteErr   bool
}

func newModel(cfg config.Config, text string, widthFlag int, logger *slog.Logger) model {
	state := &eventState{}
	keys := editor.DefaultKeyMap()
	ed := editor.New(editor.Config{
		Text:         text,
		Width:        cfg.Editor.Width,
		ShowLineNums: cfg.Editor.LineNumbers,
		Border:       cfg.Editor.Border,
		TabWidth:     cfg.Editor.TabWidth,
		Style:        editor.DefaultStyle(),
		KeyMap:       keys,
		Logger:       logger,
		OnChange:     state.handleChange,
	})
	return model{
		editor:    ed,
		help:      help.New(),
		keys:      keys,
		events:    state,
		log:       logger,
		widthFlag: widthFlag,
		helpStyle: "dark",
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, editorHeight(msg.Height))
		return m, nil
	case configMsg:
		return m.applyConfig(msg), nil
	case tea.KeyMsg:
		if key.Matches(msg, quitKeys) {
			return m, tea.Quit
		}
		if m.showHelp {
			if key.Matches(msg, closeHelp) {
				m.showHelp = false
			}
			return m, nil
		}
		if key.Matches(msg, helpKeys) {
			m.showHelp = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) applyConfig(msg configMsg) model {
	if msg.err != nil {
		m.log.Warn("config reload failed", slog.Any("err", msg.err))
		m.note, m.noteErr = msg.err.Error(), true
		return m
	}
	l := editor.Layout{
		Width:        msg.cfg.Editor.Width,
		ShowLineNums: msg.cfg.Editor.LineNumbers,
		Border:       msg.cfg.Editor.Border,
		TabWidth:     msg.cfg.Editor.TabWidth,
	}
	if m.widthFlag >= 0 {
		l.Width = m.widthFlag
	}
	m.editor = m.editor.SetLayout(l)
	m.log.Info("config reloaded", slog.Int("width", l.Width), slog.Bool("line_numbers", l.ShowLineNums))
	m.note, m.noteErr = "config reloaded", false
	return m
}

func (m model) View() string {
	if m.showHelp {
		return renderHelp(m.keys, m.helpStyle, m.width)
	}
	return m.editor.View() + "\n" + m.status() + "\n" + m.help.View(m.keys)
}

func (m model) status() string {
	buf := m.editor.Buffer()
	line, col, err := buf.LogicalCursor()
	if err != nil {
		return statusErr.Render(err.Error())
	}
	cur := buf.Cursor()
	fields := []string{
		fmt.Sprintf("Ln %d, Col %d", line+1, col+1),
		fmt.Sprintf("row %d:%d", cur.Row, cur.Col),
		fmt.Sprintf("wrap %d", buf.Width()),
		fmt.Sprintf("edits %d", m.events.count),
	}
	if m.events.count > 0 {
		fields = append(fields, fmt.Sprintf("v%d", m.events.last.Version))
	}
	s := statusNote.Render(strings.Join(fields, "  "))
	if m.note != "" {
		st := statusNote
		if m.noteErr {
			st = statusErr
		}
		s += "  " + st.Render(m.note)
	}
	return s
}

// editorHeight leaves room for the status and help lines.
func editorHeight(total int) int {
	return max(total-2, 0)
}

// initialText reads piped stdin, or returns the greeting when stdin is a
// terminal.
func initialText(stdin *os.File) (text string, piped bool, err error) {
	if term.IsTerminal(int(stdin.Fd())) {
		return greeting, false, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", true, fmt.Errorf("read stdin: %w", err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), true, nil
}

func main() {
	var (
		configPath = flag.String("config", "softwrap.yaml", "path to the YAML config file")
		logPath    = flag.String("log", "", "debug log file (overrides log.path)")
		width      = flag.Int("width", -1, "fixed wrap width, 0 follows the terminal (overrides editor.width)")
		version    = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(softwrap.Banner())
		return
	}

	if err := run(*configPath, *logPath, *width); err != nil {
		fmt.Fprintf(os.Stderr, "softwrap: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string, width int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logPath != "" {
		cfg.Log.Path = logPath
		cfg.Log.Level = "debug"
	}
	if width >= 0 {
		cfg.Editor.Width = width
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	text, piped, err := initialText(os.Stdin)
	if err != nil {
		return err
	}
	logger.Info("starting",
		slog.String("version", softwrap.Version()),
		slog.String("config", configPath),
		slog.Int("width", cfg.Editor.Width),
		slog.Bool("piped", piped),
	)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if piped {
		opts = append(opts, tea.WithInputTTY())
	}
	p := tea.NewProgram(newModel(cfg, text, width, logger), opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if w, err := config.NewWatcher(configPath); err != nil {
		logger.Warn("config watch disabled", slog.Any("err", err))
	} else {
		go w.Run(ctx, func(cfg config.Config, err error) { p.Send(configMsg{cfg: cfg, err: err}) })
	}

	_, err = p.Run()
	return err
}
