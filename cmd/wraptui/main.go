// Command wraptui scrolls a large grid of numbered items in the terminal.
// When stdout is not a terminal it prints one screen and exits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/go-theft-auto/wrapped"
	"github.com/go-theft-auto/wrapped/backend/tui"
	"github.com/go-theft-auto/wrapped/internal/config"
)

// Size used for the static dump when stdout is not a terminal.
const (
	dumpWidth  = 80
	dumpHeight = 24
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", config.DefaultPath(), "TOML config file")
	items := flag.Int("items", 0, "number of items (overrides config)")
	columns := flag.Int("columns", 0, "items per row (overrides config)")
	buffer := flag.Float64("buffer", -1, "prefetch lines beyond the slack (overrides config)")
	logFile := flag.String("log", "", "write logs to this file (overrides config)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *items > 0 {
		cfg.Items = *items
	}
	if *columns > 0 {
		cfg.Columns = *columns
	}
	if *buffer >= 0 {
		cfg.Buffer = float32(*buffer)
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	wrapped.SetVerbose(cfg.Verbose || *verbose)
	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	data := make([]int, cfg.Items)
	for i := range data {
		data[i] = i
	}
	layout, err := wrapped.NewLayout(data, cfg.Columns, wrapped.FixedHeight[int](float32(cfg.RowLines)))
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	m, err := tui.New(layout, func(item, _ int) string {
		return fmt.Sprintf("item %d", item)
	}, wrapped.WithBuffer(cfg.Buffer))
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		m.Resize(dumpWidth, dumpHeight)
		fmt.Println(m.View())
		return nil
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	s := m.Window().Stats()
	slog.Info("done", "observations", s.Observations, "queries", s.Queries, "updates", s.Updates)
	return nil
}

// setupLogging routes both the package logger and the default slog logger to
// path, or discards logs when path is empty so they never draw over the UI.
func setupLogging(path string) (func(), error) {
	opts := &slog.HandlerOptions{Level: wrapped.LogLevel()}
	if path == "" {
		l := slog.New(slog.DiscardHandler)
		wrapped.SetLogger(l)
		slog.SetDefault(l)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := slog.New(slog.NewTextHandler(f, opts))
	wrapped.SetLogger(l)
	slog.SetDefault(l)
	return func() { f.Close() }, nil
}
