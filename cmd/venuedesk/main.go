// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

// venuedesk is a terminal front end for browsing and requesting
// corporate event venues: a composite search row, a result list
// synchronized with a map pane, venue detail drawers, and a mock
// booking flow.
//
// By default it serves the built-in sample catalog. Use --catalog to
// load a YAML catalog file instead. UI preferences (theme variant,
// accent color, marker glyph) load from a JSONC file; see --prefs.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/venuedesk/venuedesk/lib/prefs"
	"github.com/venuedesk/venuedesk/lib/resultsui"
	"github.com/venuedesk/venuedesk/lib/tui"
	"github.com/venuedesk/venuedesk/lib/venue"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var catalogPath string
	var prefsPath string
	var latency time.Duration
	var logOutput string
	var lightTheme bool

	flagSet := pflag.NewFlagSet("venuedesk", pflag.ContinueOnError)
	flagSet.StringVar(&catalogPath, "catalog", "", "path to a YAML venue catalog (default: built-in sample set)")
	flagSet.StringVar(&prefsPath, "prefs", "", "path to a JSONC preferences file (default: the user config directory)")
	flagSet.DurationVar(&latency, "latency", -1, "induced catalog latency; 0 disables, negative keeps the default jitter")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file (in addition to the status bar)")
	flagSet.BoolVar(&lightTheme, "light", false, "use the light theme regardless of terminal background")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	catalog, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}
	if latency >= 0 {
		catalog.SetLatency(latency)
	}

	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	preferences, err := prefs.Load(prefsPath)
	if err != nil {
		return fmt.Errorf("cannot load preferences from %s: %w", prefsPath, err)
	}

	theme := pickTheme(preferences, lightTheme)

	// Logging: the TUI owns the terminal, so records go to the status
	// handler (status bar and log popup) and, with --log-output, to a
	// JSON file for post-mortem debugging.
	statusHandler := resultsui.NewStatusHandler(slog.LevelInfo)
	var logger *slog.Logger
	if logOutput != "" {
		fileHandler, closeFile, fileErr := openFileLogHandler(logOutput)
		if fileErr != nil {
			return fmt.Errorf("cannot open log file %s: %w", logOutput, fileErr)
		}
		defer closeFile()
		logger = slog.New(fanoutHandler{statusHandler, fileHandler})
	} else {
		logger = slog.New(statusHandler)
	}

	model := resultsui.New(catalog, resultsui.Options{
		Theme:         theme,
		CompactLabels: preferences.CompactLabels,
		MarkerGlyph:   preferences.MarkerGlyph,
		Logger:        logger,
		Status:        statusHandler,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	return err
}

// loadCatalog returns the file-backed catalog, or the sample set when
// no path is given.
func loadCatalog(path string) (*venue.Catalog, error) {
	if path == "" {
		return venue.SampleCatalog(), nil
	}
	catalog, err := venue.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load catalog from %s: %w", path, err)
	}
	return catalog, nil
}

// pickTheme selects dark or light from the terminal background, lets
// --light force the choice, then applies preference overrides.
func pickTheme(preferences prefs.Preferences, forceLight bool) tui.Theme {
	theme := tui.DefaultTheme
	switch {
	case forceLight, preferences.Variant == "light":
		theme = tui.LightTheme
	case preferences.Variant == "dark":
		// Explicit preference; skip detection.
	case !termenv.HasDarkBackground():
		theme = tui.LightTheme
	}
	return preferences.Apply(theme)
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `venuedesk — interactive terminal UI for browsing event venues.

Starts with the built-in sample catalog of Paris-area venues. Use
--catalog to load your own YAML catalog.

Usage:
  venuedesk [flags]

Examples:
  # Browse the sample catalog
  venuedesk

  # Load a custom catalog with no induced latency
  venuedesk --catalog venues.yaml --latency 0

  # Keep a JSON log for debugging
  venuedesk --log-output /tmp/venuedesk.log

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// openFileLogHandler creates a slog.JSONHandler writing to path. The
// file is created or truncated.
func openFileLogHandler(path string) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler sends each record to multiple underlying handlers. A
// record is enabled if any sub-handler is enabled for its level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
