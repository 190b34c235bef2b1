// Package main implements vocab-drill's terminal client: the same drill as
// the web page, run locally in a bubbletea program.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/phrazzld/vocab-drill/internal/config"
	"github.com/phrazzld/vocab-drill/internal/dataset"
	"github.com/phrazzld/vocab-drill/internal/domain/session"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
	"github.com/phrazzld/vocab-drill/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the command-line overrides of the loaded configuration.
type options struct {
	datasetPath string
	groupLimit  int
	seed        int64
	logLevel    string
	logFile     string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "drill",
		Short: "Practice vocabulary flashcards in the terminal",
		Long: `drill shows one word at a time. Reveal its meaning, then say whether
you knew it. Missed words are collected and can be revised on their own.

Keys: space show meaning, k know, d don't know, r revise randomly,
m revise mistakes, q quit.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			l, closeLog, err := openLogger(opts.logFile, cfg.Server.LogLevel)
			if err != nil {
				return err
			}
			defer closeLog()

			controller, err := newController(cfg.Deck)
			if err != nil {
				l.Error("failed to prepare drill", "error", err)
				return err
			}

			p := tea.NewProgram(
				tui.New(controller, l),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("drill program failed: %w", err)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.datasetPath, "dataset", "", "path to a JSON dataset (default: bundled dataset)")
	flags.IntVar(&opts.groupLimit, "groups", session.DefaultGroupLimit, "number of leading dataset groups to revise")
	flags.Int64Var(&opts.seed, "seed", 0, "shuffle seed for a reproducible order (0: random)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file (default: no logs)")

	return cmd
}

// loadConfig loads the shared configuration and applies the flags the user set.
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("dataset") {
		cfg.Deck.DatasetPath = opts.datasetPath
	}
	if flags.Changed("groups") {
		cfg.Deck.GroupLimit = opts.groupLimit
	}
	if flags.Changed("seed") {
		cfg.Deck.Seed = opts.seed
	}
	if flags.Changed("log-level") {
		cfg.Server.LogLevel = opts.logLevel
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLogger returns a JSON logger on path, or a discarding logger when path
// is empty; the terminal belongs to the drill.
func openLogger(path, level string) (*slog.Logger, func(), error) {
	if path == "" {
		return logger.Discard(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger.New(f, level, false), func() { _ = f.Close() }, nil
}

// newController loads the dataset and builds the drill controller.
func newController(deck config.DeckConfig) (*session.Controller, error) {
	ds, err := dataset.Load(deck.DatasetPath, deck.GroupLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return session.NewController(ds, session.NewParams(deck.GroupLimit), session.NewSource(deck.Seed))
}
