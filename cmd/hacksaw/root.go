package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"example.com/hacksaw/internal/app"
	"example.com/hacksaw/pkg/config"
	"example.com/hacksaw/pkg/logs"
	"example.com/hacksaw/pkg/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("standard input is not a terminal")

// Swapped out by tests.
var (
	isTerminal = term.IsTerminal
	runSession = func(r *app.Runner) error { return r.Run() }
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "hacksaw [file]",
		Short:         "A small terminal text editor",
		Long:          "Hacksaw edits one plain text file in the terminal. Ctrl+S saves, Ctrl+Q quits.",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args)
		},
	}
}

func run(out io.Writer, args []string) error {
	if !isTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}
	render.Version = version

	cfg, err := config.Load(configPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	r, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	r.Logger = newLogger(cfg.Log)

	if len(args) == 1 {
		// a failed open leaves an empty document and a status message
		_ = r.LoadFile(args[0])
	}
	if err := runSession(r); err != nil {
		return err
	}
	fmt.Fprintln(out, app.QuitMessage)
	return nil
}

// configPath returns $HACKSAW_CONFIG or the default location. The first run
// without either writes a default config file there.
func configPath() string {
	if p := os.Getenv("HACKSAW_CONFIG"); p != "" {
		return p
	}
	p := config.DefaultPath()
	if p == "" {
		return ""
	}
	if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
		// If the write fails we continue with the defaults.
		_ = config.WriteDefault(p)
	}
	return p
}

func newLogger(lc config.LogConfig) *logs.Logger {
	if !lc.Enabled && lc.File == "" {
		return logs.Disabled()
	}
	// If we cannot open the requested file, logging stays off silently.
	l, _ := logs.New(lc.File)
	return l
}
