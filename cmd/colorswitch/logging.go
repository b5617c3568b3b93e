package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// interactiveAnnotation marks commands that own the terminal. Their logs go
// to --log-file or nowhere so the alternate screen stays clean.
const interactiveAnnotation = "interactive"

func isInteractive(cmd *cobra.Command) bool {
	if _, ok := cmd.Annotations[interactiveAnnotation]; ok {
		return true
	}
	f := cmd.Flags().Lookup("tui")
	return f != nil && f.Value.String() == "true"
}

// newLogger builds the process logger and a function that releases it.
func newLogger(level, file string, interactive bool) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var (
		out    io.Writer = os.Stderr
		closer           = func() error { return nil }
	)
	switch {
	case file != "":
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f.Close
	case interactive:
		out = io.Discard
	}

	l := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "colorswitch",
		Level:           lvl,
	})
	return l, closer, nil
}
