// Command reformat rewrites the Latin conjugation table of a saved
// Wiktionary page into the improved view.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	// Use a minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:], surveyPrompter{}); err != nil {
		if exitErr, ok := err.(*exitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// exitError is an error carrying the process exit code.
type exitError struct {
	Code    int
	Message string
}

func (e *exitError) Error() string {
	return e.Message
}

const (
	exitFailure  = 1
	exitUsage    = 2
	exitNotFound = 3
)

func usageError(format string, args ...any) error {
	return &exitError{Code: exitUsage, Message: fmt.Sprintf(format, args...)}
}
