package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/unit-converter/internal/domain"
	"github.com/peterh/liner"
)

const (
	prompt       = "Enter what you want to convert (or exit): "
	exitSentinel = "exit"
)

// lineReader is the part of *liner.State the loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// runInteractive starts the prompt with line editing and optional history
// persisted to historyPath.
func runInteractive(out, errOut io.Writer, historyPath string, logger *slog.Logger) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			if _, err := line.ReadHistory(f); err != nil {
				logger.Warn("read history", "path", historyPath, "error", err)
			}
			f.Close()
		}
		defer func() {
			f, err := os.Create(historyPath)
			if err != nil {
				logger.Warn("save history", "path", historyPath, "error", err)
				return
			}
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				logger.Warn("save history", "path", historyPath, "error", err)
			}
		}()
	}

	return loop(line, out, errOut, logger)
}

// loop answers one request per line until the exit sentinel or end of input.
// A malformed number is reported on errOut and does not end the loop.
func loop(r lineReader, out, errOut io.Writer, logger *slog.Logger) error {
	for {
		input, err := r.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		if input == exitSentinel {
			return nil
		}
		if input != "" {
			r.AppendHistory(input)
		}

		response, err := domain.Handle(input)
		if err != nil {
			logger.Debug("request failed", "input", input, "error", err)
			fmt.Fprintf(errOut, "Error: %v\n", err)
			continue
		}
		fmt.Fprint(out, response)
	}
}
