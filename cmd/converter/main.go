// Command converter answers natural-language unit conversion requests such as
// "100 celsius to fahrenheit", either interactively or one request at a time.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/couchcryptid/unit-converter/internal/domain"
	"github.com/couchcryptid/unit-converter/internal/observability"
	"github.com/spf13/cobra"
)

var (
	logLevel    string
	logFormat   string
	historyFile string

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "converter",
	Short: "Convert lengths, weights and temperatures",
	Long: `converter answers requests of the form "<number> <unit> <word> <unit>",
for example "100 celsius to fahrenheit" or "12 in to cm".

Run without arguments to start the interactive prompt. Type exit or press
Ctrl+D to quit.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger = observability.NewWriterLogger(cmd.ErrOrStderr(), logLevel, logFormat)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runInteractive(cmd.OutOrStdout(), cmd.ErrOrStderr(), historyFile, logger)
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <request...>",
	Short: "Answer a single conversion request",
	Long: `convert answers one request and exits. Arguments are taken verbatim and
joined with spaces, so negative amounts need no escaping.`,
	Example: `  converter convert 100 c to f
  converter convert -40 celsius to fahrenheit
  converter convert "3 feet to yards"`,
	// Flag parsing would read a leading negative amount as a shorthand flag.
	DisableFlagParsing: true,
	Args:               cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
			return cmd.Help()
		}
		input := strings.Join(args, " ")
		response, err := domain.Handle(input)
		if err != nil {
			logger.Debug("request failed", "input", input, "error", err)
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), response)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	rootCmd.Flags().StringVar(&historyFile, "history", "", "file to load and save interactive history")

	rootCmd.AddCommand(convertCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
