package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/youruser/deckanalyzer/internal/logging"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "deckanalyzer [files...]",
	Short: "Compare decklists: common cards and quantity distribution",
	Long: `deckanalyzer reads decklist text files ("<quantity> <card name>" lines,
main deck first, sideboard after the first blank line) and reports the cards
common to every deck and how often each card is played at each quantity.

Files are compared in the order given. A file that fails to parse is reported
and skipped unless --strict is set.

Examples:
  deckanalyzer lists/*.txt
  deckanalyzer -o out/ a.txt b.txt c.txt
  deckanalyzer --format yaml --qr common.png a.txt b.txt`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		var err error
		logger, err = logging.New(level, true)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runAnalyze,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	addAnalyzeFlags(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
