// Package cmd contains the escrow-report commands
package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	input   string
	asJSON  bool
	verbose bool
	logger  *slog.Logger
}

// Execute builds the command tree and runs it against os.Args
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns the escrow-report command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "escrow-report",
		Short: "Escrow account reports from exported rows",
		Long: `escrow-report summarizes escrow account inflows exported as JSON rows
and manages the dashboard database schema.

Example usage:
  escrow-report summary -i rows.json                  # Per-object totals
  escrow-report summary -i rows.json --year 2024      # Totals for one year
  escrow-report timeseries -i rows.json --cumulative  # Running totals per month
  escrow-report migrate --seed                        # Apply migrations and seeds`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(opts.logger)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.input, "input", "i", "-", "JSON file with escrow rows (- for stdin)")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print the report as JSON")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newSummaryCommand(opts),
		newTimeSeriesCommand(opts),
		newMigrateCommand(opts),
	)

	return root
}
