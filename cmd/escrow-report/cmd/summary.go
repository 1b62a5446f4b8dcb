package cmd

import (
	"strconv"
	"time"

	"escrow-dashboard/internal/services"

	"github.com/spf13/cobra"
)

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	filters := &filterFlags{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Total inflow and document count per object",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := filters.filterState()
			if err != nil {
				return err
			}

			rows, err := loadRows(cmd, opts.input)
			if err != nil {
				return err
			}
			opts.logger.Debug("rows loaded", "count", len(rows))

			report := services.BuildSummaryReport(rows, state, time.Now())
			out := cmd.OutOrStdout()

			if opts.asJSON {
				return writeJSON(out, report)
			}

			table := make([][]string, 0, len(report.Rows)+1)
			for _, line := range report.Rows {
				table = append(table, []string{
					line.ObjectName,
					strconv.Itoa(line.DocumentCount),
					line.TotalFormatted,
				})
			}
			table = append(table, []string{
				"Итого",
				strconv.Itoa(report.DocumentCount),
				report.GrandTotalFormatted,
			})

			return renderTable(out, []string{"Объект", "Документов", "Сумма"}, table)
		},
	}

	filters.register(cmd)
	return cmd
}
