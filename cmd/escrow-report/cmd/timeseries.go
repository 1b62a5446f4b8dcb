package cmd

import (
	"time"

	"escrow-dashboard/internal/services"

	"github.com/spf13/cobra"
)

func newTimeSeriesCommand(opts *rootOptions) *cobra.Command {
	filters := &filterFlags{}
	var (
		unit       string
		cumulative bool
	)

	cmd := &cobra.Command{
		Use:     "timeseries",
		Aliases: []string{"ts"},
		Short:   "Monthly inflow per object",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := filters.filterState()
			if err != nil {
				return err
			}
			state.Cumulative = cumulative

			amountUnit, err := services.ParseAmountUnit(unit)
			if err != nil {
				return err
			}

			rows, err := loadRows(cmd, opts.input)
			if err != nil {
				return err
			}

			rules := services.DefaultLayoutRules()
			report := services.BuildTimeSeriesReport(rows, state, amountUnit, rules, time.Now())
			out := cmd.OutOrStdout()

			if opts.asJSON {
				return writeJSON(out, report)
			}

			header := append([]string{"Месяц"}, report.Objects...)
			divisor := amountUnit.Divisor()

			table := make([][]string, 0, len(report.Points))
			for _, p := range report.Points {
				line := make([]string, 0, len(header))
				line = append(line, services.TickLabel(p.Month, len(report.Points), rules))
				for _, obj := range report.Objects {
					line = append(line, p.Value(obj).Div(divisor).Round(2).String())
				}
				table = append(table, line)
			}

			return renderTable(out, header, table)
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVar(&unit, "unit", string(services.UnitMillions), "value scale: rub, thousands or millions")
	cmd.Flags().BoolVar(&cumulative, "cumulative", false, "running totals instead of monthly sums")
	return cmd
}
