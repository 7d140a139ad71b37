package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneylens-dev/moneylens/internal/render"
	"github.com/moneylens-dev/moneylens/internal/report"
)

func newNetWorthCommand(opts *options) *cobra.Command {
	var accountTerms []string
	var minDate, maxDate, format string
	var byYear, withTotal bool

	cmd := &cobra.Command{
		Use:   "networth",
		Short: "Net worth of all accounts at the end of each month or year",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := opts.openService()
			if err != nil {
				return err
			}
			defer closeStore()

			min, err := parseDateFlag("min-date", minDate)
			if err != nil {
				return err
			}
			max, err := parseDateFlag("max-date", maxDate)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("total") {
				withTotal = opts.withTotal
			}

			table, err := svc.NetWorth(cmd.Context(), report.NetWorthOptions{
				Accounts:  accountTerms,
				ByYear:    byYear,
				MinDate:   min,
				MaxDate:   max,
				WithTotal: withTotal,
			})
			if errors.Is(err, report.ErrNoBalances) {
				fmt.Fprintln(cmd.OutOrStdout(), "No balance data for the selected accounts.")
				return nil
			}
			if err != nil {
				return err
			}

			renderer := render.DefaultRegistry().Get(format)
			if renderer == nil {
				return fmt.Errorf("unknown format %q", format)
			}
			return renderer.Render(cmd.OutOrStdout(), table)
		},
	}

	cmd.Flags().StringArrayVar(&accountTerms, "account", nil, "restrict to an account (ID or name); repeatable")
	cmd.Flags().StringVar(&minDate, "min-date", "", "first reported date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&maxDate, "max-date", "", "last reported date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&byYear, "year", false, "yearly instead of monthly buckets")
	cmd.Flags().BoolVar(&withTotal, "total", false, "append a total row (default from config)")
	cmd.Flags().StringVar(&format, "format", "text", "output format (text, csv)")

	return cmd
}
