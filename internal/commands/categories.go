package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/moneylens-dev/moneylens/internal/render"
	"github.com/moneylens-dev/moneylens/internal/report"
)

func newCategoriesCommand(opts *options) *cobra.Command {
	var accountTerms []string
	var minDate, maxDate, sortBy, kind string
	var width int

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Payments and deposits summed by category",
		Long: `categories sums payments and deposits per destination category over
the given time range. Categories are not the same as expenses and
income: a reimbursement can deposit money into an expense category,
so both columns are shown.`,
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
			value := report.CategoryValue(sortBy)
			switch value {
			case report.CategoryPayment, report.CategoryDeposit:
			default:
				return fmt.Errorf("--sort-by: must be %q or %q", report.CategoryPayment, report.CategoryDeposit)
			}

			rows, err := svc.Categories(cmd.Context(), report.CategoryOptions{
				Accounts: accountTerms,
				MinDate:  min,
				MaxDate:  max,
				SortBy:   value,
			})
			if err != nil {
				return err
			}

			switch kind {
			case "bar":
				bars := make([]render.Bar, len(rows))
				for i, r := range rows {
					v := r.Payment
					if value == report.CategoryDeposit {
						v = r.Deposit
					}
					bars[i] = render.Bar{Label: r.Category, Value: v}
				}
				return render.BarChart(cmd.OutOrStdout(), bars, width)
			case "table":
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "category\tpayment\tdeposit")
				for _, r := range rows {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Category, r.Payment.StringFixed(2), r.Deposit.StringFixed(2))
				}
				return tw.Flush()
			default:
				return fmt.Errorf("--kind: must be \"table\" or \"bar\"")
			}
		},
	}

	cmd.Flags().StringArrayVar(&accountTerms, "account", nil, "restrict to an account (ID or name); repeatable")
	cmd.Flags().StringVar(&minDate, "min-date", "", "first reported date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&maxDate, "max-date", "", "last reported date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&sortBy, "sort-by", string(report.CategoryPayment), "value column to sort on (payment, deposit)")
	cmd.Flags().StringVar(&kind, "kind", "table", "output kind (table, bar)")
	cmd.Flags().IntVar(&width, "width", 40, "bar chart width in characters")

	return cmd
}
