package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/moneylens-dev/moneylens/internal/render"
	"github.com/moneylens-dev/moneylens/internal/report"
)

func newLedgerCommand(opts *options) *cobra.Command {
	var accountTerms []string
	var minDate, maxDate string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Transactions of an account, KMyMoney ledger style",
		Long: `ledger lists the transactions of the selected accounts. Amounts are
reported both in the account's own currency (euros for a checking
account, shares for a stock) and valued in the report currency using
historical prices.

A transaction split over several categories produces one line per
category, all with the same balance.`,
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

			rows, err := svc.Ledger(cmd.Context(), report.LedgerOptions{
				Accounts: accountTerms,
				MinDate:  min,
				MaxDate:  max,
			})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "date\taccount\tpayee\tcategory\tC\tshares\tbalance shares\tprice\tpayment\tdeposit\tbalance")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.Date.Format("2006-01-02"),
					r.AccountName,
					r.Payee,
					r.Category,
					r.Reconcile,
					r.Shares.StringFixed(2),
					r.BalanceShares.StringFixed(2),
					render.FormatAmount(r.PricePerShare),
					render.FormatAmount(r.Payment),
					render.FormatAmount(r.Deposit),
					render.FormatAmount(r.Balance),
				)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringArrayVar(&accountTerms, "account", nil, "restrict to an account (ID or name); repeatable")
	cmd.Flags().StringVar(&minDate, "min-date", "", "first reported date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&maxDate, "max-date", "", "last reported date (YYYY-MM-DD)")

	return cmd
}
