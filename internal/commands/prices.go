package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneylens-dev/moneylens/internal/render"
	"github.com/moneylens-dev/moneylens/internal/report"
)

func newPricesCommand(opts *options) *cobra.Command {
	var accountTerms []string
	var format string

	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Price history of investment accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := opts.openService()
			if err != nil {
				return err
			}
			defer closeStore()

			table, err := svc.PriceHistory(cmd.Context(), report.PriceHistoryOptions{
				Accounts: accountTerms,
			})
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
	cmd.Flags().StringVar(&format, "format", "text", "output format (text, csv)")

	return cmd
}
