package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAccountsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List accounts with their qualified names",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := opts.openService()
			if err != nil {
				return err
			}
			defer closeStore()

			resolved, err := svc.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tCURRENCY\tNAME")
			for _, acct := range resolved {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", acct.ID, acct.Type, acct.CurrencyID, acct.QualifiedName)
			}
			return w.Flush()
		},
	}
}
