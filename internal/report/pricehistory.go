package report

import (
	"context"

	"github.com/moneylens-dev/moneylens/internal/model"
	"github.com/moneylens-dev/moneylens/internal/pivot"
	"github.com/moneylens-dev/moneylens/internal/prices"
)

// PriceHistoryOptions parameterize the price-history report.
type PriceHistoryOptions struct {
	Accounts []string
	Currency string
}

// PriceHistory pivots the recorded price history of the selected
// investment accounts into a date × account-name table.
func (s *Service) PriceHistory(ctx context.Context, opts PriceHistoryOptions) (*pivot.Table, error) {
	currency := s.currency(opts.Currency)

	svc, filter, err := s.accountContext(ctx, opts.Accounts)
	if err != nil {
		return nil, err
	}

	priceRows, err := s.source.Prices(ctx, currency)
	if err != nil {
		return nil, err
	}
	history := prices.NewHistory(priceRows, currency)

	var stocks []model.Account
	var cols []string
	for _, r := range svc.All() {
		if r.Type != model.AccountTypeStock || !filter.Match(r.ID) {
			continue
		}
		stocks = append(stocks, r.Account)
		cols = append(cols, r.Name)
	}

	table := pivot.New(cols)
	for _, acct := range stocks {
		for _, p := range history.All() {
			if p.FromID != acct.CurrencyID {
				continue
			}
			table.Set(p.Date.Format(dateLayout), acct.Name, p.Value)
		}
	}
	table.SortRows()
	return table, nil
}
