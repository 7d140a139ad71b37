package report

import (
	"context"
	"time"

	"github.com/moneylens-dev/moneylens/internal/accounts"
	"github.com/moneylens-dev/moneylens/internal/model"
)

// fakeSource is an in-memory DataSource for tests.
type fakeSource struct {
	accounts   []model.Account
	splits     []model.Split
	prices     []model.Price
	payees     []model.Payee
	securities []model.Security
}

func (f *fakeSource) Accounts(ctx context.Context) ([]model.Account, error) {
	return f.accounts, nil
}

func (f *fakeSource) Splits(ctx context.Context, filter accounts.Filter) ([]model.Split, error) {
	var out []model.Split
	for _, s := range f.splits {
		if filter.Match(s.AccountID) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSource) Prices(ctx context.Context, toCurrency string) ([]model.Price, error) {
	var out []model.Price
	for _, p := range f.prices {
		if p.ToID == toCurrency {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeSource) Payees(ctx context.Context) ([]model.Payee, error) {
	return f.payees, nil
}

func (f *fakeSource) Securities(ctx context.Context) ([]model.Security, error) {
	return f.securities, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
