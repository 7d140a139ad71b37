// Package report computes the high-level views over a KMyMoney file:
// net worth over time, account ledgers, category breakdowns, and
// investment price history.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneylens-dev/moneylens/internal/accounts"
	"github.com/moneylens-dev/moneylens/internal/model"
)

// DefaultCurrency is used whenever a report is asked for without an
// explicit currency.
const DefaultCurrency = "EUR"

// DataSource is the read surface of a KMyMoney file. kmm.Store is the
// production implementation; tests use in-memory fakes.
type DataSource interface {
	Accounts(ctx context.Context) ([]model.Account, error)
	Splits(ctx context.Context, filter accounts.Filter) ([]model.Split, error)
	Prices(ctx context.Context, toCurrency string) ([]model.Price, error)
	Payees(ctx context.Context) ([]model.Payee, error)
	Securities(ctx context.Context) ([]model.Security, error)
}

// Settings tune report defaults per file.
type Settings struct {
	// Currency reports fall back to when none is requested.
	Currency string
	// EarliestMonthly / EarliestYearly anchor the net-worth date
	// series; balances accumulate from the beginning of the file, so
	// these must be no later than the file's first transaction.
	EarliestMonthly time.Time
	EarliestYearly  time.Time
	// FeeAccountType is the account type treated as investment fees.
	FeeAccountType model.AccountType
}

// DefaultSettings match the conventions of KMyMoney's own reports.
func DefaultSettings() Settings {
	return Settings{
		Currency:        DefaultCurrency,
		EarliestMonthly: time.Date(2009, time.January, 1, 0, 0, 0, 0, time.UTC),
		EarliestYearly:  time.Date(2009, time.December, 31, 0, 0, 0, 0, time.UTC),
		FeeAccountType:  model.AccountTypeExpense,
	}
}

// Service computes reports from a data source. It is stateless beyond
// the source handle; every report issues its own queries.
type Service struct {
	source   DataSource
	settings Settings
}

// NewService creates a report Service. Zero settings fields fall back
// to DefaultSettings.
func NewService(source DataSource, settings Settings) *Service {
	def := DefaultSettings()
	if settings.Currency == "" {
		settings.Currency = def.Currency
	}
	if settings.EarliestMonthly.IsZero() {
		settings.EarliestMonthly = def.EarliestMonthly
	}
	if settings.EarliestYearly.IsZero() {
		settings.EarliestYearly = def.EarliestYearly
	}
	if settings.FeeAccountType == "" {
		settings.FeeAccountType = def.FeeAccountType
	}
	return &Service{source: source, settings: settings}
}

func (s *Service) currency(requested string) string {
	if requested != "" {
		return requested
	}
	return s.settings.Currency
}

// accountContext loads and resolves the account tree plus the
// account filter the caller asked for.
func (s *Service) accountContext(ctx context.Context, terms []string) (*accounts.Service, accounts.Filter, error) {
	rows, err := s.source.Accounts(ctx)
	if err != nil {
		return nil, accounts.Filter{}, err
	}
	svc, err := accounts.NewService(rows)
	if err != nil {
		return nil, accounts.Filter{}, err
	}
	filter, err := svc.ResolveFilter(terms)
	if err != nil {
		return nil, accounts.Filter{}, err
	}
	return svc, filter, nil
}

// ListAccounts returns every account with its qualified name, sorted
// by qualified name.
func (s *Service) ListAccounts(ctx context.Context) ([]accounts.Resolved, error) {
	svc, _, err := s.accountContext(ctx, nil)
	if err != nil {
		return nil, err
	}
	return svc.All(), nil
}

// payeeNames returns the payee ID to name map.
func (s *Service) payeeNames(ctx context.Context) (map[string]string, error) {
	rows, err := s.source.Payees(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rows))
	for _, p := range rows {
		names[p.ID] = p.Name
	}
	return names, nil
}

// mulNull multiplies a decimal by a nullable decimal, staying null
// when the factor is null.
func mulNull(a decimal.Decimal, b decimal.NullDecimal) decimal.NullDecimal {
	if !b.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: a.Mul(b.Decimal), Valid: true}
}
