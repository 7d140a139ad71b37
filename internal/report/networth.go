package report

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneylens-dev/moneylens/internal/fraction"
	"github.com/moneylens-dev/moneylens/internal/ledger"
	"github.com/moneylens-dev/moneylens/internal/model"
	"github.com/moneylens-dev/moneylens/internal/pivot"
	"github.com/moneylens-dev/moneylens/internal/prices"
)

// ErrNoBalances is returned when no selected account has any balance
// data in the file at all.
var ErrNoBalances = errors.New("networth: no balance data for any account")

const dateLayout = "2006-01-02"

// NetWorthOptions parameterize the net-worth report.
type NetWorthOptions struct {
	// Accounts filters by ID, leaf name, or qualified name.
	Accounts []string
	Currency string
	// ByYear switches from monthly to yearly buckets.
	ByYear bool
	// MinDate drops columns before it (after forward-filling, so past
	// balances still carry in). Inclusive.
	MinDate time.Time
	// MaxDate is the end of the reported range, inclusive. Defaults
	// to today.
	MaxDate time.Time
	// WithTotal appends a row summing all accounts per column.
	WithTotal bool
}

// NetWorth computes the balance of every asset, liability, and stock
// account at the end of each month (or year), valued in the report
// currency with prices as of each bucket date. Rows are qualified
// account names, columns are bucket dates; buckets without
// transactions repeat the last known balance.
func (s *Service) NetWorth(ctx context.Context, opts NetWorthOptions) (*pivot.Table, error) {
	currency := s.currency(opts.Currency)
	maxDate := opts.MaxDate
	if maxDate.IsZero() {
		maxDate = time.Now().UTC()
	}

	svc, filter, err := s.accountContext(ctx, opts.Accounts)
	if err != nil {
		return nil, err
	}

	// Accounts whose balances constitute net worth: everything but
	// the income/expense categories and equity placeholders.
	var selected []string
	excluded := map[model.AccountType]bool{
		model.AccountTypeIncome:  true,
		model.AccountTypeExpense: true,
		model.AccountTypeEquity:  true,
	}
	candidates := make(map[string]bool)
	for _, r := range svc.All() {
		if excluded[r.Type] || !filter.Match(r.ID) {
			continue
		}
		selected = append(selected, r.ID)
		candidates[r.ID] = true
	}

	start, step, bucketFmt := s.settings.EarliestMonthly, stepMonth, "2006-01"
	if opts.ByYear {
		start, step, bucketFmt = s.settings.EarliestYearly, stepYear, "2006"
	}
	var cols []string
	for d := start; !d.After(maxDate); d = step(d) {
		cols = append(cols, d.Format(dateLayout))
	}

	splits, err := s.source.Splits(ctx, filter)
	if err != nil {
		return nil, err
	}
	ledger.SortSplits(splits)

	// Last running balance per (account, bucket).
	lastBalance := make(map[string]map[string]decimal.Decimal)
	running := make(map[string]decimal.Decimal)
	for _, sp := range splits {
		if !candidates[sp.AccountID] {
			continue
		}
		bal := running[sp.AccountID].Add(fraction.DecodeOrZero(sp.Shares))
		running[sp.AccountID] = bal
		if sp.PostDate.After(maxDate) {
			continue
		}
		bucket := sp.PostDate.Format(bucketFmt)
		if lastBalance[sp.AccountID] == nil {
			lastBalance[sp.AccountID] = make(map[string]decimal.Decimal)
		}
		lastBalance[sp.AccountID][bucket] = bal
	}

	balances := pivot.New(cols)
	for _, accountID := range selected {
		r, _ := svc.Get(accountID)
		balances.AddRow(r.QualifiedName)
		perBucket := lastBalance[accountID]
		for _, col := range cols {
			d, _ := time.Parse(dateLayout, col)
			if bal, ok := perBucket[d.Format(bucketFmt)]; ok {
				balances.Set(r.QualifiedName, col, bal)
			}
		}
	}
	if balances.IsEmpty() {
		return nil, ErrNoBalances
	}

	// No transaction in a bucket means the balance is unchanged.
	balances.ForwardFill()

	priceRows, err := s.source.Prices(ctx, currency)
	if err != nil {
		return nil, err
	}
	history := prices.NewHistory(priceRows, currency)

	// Value each balance with the price in effect at the bucket date;
	// accounts with no recorded price count at face value.
	one := decimal.NewFromInt(1)
	table := pivot.New(cols)
	for _, accountID := range selected {
		r, _ := svc.Get(accountID)
		table.AddRow(r.QualifiedName)
		for _, col := range cols {
			bal, ok := balances.Get(r.QualifiedName, col)
			if !ok {
				continue
			}
			d, _ := time.Parse(dateLayout, col)
			price, ok := history.At(r.CurrencyID, d)
			if !ok {
				price = one
			}
			table.Set(r.QualifiedName, col, bal.Mul(price))
		}
	}

	// Only trim old columns after values have propagated forward.
	if !opts.MinDate.IsZero() {
		table.DropColsBefore(opts.MinDate.Format(dateLayout))
	}
	if opts.WithTotal {
		table.AppendTotalRow("Total")
	}
	table.SortRows()
	return table, nil
}

func stepMonth(d time.Time) time.Time { return d.AddDate(0, 1, 0) }
func stepYear(d time.Time) time.Time  { return d.AddDate(1, 0, 0) }
