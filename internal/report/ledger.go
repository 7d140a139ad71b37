package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneylens-dev/moneylens/internal/accounts"
	"github.com/moneylens-dev/moneylens/internal/fraction"
	"github.com/moneylens-dev/moneylens/internal/ledger"
	"github.com/moneylens-dev/moneylens/internal/model"
	"github.com/moneylens-dev/moneylens/internal/prices"
)

// LedgerOptions parameterize the ledger report.
type LedgerOptions struct {
	Accounts []string
	Currency string
	MinDate  time.Time // inclusive
	MaxDate  time.Time // inclusive
}

// LedgerRow is one ledger line, mirroring KMyMoney's ledger view. A
// transaction split across several destination accounts produces one
// line per destination, all carrying the same balance.
type LedgerRow struct {
	AccountName   string // qualified name of the reported account
	Date          time.Time
	Payee         string
	Category      string // destination account leaf name
	Reconcile     string // "R", "C", or ""
	Shares        decimal.Decimal // in the account's own currency
	BalanceShares decimal.Decimal
	PricePerShare decimal.NullDecimal
	Payment       decimal.NullDecimal // destination value when positive
	Deposit       decimal.NullDecimal // negated destination value otherwise
	Balance       decimal.NullDecimal // balanceShares × computedPrice
}

// Ledger lists the transactions of the selected accounts with both
// the account-currency amounts (euros or shares) and their value in
// the report currency at the time.
func (s *Service) Ledger(ctx context.Context, opts LedgerOptions) ([]LedgerRow, error) {
	currency := s.currency(opts.Currency)

	svc, filter, err := s.accountContext(ctx, opts.Accounts)
	if err != nil {
		return nil, err
	}

	detailed, splits, err := s.detailedSplits(ctx, svc, filter, currency, opts.MaxDate)
	if err != nil {
		return nil, err
	}

	payees, err := s.payeeNames(ctx)
	if err != nil {
		return nil, err
	}

	raw := make(map[model.SplitKey]model.Split, len(splits))
	byTransaction := make(map[string][]model.Split)
	for _, sp := range splits {
		raw[sp.Key()] = sp
		byTransaction[sp.TransactionID] = append(byTransaction[sp.TransactionID], sp)
	}

	var rows []LedgerRow
	for _, d := range detailed {
		if !opts.MinDate.IsZero() && d.Date.Before(opts.MinDate) {
			continue
		}
		acct, _ := svc.Get(d.AccountID)
		src := raw[d.Key()]
		base := LedgerRow{
			AccountName:   acct.QualifiedName,
			Date:          d.Date,
			Payee:         payees[src.PayeeID],
			Reconcile:     src.Reconcile(),
			Shares:        d.Quantity,
			BalanceShares: d.BalanceShares,
			PricePerShare: d.Price,
			Balance:       mulNull(d.BalanceShares, d.ComputedPrice),
		}

		emitted := false
		for _, dest := range byTransaction[d.TransactionID] {
			if dest.SplitID == d.SplitID {
				continue
			}
			row := base
			if destAcct, ok := svc.Get(dest.AccountID); ok {
				row.Category = destAcct.Name
			}
			row.Payment, row.Deposit = paymentDeposit(dest.Value)
			rows = append(rows, row)
			emitted = true
		}
		// One-sided transactions still show up, just without a
		// category.
		if !emitted {
			rows = append(rows, base)
		}
	}
	return rows, nil
}

// detailedSplits builds the unified per-split view every report sits
// on. All splits are fetched regardless of the account filter because
// siblings on other accounts feed fees and categories; the filter
// only trims the returned rows.
func (s *Service) detailedSplits(ctx context.Context, svc *accounts.Service, filter accounts.Filter, currency string, maxDate time.Time) ([]ledger.DetailedSplit, []model.Split, error) {
	splits, err := s.source.Splits(ctx, accounts.Filter{})
	if err != nil {
		return nil, nil, err
	}
	securities, err := s.source.Securities(ctx)
	if err != nil {
		return nil, nil, err
	}
	priceRows, err := s.source.Prices(ctx, currency)
	if err != nil {
		return nil, nil, err
	}
	history := prices.NewHistory(priceRows, currency)

	var accts []model.Account
	for _, r := range svc.All() {
		accts = append(accts, r.Account)
	}
	builder := ledger.NewBuilder(accts, securities, history, currency, ledger.FeeRule{
		AccountType: s.settings.FeeAccountType,
		Currency:    currency,
	})
	detailed := builder.Build(splits, ledger.BuildOptions{
		Filter:  filter.Match,
		MaxDate: maxDate,
	})
	return detailed, splits, nil
}

// paymentDeposit splits a destination value into the ledger's payment
// and deposit columns based on its sign. Undecodable values leave
// both null.
func paymentDeposit(value string) (payment, deposit decimal.NullDecimal) {
	v := fraction.Decode(value)
	if !v.Valid {
		return
	}
	if v.Decimal.Sign() > 0 {
		payment = v
		return
	}
	deposit = decimal.NullDecimal{Decimal: v.Decimal.Neg(), Valid: true}
	return
}
