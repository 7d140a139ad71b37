// Package ledger reconciles checking-account and investment-account
// split semantics into one detailed per-split view, the input of all
// higher-level reports.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneylens-dev/moneylens/internal/fraction"
	"github.com/moneylens-dev/moneylens/internal/model"
	"github.com/moneylens-dev/moneylens/internal/prices"
)

// DetailedSplit is one split with its amounts decoded and derived
// fields attached.
//
//	Quantity: units exchanged in the account's own currency; euros
//	  for a checking account, shares for a stock account.
//	Price: per-unit price from the transaction itself; null for
//	  checking splits and add/remove-shares actions.
//	Value: transaction value (typically quantity×price), excluding
//	  third-party fees.
//	Fees: banking fees merged from sibling splits; only ever set on
//	  stock accounts.
//	ComputedPrice: the unit price as of the split: the transaction
//	  price if present, else the historical price, else 1 when the
//	  account is already denominated in the report currency.
//	BalanceShares: units held in the account after this split.
type DetailedSplit struct {
	AccountID     string
	CurrencyID    string
	Date          time.Time
	TransactionID string
	SplitID       int
	Quantity      decimal.Decimal
	Price         decimal.NullDecimal
	Value         decimal.Decimal
	Fees          decimal.NullDecimal
	SecurityID    string
	ComputedPrice decimal.NullDecimal
	BalanceShares decimal.Decimal
}

// Key identifies the underlying split.
func (d DetailedSplit) Key() model.SplitKey {
	return model.SplitKey{TransactionID: d.TransactionID, SplitID: d.SplitID}
}

// Builder composes account, price-history, and fee information into
// detailed split rows for one report currency.
type Builder struct {
	accounts   map[string]model.Account
	history    *prices.History
	securities map[string]bool
	currency   string
	fees       FeeRule
}

// NewBuilder creates a Builder. The price history must be quoted in
// the same currency.
func NewBuilder(accts []model.Account, securities []model.Security, history *prices.History, currency string, fees FeeRule) *Builder {
	byID := make(map[string]model.Account, len(accts))
	for _, a := range accts {
		byID[a.ID] = a
	}
	secs := make(map[string]bool, len(securities))
	for _, s := range securities {
		secs[s.ID] = true
	}
	return &Builder{
		accounts:   byID,
		history:    history,
		securities: secs,
		currency:   currency,
		fees:       fees,
	}
}

// BuildOptions restrict the rows Build returns. Fees and balances are
// derived before the account filter is applied: fee siblings live on
// other accounts, and per-account balance prefix sums are unaffected
// by dropping other accounts anyway. The max-date bound is applied
// first, so balances stop at the cut-off.
type BuildOptions struct {
	Filter  func(accountID string) bool // nil = all accounts
	MaxDate time.Time                   // inclusive; zero = no bound
}

// Build returns detailed rows in post-date order.
func (b *Builder) Build(splits []model.Split, opts BuildOptions) []DetailedSplit {
	dated := make([]model.Split, 0, len(splits))
	for _, s := range splits {
		if !opts.MaxDate.IsZero() && s.PostDate.After(opts.MaxDate) {
			continue
		}
		dated = append(dated, s)
	}
	SortSplits(dated)

	balances := RunningBalances(dated)
	fees := mergeFees(dated, b.accounts, b.fees)

	selected := dated
	if opts.Filter != nil {
		selected = make([]model.Split, 0, len(dated))
		for _, s := range dated {
			if opts.Filter(s.AccountID) {
				selected = append(selected, s)
			}
		}
	}

	rows := make([]DetailedSplit, 0, len(selected))
	for _, s := range selected {
		acct := b.accounts[s.AccountID]
		row := DetailedSplit{
			AccountID:     s.AccountID,
			CurrencyID:    acct.CurrencyID,
			Date:          s.PostDate,
			TransactionID: s.TransactionID,
			SplitID:       s.SplitID,
			Quantity:      fraction.DecodeOrZero(s.Shares),
			Price:         fraction.Decode(s.Price),
			Value:         fraction.DecodeOrZero(s.Value),
			BalanceShares: balances[s.Key()],
		}
		if b.securities[acct.CurrencyID] {
			row.SecurityID = acct.CurrencyID
		}
		if fee, ok := fees[s.Key()]; ok {
			row.Fees = decimal.NullDecimal{Decimal: fee, Valid: true}
		}
		row.ComputedPrice = b.computedPrice(row.Price, acct.CurrencyID, s.PostDate)
		rows = append(rows, row)
	}
	return rows
}

// computedPrice resolves the per-unit price of a split: the explicit
// transaction price wins, then the recorded price history, then 1
// when no conversion is needed. Anything else stays null.
func (b *Builder) computedPrice(explicit decimal.NullDecimal, currencyID string, date time.Time) decimal.NullDecimal {
	if explicit.Valid {
		return explicit
	}
	if v, ok := b.history.At(currencyID, date); ok {
		return decimal.NullDecimal{Decimal: v, Valid: true}
	}
	if currencyID == b.currency {
		return decimal.NullDecimal{Decimal: decimal.NewFromInt(1), Valid: true}
	}
	return decimal.NullDecimal{}
}

// Account returns the raw account behind an ID, for report joins.
func (b *Builder) Account(accountID string) (model.Account, bool) {
	a, ok := b.accounts[accountID]
	return a, ok
}
