package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryValue selects which ledger column a category breakdown
// aggregates and sorts on.
type CategoryValue string

// Category breakdown value columns.
const (
	CategoryPayment CategoryValue = "payment"
	CategoryDeposit CategoryValue = "deposit"
)

// CategoryOptions parameterize the category breakdown.
type CategoryOptions struct {
	Accounts []string
	Currency string
	MinDate  time.Time // inclusive
	MaxDate  time.Time // inclusive
	// SortBy orders the result; defaults to CategoryPayment.
	SortBy CategoryValue
}

// CategoryRow is one income or expense category with its totals over
// the requested range.
type CategoryRow struct {
	Category string
	Payment  decimal.Decimal
	Deposit  decimal.Decimal
}

// Categories sums payments and deposits per destination category.
// Categories are not the same as expenses and income: nothing stops a
// deposit into an expense account, e.g. a reimbursement, so both
// columns are reported for every category.
func (s *Service) Categories(ctx context.Context, opts CategoryOptions) ([]CategoryRow, error) {
	currency := s.currency(opts.Currency)

	svc, filter, err := s.accountContext(ctx, opts.Accounts)
	if err != nil {
		return nil, err
	}

	detailed, splits, err := s.detailedSplits(ctx, svc, filter, currency, opts.MaxDate)
	if err != nil {
		return nil, err
	}

	byTransaction := make(map[string][]int)
	for i, sp := range splits {
		byTransaction[sp.TransactionID] = append(byTransaction[sp.TransactionID], i)
	}

	totals := make(map[string]*CategoryRow)
	for _, d := range detailed {
		if !opts.MinDate.IsZero() && d.Date.Before(opts.MinDate) {
			continue
		}
		for _, i := range byTransaction[d.TransactionID] {
			dest := splits[i]
			if dest.SplitID == d.SplitID {
				continue
			}
			destAcct, ok := svc.Get(dest.AccountID)
			if !ok || !destAcct.IsCategory() {
				continue
			}
			row := totals[destAcct.Name]
			if row == nil {
				row = &CategoryRow{Category: destAcct.Name}
				totals[destAcct.Name] = row
			}
			payment, deposit := paymentDeposit(dest.Value)
			if payment.Valid {
				row.Payment = row.Payment.Add(payment.Decimal)
			}
			if deposit.Valid {
				row.Deposit = row.Deposit.Add(deposit.Decimal)
			}
		}
	}

	rows := make([]CategoryRow, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, *row)
	}
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = CategoryPayment
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		va, vb := a.Payment, b.Payment
		if sortBy == CategoryDeposit {
			va, vb = a.Deposit, b.Deposit
		}
		if !va.Equal(vb) {
			return va.LessThan(vb)
		}
		return a.Category < b.Category
	})
	return rows, nil
}
