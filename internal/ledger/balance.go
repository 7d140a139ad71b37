package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/moneylens-dev/moneylens/internal/fraction"
	"github.com/moneylens-dev/moneylens/internal/model"
)

// SortSplits orders splits by post date. Same-instant splits are
// ordered by (transactionID, splitID) so running balances come out
// the same on every run; KMyMoney itself leaves the order undefined.
func SortSplits(splits []model.Split) {
	sort.SliceStable(splits, func(i, j int) bool {
		a, b := splits[i], splits[j]
		if !a.PostDate.Equal(b.PostDate) {
			return a.PostDate.Before(b.PostDate)
		}
		if a.TransactionID != b.TransactionID {
			return a.TransactionID < b.TransactionID
		}
		return a.SplitID < b.SplitID
	})
}

// RunningBalances computes, per account, the cumulative sum of shares
// from the first split up to and including each split, keyed by split.
// Splits must already be in SortSplits order. Splits whose shares do
// not decode contribute nothing, like NULL in a SQL SUM.
func RunningBalances(splits []model.Split) map[model.SplitKey]decimal.Decimal {
	balances := make(map[model.SplitKey]decimal.Decimal, len(splits))
	running := make(map[string]decimal.Decimal)
	for _, s := range splits {
		total := running[s.AccountID].Add(fraction.DecodeOrZero(s.Shares))
		running[s.AccountID] = total
		balances[s.Key()] = total
	}
	return balances
}
