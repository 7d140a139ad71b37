package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/moneylens-dev/moneylens/internal/fraction"
	"github.com/moneylens-dev/moneylens/internal/model"
)

// FeeRule decides which sibling splits of an investment transaction
// count as banking fees. KMyMoney does not tag fee splits, so the
// match is a heuristic on the sibling's account type and currency;
// fees booked in another currency are ignored.
type FeeRule struct {
	AccountType model.AccountType
	Currency    string
}

// DefaultFeeRule matches expense-account siblings in the given
// currency, the convention KMyMoney's own investment reports follow.
func DefaultFeeRule(currency string) FeeRule {
	return FeeRule{AccountType: model.AccountTypeExpense, Currency: currency}
}

// mergeFees sums, for every split on a stock-type account, the values
// of sibling splits in the same transaction matching the rule. Splits
// with no matching sibling are absent from the result, which readers
// treat as a null fee.
func mergeFees(splits []model.Split, accounts map[string]model.Account, rule FeeRule) map[model.SplitKey]decimal.Decimal {
	byTransaction := make(map[string][]model.Split)
	for _, s := range splits {
		byTransaction[s.TransactionID] = append(byTransaction[s.TransactionID], s)
	}

	fees := make(map[model.SplitKey]decimal.Decimal)
	for _, s := range splits {
		acct, ok := accounts[s.AccountID]
		if !ok || acct.Type != model.AccountTypeStock {
			continue
		}
		matched := false
		total := decimal.Zero
		for _, sibling := range byTransaction[s.TransactionID] {
			if sibling.SplitID == s.SplitID {
				continue
			}
			sa, ok := accounts[sibling.AccountID]
			if !ok || sa.Type != rule.AccountType || sa.CurrencyID != rule.Currency {
				continue
			}
			matched = true
			total = total.Add(fraction.DecodeOrZero(sibling.Value))
		}
		if matched {
			fees[s.Key()] = total
		}
	}
	return fees
}
