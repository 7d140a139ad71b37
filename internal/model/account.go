package model

// AccountType is the numeric type code KMyMoney stores in
// kmmAccounts.accountType. Asset and liability accounts carry codes
// other than the four named here; reports only ever need to test for
// these four.
type AccountType string

const (
	AccountTypeIncome  AccountType = "12"
	AccountTypeExpense AccountType = "13"
	AccountTypeStock   AccountType = "15"
	AccountTypeEquity  AccountType = "16"
)

// Account represents a row in kmmAccounts.
type Account struct {
	ID         string
	Type       AccountType
	Name       string
	ParentID   string // empty = top-level account
	CurrencyID string // ISO currency code or security ID
}

// IsCategory reports whether the account is an income or expense
// category rather than a real account.
func (a Account) IsCategory() bool {
	return a.Type == AccountTypeIncome || a.Type == AccountTypeExpense
}
