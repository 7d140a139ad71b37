package model

import "time"

// Reconcile flag values as stored in kmmSplits.reconcileFlag.
const (
	ReconcileNotReconciled = "0"
	ReconcileCleared       = "1"
	ReconcileReconciled    = "2"
)

// Split is one leg of a double-entry transaction, a row in kmmSplits.
// Shares, Price and Value are kept as the raw "numerator/denominator"
// strings from the file; the *Formatted columns in the database are
// sometimes wrong, so we always decode the fractions ourselves.
type Split struct {
	TransactionID string
	SplitID       int
	AccountID     string
	Action        string
	Shares        string
	Price         string
	Value         string
	PostDate      time.Time
	ReconcileFlag string
	PayeeID       string // empty when no payee
}

// Reconcile decodes the reconcile flag into KMyMoney's single-letter
// ledger notation: "R" reconciled, "C" cleared, "" otherwise.
func (s Split) Reconcile() string {
	switch s.ReconcileFlag {
	case ReconcileReconciled:
		return "R"
	case ReconcileCleared:
		return "C"
	default:
		return ""
	}
}

// Key identifies the split within the file.
func (s Split) Key() SplitKey {
	return SplitKey{TransactionID: s.TransactionID, SplitID: s.SplitID}
}

// SplitKey is the composite primary key of kmmSplits.
type SplitKey struct {
	TransactionID string
	SplitID       int
}
