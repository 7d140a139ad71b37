package model

import "time"

// Price is a row in kmmPrices: the value of one unit of FromID
// expressed in ToID, effective from Date until the next recorded
// price for the same pair.
type Price struct {
	FromID string
	ToID   string
	Date   time.Time
	Value  string // "numerator/denominator"
}

// Payee is a row in kmmPayees.
type Payee struct {
	ID   string
	Name string
}

// Security is a row in kmmSecurities (stocks, funds, and other traded
// instruments referenced by account currency IDs).
type Security struct {
	ID     string
	Name   string
	Symbol string
}
