// Package fraction decodes the "numerator/denominator" strings
// KMyMoney uses to store exact amounts.
package fraction

import (
	"strings"

	"github.com/shopspring/decimal"
)

// divPrecision bounds non-terminating divisions (e.g. share prices
// like 1/3). KMyMoney itself stores at most 8 fractional digits.
const divPrecision = 10

// Decode converts "n/m" into a decimal. A missing slash, non-numeric
// part, or zero denominator yields an invalid NullDecimal rather than
// an error, since such rows are an input-data problem the reports
// simply carry through as nulls.
func Decode(s string) decimal.NullDecimal {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return decimal.NullDecimal{}
	}
	n, err := decimal.NewFromString(strings.TrimSpace(num))
	if err != nil {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(strings.TrimSpace(den))
	if err != nil || d.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: n.DivRound(d, divPrecision), Valid: true}
}

// DecodeOrZero converts "n/m" into a decimal, mapping undecodable
// input to zero. Use where a hole would otherwise poison a sum.
func DecodeOrZero(s string) decimal.Decimal {
	v := Decode(s)
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}
