package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/moneylens-dev/moneylens/internal/pivot"
)

// TextRenderer writes an aligned plain-text table. Values show two
// decimal places; holes show as "-".
type TextRenderer struct{}

// Format returns "text".
func (*TextRenderer) Format() string { return "text" }

// Render writes the table.
func (*TextRenderer) Render(w io.Writer, t *pivot.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprint(tw, "account")
	for _, col := range t.Cols() {
		fmt.Fprintf(tw, "\t%s", col)
	}
	fmt.Fprintln(tw)

	for _, row := range t.Rows() {
		fmt.Fprint(tw, row)
		for _, col := range t.Cols() {
			fmt.Fprintf(tw, "\t%s", Cell(t, row, col))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// Cell formats one cell as the text table shows it.
func Cell(t *pivot.Table, row, col string) string {
	v, ok := t.Get(row, col)
	if !ok {
		return "-"
	}
	return v.StringFixed(2)
}

// FormatAmount renders a nullable decimal with two decimal places,
// "-" for null.
func FormatAmount(v decimal.NullDecimal) string {
	if !v.Valid {
		return "-"
	}
	return v.Decimal.StringFixed(2)
}
