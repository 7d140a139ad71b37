package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
)

// Bar is one labeled value of a bar chart.
type Bar struct {
	Label string
	Value decimal.Decimal
}

// BarChart writes a horizontal text bar chart. Bars are scaled to
// width characters against the largest absolute value.
func BarChart(w io.Writer, bars []Bar, width int) error {
	if width <= 0 {
		width = 40
	}
	max := decimal.Zero
	for _, b := range bars {
		if abs := b.Value.Abs(); abs.GreaterThan(max) {
			max = abs
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, b := range bars {
		n := 0
		if !max.IsZero() {
			n = int(b.Value.Abs().Div(max).Mul(decimal.NewFromInt(int64(width))).IntPart())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Label, b.Value.StringFixed(2), strings.Repeat("#", n))
	}
	return tw.Flush()
}
