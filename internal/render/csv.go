package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/moneylens-dev/moneylens/internal/pivot"
)

// CSVRenderer writes a pivot table as CSV, header first. Holes become
// empty fields so spreadsheets import them as blanks.
type CSVRenderer struct{}

// Format returns "csv".
func (*CSVRenderer) Format() string { return "csv" }

// Render writes the table.
func (*CSVRenderer) Render(w io.Writer, t *pivot.Table) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	cols := t.Cols()
	header := append([]string{"account"}, cols...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range t.Rows() {
		record := make([]string, 0, len(cols)+1)
		record = append(record, row)
		for _, col := range cols {
			if v, ok := t.Get(row, col); ok {
				record = append(record, v.String())
			} else {
				record = append(record, "")
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %q: %w", row, err)
		}
	}
	return cw.Error()
}
