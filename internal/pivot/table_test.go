package pivot

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSetGet(t *testing.T) {
	tbl := New([]string{"2020-01-01", "2020-02-01"})
	tbl.Set("Checking", "2020-01-01", dec("100"))

	v, ok := tbl.Get("Checking", "2020-01-01")
	require.True(t, ok)
	assert.Equal(t, "100", v.String())

	_, ok = tbl.Get("Checking", "2020-02-01")
	assert.False(t, ok, "unset cell is a hole")
}

func TestSet_UnknownColumnPanics(t *testing.T) {
	tbl := New([]string{"2020-01-01"})
	assert.Panics(t, func() { tbl.Set("Checking", "2021-01-01", dec("1")) })
}

func TestForwardFill(t *testing.T) {
	tbl := New([]string{"2020-01-01", "2020-02-01", "2020-03-01"})
	tbl.Set("Checking", "2020-01-01", dec("100"))
	tbl.ForwardFill()

	for _, col := range tbl.Cols() {
		v, ok := tbl.Get("Checking", col)
		require.True(t, ok, "column %s should be filled", col)
		assert.Equal(t, "100", v.String())
	}
}

func TestForwardFill_LeadingHolesStay(t *testing.T) {
	tbl := New([]string{"2020-01-01", "2020-02-01", "2020-03-01"})
	tbl.Set("Savings", "2020-02-01", dec("50"))
	tbl.ForwardFill()

	_, ok := tbl.Get("Savings", "2020-01-01")
	assert.False(t, ok, "no value to fill from")
	v, ok := tbl.Get("Savings", "2020-03-01")
	require.True(t, ok)
	assert.Equal(t, "50", v.String())
}

func TestDropColsBefore(t *testing.T) {
	tbl := New([]string{"2019-12-01", "2020-01-01", "2020-02-01"})
	tbl.Set("Checking", "2019-12-01", dec("1"))
	tbl.Set("Checking", "2020-01-01", dec("2"))
	tbl.DropColsBefore("2020-01-01")

	assert.Equal(t, []string{"2020-01-01", "2020-02-01"}, tbl.Cols())
	_, ok := tbl.Get("Checking", "2019-12-01")
	assert.False(t, ok)
}

func TestAppendTotalRow(t *testing.T) {
	tbl := New([]string{"2020-01-01", "2020-02-01"})
	tbl.Set("Checking", "2020-01-01", dec("100"))
	tbl.Set("Savings", "2020-01-01", dec("50"))
	tbl.AppendTotalRow("Total")

	v, ok := tbl.Get("Total", "2020-01-01")
	require.True(t, ok)
	assert.Equal(t, "150", v.String())

	_, ok = tbl.Get("Total", "2020-02-01")
	assert.False(t, ok, "column with no data has no total")
}

func TestSortRowsAndIsEmpty(t *testing.T) {
	tbl := New([]string{"2020-01-01"})
	assert.True(t, tbl.IsEmpty())

	tbl.Set("Savings", "2020-01-01", dec("1"))
	tbl.Set("Checking", "2020-01-01", dec("2"))
	tbl.SortRows()

	assert.Equal(t, []string{"Checking", "Savings"}, tbl.Rows())
	assert.False(t, tbl.IsEmpty())
}

func TestAddRow_KeepsHoleRows(t *testing.T) {
	tbl := New([]string{"2020-01-01"})
	tbl.AddRow("Empty account")
	assert.Equal(t, []string{"Empty account"}, tbl.Rows())
	assert.True(t, tbl.IsEmpty())
}
