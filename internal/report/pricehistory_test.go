package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneylens-dev/moneylens/internal/model"
)

func priceHistorySource() *fakeSource {
	return &fakeSource{
		accounts: []model.Account{
			{ID: "A000001", Name: "Broker", CurrencyID: "EUR"},
			{ID: "A000002", Name: "ACME", Type: model.AccountTypeStock,
				ParentID: "A000001", CurrencyID: "E000001"},
			{ID: "A000003", Name: "Globex", Type: model.AccountTypeStock,
				ParentID: "A000001", CurrencyID: "E000002"},
		},
		prices: []model.Price{
			{FromID: "E000001", ToID: "EUR", Date: day(2020, 1, 1), Value: "20/1"},
			{FromID: "E000001", ToID: "EUR", Date: day(2020, 2, 1), Value: "22/1"},
			{FromID: "E000002", ToID: "EUR", Date: day(2020, 1, 15), Value: "5/1"},
		},
		securities: []model.Security{
			{ID: "E000001", Name: "ACME"},
			{ID: "E000002", Name: "Globex"},
		},
	}
}

func TestPriceHistory(t *testing.T) {
	svc := NewService(priceHistorySource(), Settings{})

	table, err := svc.PriceHistory(context.Background(), PriceHistoryOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"ACME", "Globex"}, table.Cols())
	assert.Equal(t, []string{"2020-01-01", "2020-01-15", "2020-02-01"}, table.Rows())

	v, ok := table.Get("2020-01-01", "ACME")
	require.True(t, ok)
	assert.Equal(t, "20", v.String())

	v, ok = table.Get("2020-01-15", "Globex")
	require.True(t, ok)
	assert.Equal(t, "5", v.String())

	_, ok = table.Get("2020-01-15", "ACME")
	assert.False(t, ok, "no ACME price recorded that day")
}

func TestPriceHistory_AccountFilter(t *testing.T) {
	svc := NewService(priceHistorySource(), Settings{})

	table, err := svc.PriceHistory(context.Background(), PriceHistoryOptions{
		Accounts: []string{"Globex"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Globex"}, table.Cols())
	assert.Equal(t, []string{"2020-01-15"}, table.Rows())
}
