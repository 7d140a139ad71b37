package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneylens-dev/moneylens/internal/model"
)

func testAccounts() []model.Account {
	return []model.Account{
		{ID: "A000001", Name: "Asset"},
		{ID: "A000002", Name: "Checking", ParentID: "A000001", CurrencyID: "EUR"},
		{ID: "A000003", Name: "Savings", ParentID: "A000001", CurrencyID: "EUR"},
		{ID: "A000004", Name: "Expense", Type: model.AccountTypeExpense},
		{ID: "A000005", Name: "Groceries", Type: model.AccountTypeExpense, ParentID: "A000004"},
	}
}

func TestServiceAll_SortedByQualifiedName(t *testing.T) {
	svc, err := NewService(testAccounts())
	require.NoError(t, err)

	all := svc.All()
	require.Len(t, all, 5)
	assert.Equal(t, "Asset", all[0].QualifiedName)
	assert.Equal(t, "Asset:Checking", all[1].QualifiedName)
	assert.Equal(t, "Asset:Savings", all[2].QualifiedName)
	assert.Equal(t, "Expense", all[3].QualifiedName)
	assert.Equal(t, "Expense:Groceries", all[4].QualifiedName)
}

func TestServiceByType(t *testing.T) {
	svc, err := NewService(testAccounts())
	require.NoError(t, err)

	expenses := svc.ByType(model.AccountTypeExpense)
	require.Len(t, expenses, 2)
}

func TestResolveFilter(t *testing.T) {
	svc, err := NewService(testAccounts())
	require.NoError(t, err)

	tests := []struct {
		name  string
		terms []string
		want  []string
	}{
		{"empty matches all", nil, nil},
		{"by id", []string{"A000002"}, []string{"A000002"}},
		{"by leaf name", []string{"Checking"}, []string{"A000002"}},
		{"by qualified name", []string{"Asset:Savings"}, []string{"A000003"}},
		{"several terms", []string{"Checking", "A000003"}, []string{"A000002", "A000003"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := svc.ResolveFilter(tt.terms)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.IDs())
		})
	}
}

func TestResolveFilter_Unknown(t *testing.T) {
	svc, err := NewService(testAccounts())
	require.NoError(t, err)

	_, err = svc.ResolveFilter([]string{"NoSuchAccount"})
	assert.ErrorIs(t, err, ErrUnknownAccount)

	_, err = svc.ResolveFilter([]string{"A000099"})
	assert.ErrorIs(t, err, ErrUnknownAccount)
}

func TestFilterMatch(t *testing.T) {
	assert.True(t, Filter{}.Match("A000001"), "zero filter matches everything")

	f := FilterByIDs("A000001", "A000002")
	assert.True(t, f.Match("A000001"))
	assert.False(t, f.Match("A000003"))
	assert.Equal(t, []string{"A000001", "A000002"}, f.IDs())
}
