package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneylens-dev/moneylens/internal/model"
)

func TestResolve_RootAccount(t *testing.T) {
	resolved, err := Resolve([]model.Account{
		{ID: "A000001", Name: "Asset"},
	})
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "Asset", resolved[0].QualifiedName)
}

func TestResolve_Chain(t *testing.T) {
	resolved, err := Resolve([]model.Account{
		{ID: "A000001", Name: "Asset"},
		{ID: "A000002", Name: "Bank", ParentID: "A000001"},
		{ID: "A000003", Name: "Checking", ParentID: "A000002"},
	})
	require.NoError(t, err)

	names := make(map[string]string)
	for _, r := range resolved {
		names[r.ID] = r.QualifiedName
	}
	assert.Equal(t, "Asset", names["A000001"])
	assert.Equal(t, "Asset:Bank", names["A000002"])
	assert.Equal(t, "Asset:Bank:Checking", names["A000003"])
}

func TestResolve_Cycle(t *testing.T) {
	_, err := Resolve([]model.Account{
		{ID: "A000001", Name: "One", ParentID: "A000002"},
		{ID: "A000002", Name: "Two", ParentID: "A000001"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCycle)
}

func TestResolve_SelfCycle(t *testing.T) {
	_, err := Resolve([]model.Account{
		{ID: "A000001", Name: "Ouroboros", ParentID: "A000001"},
	})
	assert.ErrorIs(t, err, ErrCycle)
}

func TestResolve_DanglingParent(t *testing.T) {
	_, err := Resolve([]model.Account{
		{ID: "A000001", Name: "Orphan", ParentID: "A000099"},
	})
	assert.ErrorIs(t, err, ErrUnknownAccount)
}
