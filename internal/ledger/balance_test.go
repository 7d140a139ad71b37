package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/moneylens-dev/moneylens/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRunningBalances(t *testing.T) {
	splits := []model.Split{
		{TransactionID: "T1", SplitID: 0, AccountID: "A1", Shares: "10/1", PostDate: day(2020, 1, 1)},
		{TransactionID: "T2", SplitID: 0, AccountID: "A1", Shares: "-3/1", PostDate: day(2020, 1, 5)},
		{TransactionID: "T3", SplitID: 0, AccountID: "A1", Shares: "5/1", PostDate: day(2020, 1, 9)},
	}
	SortSplits(splits)
	balances := RunningBalances(splits)

	assert.Equal(t, "10", balances[model.SplitKey{TransactionID: "T1"}].String())
	assert.Equal(t, "7", balances[model.SplitKey{TransactionID: "T2"}].String())
	assert.Equal(t, "12", balances[model.SplitKey{TransactionID: "T3"}].String())
}

func TestRunningBalances_PerAccountPartition(t *testing.T) {
	splits := []model.Split{
		{TransactionID: "T1", SplitID: 0, AccountID: "A1", Shares: "100/1", PostDate: day(2020, 1, 1)},
		{TransactionID: "T1", SplitID: 1, AccountID: "A2", Shares: "-100/1", PostDate: day(2020, 1, 1)},
		{TransactionID: "T2", SplitID: 0, AccountID: "A2", Shares: "-50/1", PostDate: day(2020, 1, 2)},
	}
	SortSplits(splits)
	balances := RunningBalances(splits)

	assert.Equal(t, "100", balances[model.SplitKey{TransactionID: "T1", SplitID: 0}].String())
	assert.Equal(t, "-100", balances[model.SplitKey{TransactionID: "T1", SplitID: 1}].String())
	assert.Equal(t, "-150", balances[model.SplitKey{TransactionID: "T2", SplitID: 0}].String())
}

func TestRunningBalances_UndecodableSharesSkipped(t *testing.T) {
	splits := []model.Split{
		{TransactionID: "T1", SplitID: 0, AccountID: "A1", Shares: "10/1", PostDate: day(2020, 1, 1)},
		{TransactionID: "T2", SplitID: 0, AccountID: "A1", Shares: "bad", PostDate: day(2020, 1, 2)},
		{TransactionID: "T3", SplitID: 0, AccountID: "A1", Shares: "1/1", PostDate: day(2020, 1, 3)},
	}
	SortSplits(splits)
	balances := RunningBalances(splits)

	assert.Equal(t, "11", balances[model.SplitKey{TransactionID: "T3"}].String())
}

func TestSortSplits_TieBreak(t *testing.T) {
	same := day(2020, 3, 15)
	splits := []model.Split{
		{TransactionID: "T9", SplitID: 1, PostDate: same},
		{TransactionID: "T9", SplitID: 0, PostDate: same},
		{TransactionID: "T2", SplitID: 0, PostDate: same},
		{TransactionID: "T1", SplitID: 0, PostDate: day(2020, 3, 16)},
	}
	SortSplits(splits)

	assert.Equal(t, "T2", splits[0].TransactionID)
	assert.Equal(t, "T9", splits[1].TransactionID)
	assert.Equal(t, 0, splits[1].SplitID)
	assert.Equal(t, 1, splits[2].SplitID)
	assert.Equal(t, "T1", splits[3].TransactionID, "later date sorts last")
}
