package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneylens-dev/moneylens/internal/model"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "moneylens.yaml")
	content := `file: /home/me/money.kmy
currency: USD
reports:
  earliest_monthly: "2015-01-01"
  earliest_yearly: "2015-12-31"
  with_total: true
fees:
  account_type: "13"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/home/me/money.kmy", cfg.File)
	assert.Equal(t, "USD", cfg.Currency)
	assert.True(t, cfg.Reports.WithTotal)

	settings, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, "USD", settings.Currency)
	assert.Equal(t, time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC), settings.EarliestMonthly)
	assert.Equal(t, model.AccountTypeExpense, settings.FeeAccountType)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSettings_BadDate(t *testing.T) {
	cfg := Default()
	cfg.Reports.EarliestMonthly = "January 2015"
	_, err := cfg.Settings()
	assert.ErrorContains(t, err, "earliest_monthly")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, "13", cfg.Fees.AccountType)
	assert.True(t, cfg.Reports.WithTotal)

	settings, err := cfg.Settings()
	require.NoError(t, err)
	assert.True(t, settings.EarliestMonthly.IsZero(), "unset dates keep report defaults")
}
