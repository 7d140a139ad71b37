package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/moneylens-dev/moneylens/internal/model"
	"github.com/moneylens-dev/moneylens/internal/report"
)

// Config represents the top-level moneylens.yaml configuration.
type Config struct {
	// File is the KMyMoney SQL file to report on.
	File     string        `yaml:"file,omitempty"`
	Currency string        `yaml:"currency"`
	Reports  ReportsConfig `yaml:"reports"`
	Fees     FeesConfig    `yaml:"fees"`
}

// ReportsConfig anchors the net-worth date series. The earliest dates
// must predate the file's first transaction, since balances are
// accumulated from the beginning of time.
type ReportsConfig struct {
	EarliestMonthly string `yaml:"earliest_monthly"` // "YYYY-MM-DD"
	EarliestYearly  string `yaml:"earliest_yearly"`
	WithTotal       bool   `yaml:"with_total"`
}

// FeesConfig tunes the investment-fee heuristic.
type FeesConfig struct {
	// AccountType is the KMyMoney type code of accounts whose sibling
	// splits count as fees.
	AccountType string `yaml:"account_type"`
}

// Load reads a moneylens.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Default returns a Config with the stock defaults.
func Default() *Config {
	return &Config{
		Currency: report.DefaultCurrency,
		Reports: ReportsConfig{
			WithTotal: true,
		},
		Fees: FeesConfig{
			AccountType: string(model.AccountTypeExpense),
		},
	}
}

// Settings converts the config into report settings. Unset fields
// keep the report defaults; malformed dates are an error.
func (c *Config) Settings() (report.Settings, error) {
	s := report.Settings{
		Currency:       c.Currency,
		FeeAccountType: model.AccountType(c.Fees.AccountType),
	}
	var err error
	if s.EarliestMonthly, err = parseDate(c.Reports.EarliestMonthly); err != nil {
		return report.Settings{}, fmt.Errorf("earliest_monthly: %w", err)
	}
	if s.EarliestYearly, err = parseDate(c.Reports.EarliestYearly); err != nil {
		return report.Settings{}, fmt.Errorf("earliest_yearly: %w", err)
	}
	return s, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return d, nil
}
