// Package commands provides the moneylens CLI commands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/moneylens-dev/moneylens/internal/buildinfo"
	"github.com/moneylens-dev/moneylens/internal/config"
	"github.com/moneylens-dev/moneylens/internal/kmm"
	"github.com/moneylens-dev/moneylens/internal/report"
)

const configName = "moneylens.yaml"

// options carries the settings shared by every subcommand, resolved
// in the root command's PersistentPreRunE.
type options struct {
	file     string
	currency string
	cfgPath  string
	debug    bool

	settings  report.Settings
	withTotal bool
}

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "moneylens",
		Short: "Read-only reports over KMyMoney SQL files",
		Long: `moneylens computes reports from a KMyMoney file saved in the SQL
(SQLite) format: net worth over time, account ledgers, spending by
category, and investment price history.

The file is opened read-only, so it is safe to run reports while the
file is open in KMyMoney itself.

Example:
  moneylens networth --file money.kmy --min-date 2024-01-01
  moneylens ledger --file money.kmy --account Checking`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.file, "file", "", "KMyMoney SQL file (also MONEYLENS_FILE)")
	flags.StringVar(&opts.currency, "currency", "", "report currency (default from config, else EUR)")
	flags.StringVar(&opts.cfgPath, "config", "", "config file (default "+configName+" if present)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newNetWorthCommand(opts),
		newLedgerCommand(opts),
		newCategoriesCommand(opts),
		newPricesCommand(opts),
		newAccountsCommand(opts),
	)
	return rootCmd
}

func (o *options) setup() error {
	// .env may seed MONEYLENS_FILE; a missing .env is fine.
	_ = godotenv.Load()

	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	path := o.cfgPath
	if path == "" {
		if _, err := os.Stat(configName); err == nil {
			path = configName
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
		slog.Debug("loaded config", "path", path)
	}

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	if o.currency != "" {
		settings.Currency = o.currency
	}
	o.settings = settings
	o.withTotal = cfg.Reports.WithTotal

	if o.file == "" {
		o.file = os.Getenv("MONEYLENS_FILE")
	}
	if o.file == "" {
		o.file = cfg.File
	}
	return nil
}

// openService opens the KMyMoney file and wires the report service.
// Callers must invoke the returned close function.
func (o *options) openService() (*report.Service, func() error, error) {
	if o.file == "" {
		return nil, nil, fmt.Errorf("no KMyMoney file given (use --file, MONEYLENS_FILE, or %s)", configName)
	}
	store, err := kmm.Open(o.file)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("opened kmymoney file", "path", o.file)
	return report.NewService(store, o.settings), store.Close, nil
}

func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: invalid date %q (want YYYY-MM-DD)", name, value)
	}
	return d, nil
}
