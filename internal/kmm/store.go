// Package kmm reads KMyMoney SQL files. Only files saved in the SQL
// (SQLite) format are supported, not the XML format.
//
// The store never writes: the file is opened read-only, so it is safe
// to run reports while the file is open in KMyMoney itself. Isolation
// is SQLite's concern, not ours.
package kmm

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/moneylens-dev/moneylens/internal/accounts"
	"github.com/moneylens-dev/moneylens/internal/model"
)

// Store is a read-only handle on a KMyMoney SQL file.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens a KMyMoney file read-only.
func Open(path string) (*Store, error) {
	// sql.Open alone would create an empty database for a bad path;
	// insist the file is already there.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening kmymoney file: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the file path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Accounts returns every row of kmmAccounts.
func (s *Store) Accounts(ctx context.Context) ([]model.Account, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, accountType, accountName, parentId, currencyId
		FROM kmmAccounts`)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	var out []model.Account
	for rows.Next() {
		var a model.Account
		var accountType, parentID, currencyID sql.NullString
		if err := rows.Scan(&a.ID, &accountType, &a.Name, &parentID, &currencyID); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		a.Type = model.AccountType(accountType.String)
		a.ParentID = parentID.String
		a.CurrencyID = currencyID.String
		out = append(out, a)
	}
	return out, rows.Err()
}

// Splits returns kmmSplits rows, restricted to the filter's accounts
// when it is non-empty. Filter IDs are bound as placeholders, never
// spliced into the query text.
func (s *Store) Splits(ctx context.Context, filter accounts.Filter) ([]model.Split, error) {
	query := `
		SELECT transactionId, splitId, accountId, action, shares,
		       price, value, postDate, reconcileFlag, payeeId
		FROM kmmSplits`
	var args []any
	if ids := filter.IDs(); ids != nil {
		query += " WHERE accountId IN (" + placeholders(len(ids)) + ")"
		for _, accountID := range ids {
			args = append(args, accountID)
		}
	}
	query += " ORDER BY postDate"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying splits: %w", err)
	}
	defer rows.Close()

	var out []model.Split
	for rows.Next() {
		var sp model.Split
		var action, shares, price, value, postDate, reconcile, payeeID sql.NullString
		if err := rows.Scan(&sp.TransactionID, &sp.SplitID, &sp.AccountID,
			&action, &shares, &price, &value, &postDate, &reconcile, &payeeID); err != nil {
			return nil, fmt.Errorf("scanning split: %w", err)
		}
		sp.Action = action.String
		sp.Shares = shares.String
		sp.Price = price.String
		sp.Value = value.String
		sp.ReconcileFlag = reconcile.String
		sp.PayeeID = payeeID.String
		sp.PostDate, err = parseDate(postDate.String)
		if err != nil {
			return nil, fmt.Errorf("split %s/%d: %w", sp.TransactionID, sp.SplitID, err)
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

// Prices returns all kmmPrices rows quoted in the given currency.
func (s *Store) Prices(ctx context.Context, toCurrency string) ([]model.Price, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT fromId, toId, priceDate, price
		FROM kmmPrices
		WHERE toId = ?`, toCurrency)
	if err != nil {
		return nil, fmt.Errorf("querying prices: %w", err)
	}
	defer rows.Close()

	var out []model.Price
	for rows.Next() {
		var p model.Price
		var date string
		if err := rows.Scan(&p.FromID, &p.ToID, &date, &p.Value); err != nil {
			return nil, fmt.Errorf("scanning price: %w", err)
		}
		p.Date, err = parseDate(date)
		if err != nil {
			return nil, fmt.Errorf("price %s: %w", p.FromID, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Payees returns every row of kmmPayees.
func (s *Store) Payees(ctx context.Context) ([]model.Payee, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM kmmPayees`)
	if err != nil {
		return nil, fmt.Errorf("querying payees: %w", err)
	}
	defer rows.Close()

	var out []model.Payee
	for rows.Next() {
		var p model.Payee
		var name sql.NullString
		if err := rows.Scan(&p.ID, &name); err != nil {
			return nil, fmt.Errorf("scanning payee: %w", err)
		}
		p.Name = name.String
		out = append(out, p)
	}
	return out, rows.Err()
}

// Securities returns every row of kmmSecurities.
func (s *Store) Securities(ctx context.Context) ([]model.Security, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, symbol FROM kmmSecurities`)
	if err != nil {
		return nil, fmt.Errorf("querying securities: %w", err)
	}
	defer rows.Close()

	var out []model.Security
	for rows.Next() {
		var sec model.Security
		var name, symbol sql.NullString
		if err := rows.Scan(&sec.ID, &name, &symbol); err != nil {
			return nil, fmt.Errorf("scanning security: %w", err)
		}
		sec.Name = name.String
		sec.Symbol = symbol.String
		out = append(out, sec)
	}
	return out, rows.Err()
}

// placeholders returns "?,?,?" for n bound parameters.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// dateLayouts covers the date encodings seen in KMyMoney SQL files.
var dateLayouts = []string{"2006-01-02", "2006-01-02T15:04:05", time.RFC3339}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
