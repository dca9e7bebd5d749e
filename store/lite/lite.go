// Package lite is the sqlite-backed store for categories, accounts,
// and transactions.
package lite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"kassa/account"
	"kassa/category"
	nt "kassa/entity"
)

// Lite wraps one sqlite database and implements the category, account,
// and statement repos. Unique violations map to the domain sentinels
// so callers can treat them as rejections.
type Lite struct {
	db     *sql.DB
	name   string
	logger nt.Logger
}

// New opens (or creates) a database at path and applies migrations.
func New(path string, lgr nt.Logger) (lt *Lite, err error) {

	dir := filepath.Dir(path)
	if dir != "." {
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			err = errors.Wrapf(err, "failed to create db directory")
			return
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open sqlite db")
		return
	}

	err = db.Ping()
	if err != nil {
		db.Close()
		err = errors.Wrapf(err, "failed to ping db")
		return
	}

	err = runMigrations(path)
	if err != nil {
		db.Close()
		return
	}

	lt = &Lite{
		db:     db,
		name:   filepath.Base(path),
		logger: lgr,
	}
	return
}

func (lt *Lite) Close() {
	lt.db.Close()
}

// Name returns the database file name for display.
func (lt *Lite) Name() string {
	return lt.name
}

// categories

func (lt *Lite) ListCategories(ctx context.Context, kind nt.Kind) (cats []nt.Category, err error) {

	rows, err := lt.db.QueryContext(ctx,
		"SELECT id, name FROM categories WHERE kind = ? ORDER BY name", string(kind))
	if err != nil {
		err = errors.Wrapf(err, "failed to query categories")
		return
	}
	defer rows.Close()

	for rows.Next() {
		cat := nt.Category{Kind: kind}
		err = rows.Scan(&cat.Id, &cat.Name)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan category")
			return
		}
		cats = append(cats, cat)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

func (lt *Lite) InsertCategory(ctx context.Context, kind nt.Kind, name string) (id int64, err error) {

	result, err := lt.db.ExecContext(ctx,
		"INSERT INTO categories (kind, name) VALUES (?, ?)", string(kind), name)
	if isUniqueViolation(err, "categories") {
		err = category.ErrDuplicate
		return
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to insert category")
		return
	}

	id, err = result.LastInsertId()
	err = errors.Wrapf(err, "failed to get insert id")
	return
}

func (lt *Lite) RenameCategory(ctx context.Context, id int64, name string) (err error) {

	_, err = lt.db.ExecContext(ctx,
		"UPDATE categories SET name = ? WHERE id = ?", name, id)
	if isUniqueViolation(err, "categories") {
		return category.ErrDuplicate
	}
	err = errors.Wrapf(err, "failed to rename category")
	return
}

func (lt *Lite) DeleteCategory(ctx context.Context, id int64) (err error) {

	_, err = lt.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	err = errors.Wrapf(err, "failed to delete category")
	return
}

// accounts

func (lt *Lite) InsertAccount(ctx context.Context, name, iban string) (id int64, err error) {

	result, err := lt.db.ExecContext(ctx,
		"INSERT INTO accounts (name, iban) VALUES (?, ?)", name, iban)
	if isUniqueViolation(err, "accounts.name") {
		err = account.ErrDuplicateName
		return
	}
	if isUniqueViolation(err, "accounts.iban") {
		err = account.ErrDuplicateIban
		return
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to insert account")
		return
	}

	id, err = result.LastInsertId()
	err = errors.Wrapf(err, "failed to get insert id")
	return
}

func (lt *Lite) AccountByName(ctx context.Context, name string) (acct nt.Account, err error) {

	err = lt.db.QueryRowContext(ctx,
		"SELECT id, name, iban FROM accounts WHERE name = ?", name).
		Scan(&acct.Id, &acct.Name, &acct.Iban)

	if errors.Is(err, sql.ErrNoRows) {
		err = account.ErrNotFound
		return
	}
	err = errors.Wrapf(err, "failed to query account")
	return
}

func (lt *Lite) ListAccounts(ctx context.Context) (accts []nt.Account, err error) {

	rows, err := lt.db.QueryContext(ctx, "SELECT id, name, iban FROM accounts ORDER BY name")
	if err != nil {
		err = errors.Wrapf(err, "failed to query accounts")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var acct nt.Account
		err = rows.Scan(&acct.Id, &acct.Name, &acct.Iban)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan account")
			return
		}
		accts = append(accts, acct)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// transactions

func (lt *Lite) ExistingHashes(ctx context.Context, hashes []string) (existing map[string]bool, err error) {

	existing = map[string]bool{}
	if len(hashes) == 0 {
		return
	}

	args := make([]any, len(hashes))
	marks := make([]string, len(hashes))
	for i, hash := range hashes {
		args[i] = hash
		marks[i] = "?"
	}

	query := "SELECT hash FROM transactions WHERE hash IN (" + strings.Join(marks, ", ") + ")"
	rows, err := lt.db.QueryContext(ctx, query, args...)
	if err != nil {
		err = errors.Wrapf(err, "failed to query hashes")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var hash string
		err = rows.Scan(&hash)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan hash")
			return
		}
		existing[hash] = true
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

func (lt *Lite) InsertTransactions(ctx context.Context, txns []nt.Transaction) (err error) {

	tx, err := lt.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to begin tx")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (account_id, date, amount, description, hash)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrapf(err, "failed to prepare insert")
	}
	defer stmt.Close()

	for _, txn := range txns {
		_, err = stmt.ExecContext(ctx,
			txn.AccountId, txn.Date.Format("2006-01-02"), txn.Amount.String(), txn.Description, txn.Hash)
		if err != nil {
			return errors.Wrapf(err, "failed to insert transaction")
		}
	}

	err = tx.Commit()
	return errors.Wrapf(err, "failed to commit")
}

// unexported

// sqlite reports constraint trouble in the error text; scope matching
// to the failing table or column.
func isUniqueViolation(err error, scope string) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") &&
		strings.Contains(err.Error(), scope)
}
