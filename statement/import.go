// Package statement imports bank-statement files, fingerprinting each
// line so re-imports and overlapping statements never duplicate
// transactions.
package statement

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	nt "kassa/entity"
)

// Record is one normalized statement line.
type Record struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
}

// Fingerprint hashes the identifying fields of a record; two lines with
// the same date, amount, and description are the same transaction.
func Fingerprint(rec Record) string {

	canon := strings.Join([]string{
		rec.Date.Format("2006-01-02"),
		rec.Amount.String(),
		rec.Description,
	}, "|")

	sum := sha256.Sum256([]byte(canon))
	return hex.EncodeToString(sum[:])
}

// Repo specifies transaction persistence.
type Repo interface {
	ExistingHashes(ctx context.Context, hashes []string) (existing map[string]bool, err error)
	InsertTransactions(ctx context.Context, txns []nt.Transaction) (err error)
}

// Accounts resolves the account a statement belongs to.
type Accounts interface {
	ByName(ctx context.Context, name string) (acct nt.Account, err error)
}

// Reader loads statement files into records.
type Reader interface {
	Read(path string) (recs []Record, err error)
}

// Importer runs the import pipeline: read, fingerprint, drop known
// lines, insert the rest.
type Importer struct {
	repo     Repo
	accounts Accounts
	reader   Reader
	logger   nt.Logger
}

func NewImporter(repo Repo, accounts Accounts, reader Reader, lgr nt.Logger) *Importer {

	return &Importer{
		repo:     repo,
		accounts: accounts,
		reader:   reader,
		logger:   lgr,
	}
}

// Import loads a statement file for the named account and returns the
// number of transactions inserted. Lines already present, in the store
// or earlier in the same file, are skipped.
func (imp *Importer) Import(ctx context.Context, accountName, path string) (count int, err error) {

	acct, err := imp.accounts.ByName(ctx, accountName)
	if err != nil {
		return
	}

	recs, err := imp.reader.Read(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read statement %s", path)
		return
	}

	hashes := make([]string, len(recs))
	for i, rec := range recs {
		hashes[i] = Fingerprint(rec)
	}

	existing, err := imp.repo.ExistingHashes(ctx, hashes)
	if err != nil {
		return
	}

	var txns []nt.Transaction
	seen := map[string]bool{}
	for i, rec := range recs {
		hash := hashes[i]
		if existing[hash] || seen[hash] {
			continue
		}
		seen[hash] = true

		txns = append(txns, nt.Transaction{
			AccountId:   acct.Id,
			Date:        rec.Date,
			Amount:      rec.Amount,
			Description: rec.Description,
			Hash:        hash,
		})
	}

	if len(txns) > 0 {
		err = imp.repo.InsertTransactions(ctx, txns)
		if err != nil {
			return
		}
	}

	count = len(txns)
	imp.logger.Info(ctx, "statement imported",
		"account", acct.Name, "path", path, "lines", len(recs), "inserted", count)
	return
}
