// Package duck reads bank-statement CSV files through an in-memory
// DuckDB, which handles quoting, encodings, and date/amount parsing in
// one pass.
package duck

import (
	"database/sql"
	"fmt"

	"github.com/pkg/errors"

	nt "kassa/entity"
	"kassa/statement"
)

// Duck is a statement.Reader over an in-memory DuckDB.
type Duck struct {
	db     *sql.DB
	logger nt.Logger
}

func New(lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}
	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Read loads a statement CSV with a date, amount, and description
// column, normalizing dates and amounts in SQL. Line order follows the
// file.
func (dk *Duck) Read(path string) (recs []statement.Record, err error) {

	// amounts come back as text so they reach decimal unmangled
	query := fmt.Sprintf(`
		SELECT date, CAST(amount AS VARCHAR) AS amount, description
		FROM read_csv('%s',
			header=true,
			columns={date: 'DATE', amount: 'DECIMAL(18,2)', description: 'VARCHAR'})
	`, path)

	rows, err := dk.db.Query(query)
	if err != nil {
		err = errors.Wrapf(err, "failed to read statement")
		return
	}
	defer rows.Close()

	for rows.Next() {

		var vals []any
		vals, err = scanRow(rows, 3)
		if err != nil {
			return
		}

		var rec statement.Record
		rec.Date, err = nt.Value{Raw: vals[0]}.Time()
		if err != nil {
			return
		}
		rec.Amount, err = nt.Value{Raw: vals[1]}.Decimal()
		if err != nil {
			return
		}
		rec.Description = nt.Value{Raw: vals[2]}.String()

		recs = append(recs, rec)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// unexported

func scanRow(rows *sql.Rows, count int) (vals []any, err error) {

	vals = make([]any, count)
	ptrs := make([]any, count)
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	err = rows.Scan(ptrs...)
	err = errors.Wrapf(err, "failed to scan row")
	return
}
