package lite

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// runMigrations applies the embedded schema on a connection of its
// own, so migration locking never interferes with the main one.
func runMigrations(path string) (err error) {

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return errors.Wrapf(err, "failed to open migration db")
	}
	defer db.Close()

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return errors.Wrapf(err, "failed to create sqlite driver")
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrapf(err, "failed to create iofs source")
	}

	mgr, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return errors.Wrapf(err, "failed to create migrate instance")
	}

	err = mgr.Up()
	if err != nil && err != migrate.ErrNoChange {
		return errors.Wrapf(err, "failed to run migrations")
	}
	return nil
}
