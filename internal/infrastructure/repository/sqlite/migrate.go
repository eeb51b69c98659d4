package sqlite

import (
	"database/sql"
	"io/fs"

	"github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// RunMigrations applies every pending migration from the embedded source.
// A database already at the latest version is not an error.
func RunMigrations(db *sql.DB, migrationFS fs.FS) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return errors.Wrap(err, "create sqlite migration driver")
	}

	source, err := iofs.New(migrationFS, ".")
	if err != nil {
		return errors.Wrap(err, "create migration source")
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return errors.Wrap(err, "create migrator")
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return errors.Wrap(err, "run up migrations")
	}

	return nil
}
