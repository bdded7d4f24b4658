package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"backoffice/db/migrations"
)

// Migrate brings the schema at addr up to migrations.Version. It refuses
// to run against a database left dirty by a failed migration.
func Migrate(addr string) error {
	conn, err := sql.Open("postgres", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	dbDriver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}
	return migrateWith(dbDriver, "postgres")
}

// migrateWith applies the embedded migrations through dbDriver and closes
// it, which releases the connection the driver holds.
func migrateWith(dbDriver database.Driver, name string) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		_ = dbDriver.Close()
		return err
	}

	mg, err := migrate.NewWithInstance("iofs", src, name, dbDriver)
	if err != nil {
		_ = src.Close()
		_ = dbDriver.Close()
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
