package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"promo-scheduler/db/migrations"
)

// ErrDirtySchema means a previous migration failed half way and needs an
// operator to force the version.
var ErrDirtySchema = errors.New("database schema is dirty")

// Migrate brings the schema to migrations.Version and reports the version
// found before and after.
func Migrate(addr string) (from, to uint, err error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, 0, fmt.Errorf("open embedded migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return 0, 0, err
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return 0, 0, err
	case dirty:
		return from, from, fmt.Errorf("%w at version %d", ErrDirtySchema, from)
	}

	if from == migrations.Version {
		return from, from, nil
	}
	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return from, from, err
	}
	return from, migrations.Version, nil
}
