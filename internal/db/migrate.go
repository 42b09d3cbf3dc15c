package db

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"groupbuy/db/migrations"
)

// Migrate brings the schema at addr up to migrations.Latest. A dirty schema
// is reported rather than forced.
func Migrate(addr string, logger *slog.Logger) error {
	return withMigrator(addr, func(mg *migrate.Migrate) error {
		from, dirty, err := mg.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return err
		}
		if dirty {
			return fmt.Errorf("schema version %d is dirty", from)
		}
		if from == migrations.Latest {
			return nil
		}

		if err = mg.Migrate(migrations.Latest); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		logger.Info("schema migrated", "from", from, "to", migrations.Latest)
		return nil
	})
}

// Reset drops every table the migrations created.
func Reset(addr string) error {
	return withMigrator(addr, func(mg *migrate.Migrate) error {
		if err := mg.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	})
}

func withMigrator(addr string, fn func(*migrate.Migrate) error) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer mg.Close()

	return fn(mg)
}
