package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/migrations"
)

// DB is the SQLite connection of the shopping list cache.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the pending cache schema migrations.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Msg("error migrating cache schema")
		return fmt.Errorf("migrate cache: %w", err)
	}

	db.logger.Debug().Str("func", "DB.Migrate").Msg("cache schema is up to date")
	return nil
}

func (db *DB) Close() error {
	if err := db.DB.Close(); err != nil {
		db.logger.Err(err).Str("func", "DB.Close").Msg("error closing cache database")
		return err
	}
	return nil
}
