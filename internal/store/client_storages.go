package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/grocy-sync/internal/config"
	"github.com/MKhiriev/grocy-sync/internal/logger"
)

// ClientStorages groups the local storages of the sync client into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// ShoppingListRepository is the SQLite cache of entity snapshots.
	ShoppingListRepository ShoppingListRepository

	// Preferences holds last-synced timestamps, the list selection and
	// feature flags.
	Preferences Preferences

	lock        *cacheLock
	db          *DB
	preferences *BadgerPreferences
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Takes the exclusive cache lock next to cfg.DB.DSN, failing with
//     [ErrCacheLocked] while another client process holds it.
//  2. Opens the SQLite cache, creating the file if it does not yet exist.
//  3. Runs pending schema migrations via [DB.Migrate].
//  4. Opens the preference store in cfg.Preferences.Dir.
//
// Everything opened so far is closed again when a later step fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	lock, err := acquireCacheLock(ctx, cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		_ = lock.Release()
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		_ = lock.Release()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	prefs, err := NewBadgerPreferences(cfg.Preferences.Dir, logger)
	if err != nil {
		_ = db.Close()
		_ = lock.Release()
		return nil, err
	}

	return &ClientStorages{
		ShoppingListRepository: NewShoppingListRepository(db, logger),
		Preferences:            prefs,
		lock:                   lock,
		db:                     db,
		preferences:            prefs,
	}, nil
}

// Close closes both stores and releases the cache lock.
func (s *ClientStorages) Close() error {
	return errors.Join(
		s.preferences.Close(),
		s.db.Close(),
		s.lock.Release(),
	)
}
