package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/models"
)

// Preference keys.
const (
	lastSyncedKeyPrefix = "db_last_time_"
	selectedListKey     = "shopping_list_last_id"
	featureKeyPrefix    = "feature_"
)

// BadgerPreferences is the badger-backed [Preferences] store.
type BadgerPreferences struct {
	db     *badger.DB
	logger *logger.Logger
}

// NewBadgerPreferences opens the preference store in dir. An empty dir keeps
// the store in memory.
func NewBadgerPreferences(dir string, logger *logger.Logger) (*BadgerPreferences, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		logger.Err(err).
			Str("func", "NewBadgerPreferences").
			Str("dir", dir).
			Msg("failed to open preference store")
		return nil, fmt.Errorf("%w: %w", ErrPreferencesUnavailable, err)
	}

	return &BadgerPreferences{db: db, logger: logger}, nil
}

func (p *BadgerPreferences) LastSynced(ctx context.Context, entity models.EntityType) (string, error) {
	var ts string
	if _, err := p.get(ctx, lastSyncedKeyPrefix+entity.String(), &ts); err != nil {
		return "", err
	}
	return ts, nil
}

func (p *BadgerPreferences) SetLastSynced(ctx context.Context, ts string, entities ...models.EntityType) error {
	values := make(map[string]any, len(entities))
	for _, e := range entities {
		values[lastSyncedKeyPrefix+e.String()] = ts
	}
	return p.set(ctx, values)
}

func (p *BadgerPreferences) SelectedListID(ctx context.Context) (int, error) {
	id := models.DefaultShoppingListID
	if _, err := p.get(ctx, selectedListKey, &id); err != nil {
		return models.DefaultShoppingListID, err
	}
	return id, nil
}

func (p *BadgerPreferences) SetSelectedListID(ctx context.Context, id int) error {
	return p.set(ctx, map[string]any{selectedListKey: id})
}

func (p *BadgerPreferences) FeatureEnabled(ctx context.Context, feature string) (bool, error) {
	enabled := true
	if _, err := p.get(ctx, featureKeyPrefix+feature, &enabled); err != nil {
		return true, err
	}
	return enabled, nil
}

func (p *BadgerPreferences) SetFeature(ctx context.Context, feature string, enabled bool) error {
	return p.set(ctx, map[string]any{featureKeyPrefix + feature: enabled})
}

// Close flushes and closes the store.
func (p *BadgerPreferences) Close() error {
	return p.db.Close()
}

// get decodes the value stored under key into dst and reports whether the key
// existed. dst is left untouched for a missing key.
func (p *BadgerPreferences) get(ctx context.Context, key string, dst any) (bool, error) {
	found := false
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dst)
		})
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "BadgerPreferences.get").
			Str("key", key).
			Msg("failed to read preference")
		return false, fmt.Errorf("%w: %w", ErrPreferencesUnavailable, err)
	}
	return found, nil
}

// set writes all values in one transaction.
func (p *BadgerPreferences) set(ctx context.Context, values map[string]any) error {
	err := p.db.Update(func(txn *badger.Txn) error {
		for key, v := range values {
			data, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("marshal %s: %w", key, err)
			}
			if err = txn.Set([]byte(key), data); err != nil {
				return fmt.Errorf("set %s: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "BadgerPreferences.set").
			Msg("failed to write preferences")
		return fmt.Errorf("%w: %w", ErrPreferencesUnavailable, err)
	}
	return nil
}
