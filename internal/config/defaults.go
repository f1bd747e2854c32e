package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultRequestTimeout     = 15 * time.Second
	defaultBreakerTimeout     = 30 * time.Second
	defaultBreakerMaxFailures = 3
	defaultSyncInterval       = 5 * time.Minute

	dataDirName        = "grocy-sync"
	cacheFileName      = "cache.db"
	preferencesDirName = "preferences"
)

// defaultConfig returns the lowest-priority configuration source.
func defaultConfig() *StructuredConfig {
	dataDir := defaultDataDir()

	return &StructuredConfig{
		Storage: Storage{
			DB:          DB{DSN: filepath.Join(dataDir, cacheFileName)},
			Preferences: Preferences{Dir: filepath.Join(dataDir, preferencesDirName)},
		},
		Adapter: Adapter{
			RequestTimeout:     defaultRequestTimeout,
			BreakerTimeout:     defaultBreakerTimeout,
			BreakerMaxFailures: defaultBreakerMaxFailures,
		},
		Workers: Workers{SyncInterval: defaultSyncInterval},
	}
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return dataDirName
	}
	return filepath.Join(base, dataDirName)
}
