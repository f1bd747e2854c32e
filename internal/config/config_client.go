package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Debug enables debug-level logging.
	Debug bool
	// LogFile is the log file path; empty means next to the executable.
	LogFile string
}

// ClientAdapter holds settings of the Grocy REST client.
type ClientAdapter struct {
	// HTTPAddress is the Grocy base URL.
	HTTPAddress string
	// APIKey is sent in the GROCY-API-KEY header.
	APIKey string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// BreakerTimeout is the open period of the circuit breaker.
	BreakerTimeout time.Duration
	// BreakerMaxFailures is the consecutive failure count that opens it.
	BreakerMaxFailures uint32
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite cache file path.
	DSN string
}

// ClientPreferences contains settings of the preference store.
type ClientPreferences struct {
	Dir string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Preferences holds the preference store settings.
	Preferences ClientPreferences
}

// ClientServer contains the optional metrics endpoint settings.
type ClientServer struct {
	MetricsAddress string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync job runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the Grocy connection settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Server contains the metrics endpoint settings.
	Server ClientServer
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Debug:   cfg.App.Debug,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:        cfg.Adapter.HTTPAddress,
			APIKey:             cfg.Adapter.APIKey,
			RequestTimeout:     cfg.Adapter.RequestTimeout,
			BreakerTimeout:     cfg.Adapter.BreakerTimeout,
			BreakerMaxFailures: cfg.Adapter.BreakerMaxFailures,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			Preferences: ClientPreferences{
				Dir: cfg.Storage.Preferences.Dir,
			},
		},
		Server:  ClientServer{MetricsAddress: cfg.Server.MetricsAddress},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}
}
