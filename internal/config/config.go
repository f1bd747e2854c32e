// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// grocy-sync client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local cache database and the
	// preferences store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds settings of the optional metrics endpoint.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the Grocy server connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the periodic sync job.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the SQLite cache settings.
	DB DB `envPrefix:"DB_"`

	// Preferences holds the key-value preference store settings.
	Preferences Preferences `envPrefix:"PREFERENCES_"`
}

// App holds application-level configuration values.
type App struct {
	// Debug enables debug-level logging.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`

	// LogFile is the path of the client log file. Empty means a file next
	// to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds settings of the inbound metrics endpoint.
type Server struct {
	// MetricsAddress is the TCP address of the /metrics and /healthz
	// endpoint in "host:port" format. Empty disables the endpoint.
	// Env: SERVER_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the path of the SQLite database file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Preferences holds settings for the on-disk preference store.
type Preferences struct {
	// Dir is the directory of the preference store.
	// Env: STORAGE_PREFERENCES_DIR
	Dir string `env:"DIR"`
}

// Adapter holds configuration of the Grocy REST client.
type Adapter struct {
	// HTTPAddress is the base URL of the Grocy server
	// (e.g. "https://grocy.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// APIKey is sent in the GROCY-API-KEY header.
	// Env: ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// BreakerTimeout is how long the circuit breaker stays open before it
	// lets a probe request through.
	// Env: ADAPTER_BREAKER_TIMEOUT
	BreakerTimeout time.Duration `env:"BREAKER_TIMEOUT"`

	// BreakerMaxFailures is the number of consecutive failures that open
	// the circuit breaker.
	// Env: ADAPTER_BREAKER_MAX_FAILURES
	BreakerMaxFailures uint32 `env:"BREAKER_MAX_FAILURES"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources. For every field the first source holding a
// non-zero value wins, in the following order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// flags may be nil when the caller does not parse a command line.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		withDefaults().
		build()
}
