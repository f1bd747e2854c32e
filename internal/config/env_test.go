// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_DEBUG":    "true",
		"APP_LOG_FILE": "/var/log/grocy-sync.log",
		"APP_VERSION":  "1.2.3",

		"ADAPTER_ADDRESS":              "https://grocy.local",
		"ADAPTER_API_KEY":              "secret",
		"ADAPTER_REQUEST_TIMEOUT":      "30s",
		"ADAPTER_BREAKER_TIMEOUT":      "1m",
		"ADAPTER_BREAKER_MAX_FAILURES": "5",

		"SERVER_METRICS_ADDRESS": "localhost:9100",
		"WORKERS_SYNC_INTERVAL":  "2m",

		// Storage has nested prefixes: STORAGE_ + DB_ / PREFERENCES_
		"STORAGE_DB_DATABASE_URI": "/data/cache.db",
		"STORAGE_PREFERENCES_DIR": "/data/prefs",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "/var/log/grocy-sync.log", cfg.App.LogFile)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://grocy.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "secret", cfg.Adapter.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Adapter.BreakerTimeout)
	assert.Equal(t, uint32(5), cfg.Adapter.BreakerMaxFailures)

	assert.Equal(t, "localhost:9100", cfg.Server.MetricsAddress)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)

	assert.Equal(t, "/data/cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/data/prefs", cfg.Storage.Preferences.Dir)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ADAPTER_API_KEY":         "secret",
		"STORAGE_DB_DATABASE_URI": "/data/cache.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Adapter.APIKey)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/data/cache.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Storage.Preferences.Dir)

	assert.Equal(t, App{}, cfg.App)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Adapter{}, cfg.Adapter)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEnvConfigs)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_DEBUG": "maybe"})

	cfg := &StructuredConfig{}
	require.Error(t, parseEnv(cfg))
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"WORKERS_SYNC_INTERVAL": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Workers.SyncInterval)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_DEBUG",
		"APP_LOG_FILE",
		"APP_VERSION",

		"ADAPTER_ADDRESS",
		"ADAPTER_API_KEY",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_BREAKER_TIMEOUT",
		"ADAPTER_BREAKER_MAX_FAILURES",

		"SERVER_METRICS_ADDRESS",
		"WORKERS_SYNC_INTERVAL",

		"STORAGE_DB_DATABASE_URI",
		"STORAGE_PREFERENCES_DIR",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
