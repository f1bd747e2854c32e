// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// required settings before it is used at startup.
//
// Field-level requirements are checked on [ClientConfig]; the structured
// form only rejects values that no source may produce.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.BreakerTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Preferences.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.BreakerMaxFailures == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
