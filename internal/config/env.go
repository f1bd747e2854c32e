package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the environment into cfg. Variable names follow the `env`
// and `envPrefix` tags of [StructuredConfig], e.g. ADAPTER_API_KEY or
// STORAGE_PREFERENCES_DIR. Unset variables leave their fields zero so that
// flags, the JSON file and the defaults can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: false}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, err)
	}
	return nil
}
