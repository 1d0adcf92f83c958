package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix is prepended to every env tag lookup, so the refresh token is
// read from QCC_REFRESH_TOKEN, the host from QCC_HOST, and so on.
const envPrefix = "QCC_"

// parseEnv populates src from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` tags defined on
// [settingsSource].
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(src *settingsSource) error {
	err := env.ParseWithOptions(src, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env settings: %w", err)
	}

	return nil
}
