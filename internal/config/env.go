// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"confeval/models"
)

// envPrefix is prepended to every env tag lookup on [models.Params], so the
// overrides read CONFEVAL_PARAMETER_1, CONFEVAL_PARAMETER_3, CONFEVAL_PARAMETER_5.
const envPrefix = "CONFEVAL_"

// parseEnv populates params from environment variables using the
// caarlos0/env library. Struct fields are mapped via their `env` tags
// defined on [models.Params].
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(params *models.Params) error {
	err := env.ParseWithOptions(params, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env overrides: %w", err)
	}

	return nil
}
