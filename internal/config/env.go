// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Voronkov

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates settings from environment variables using the
// caarlos0/env library. Struct fields are mapped via their `env` and
// `envPrefix` tags defined on [Settings] and its nested types.
func parseEnv(settings any) error {
	err := env.Parse(settings)
	if err != nil {
		return fmt.Errorf("error getting env settings: %w", err)
	}

	return nil
}
