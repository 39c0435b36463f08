// Package envconfig applies PETHUB_* environment overrides to config structs.
package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Prefix is prepended to every env tag.
const Prefix = "PETHUB_"

// Parse fills target from the environment. Fields whose variable is unset
// keep the value they already had, so callers pre-populate defaults.
func Parse(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: Prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
