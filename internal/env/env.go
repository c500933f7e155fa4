package env

import (
	"os"

	"github.com/Yordan777/voxclone/internal/envvar"
)

// Environment identifies the runtime environment.
type Environment string

const (
	// Development is the default environment.
	Development Environment = "development"

	// Production is the environment for deployed instances.
	Production Environment = "production"
)

// FromEnv resolves the environment from VOXCLONE_ENV.
// Anything other than "production" is treated as development.
func FromEnv() Environment {
	if os.Getenv(envvar.VoxcloneEnv) == string(Production) {
		return Production
	}

	return Development
}
