// Package clienv holds the start-up steps every command shares.
package clienv

import (
	"fmt"
	"os"

	"github.com/texnokross/texnokross/internal/infrastructure/config"
	"github.com/texnokross/texnokross/internal/shared/biztime"
	"github.com/texnokross/texnokross/internal/shared/logger"
)

// Init loads configuration and then sets up the logger and the business
// timezone. ENV in the process environment overrides the --env flag. A
// non-empty configDir replaces the default search paths.
func Init(env, configDir string) (*config.Config, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	var (
		cfg *config.Config
		err error
	)
	if configDir != "" {
		cfg, err = config.LoadFrom(GinMode(env), configDir)
	} else {
		cfg, err = config.Load(GinMode(env))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Business.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, nil
}

// GinMode maps deployment environment names to gin modes.
func GinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
