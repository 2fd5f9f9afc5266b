package commands

import (
	"github.com/fieldworks/farmgate/pkg/config"
	"github.com/fieldworks/farmgate/pkg/paths"
)

// ProfileResult holds the resolved configuration profile.
type ProfileResult struct {
	Profile config.AppConfig

	// Source is the config file the profile came from, or "" when only
	// built-in defaults and environment applied
	Source string
}

// Profile resolves and returns the effective configuration profile.
func Profile(configPath string) (*ProfileResult, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	source := configPath
	if source == "" {
		source = paths.FindConfigFile()
	}

	return &ProfileResult{Profile: cfg.Profile, Source: source}, nil
}
