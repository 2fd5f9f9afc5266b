package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/fieldworks/farmgate/pkg/errors"
)

// MarshalTOML renders the configuration as TOML, for gen-config --effective.
func (c *Config) MarshalTOML() ([]byte, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return out, nil
}
