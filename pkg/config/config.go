// Package config loads farmgate configuration the layered way: built-in
// defaults, then an optional config file (TOML or YAML), then FARMGATE_*
// environment variables. The result is decoded into a typed Config.
package config

import (
	"path/filepath"
	"strings"

	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/fieldworks/farmgate/pkg/errors"
	"github.com/fieldworks/farmgate/pkg/logging"
	"github.com/fieldworks/farmgate/pkg/paths"
	"github.com/fieldworks/farmgate/pkg/types"
)

// envPrefix is the prefix for configuration environment variables, e.g.
// FARMGATE_PROFILE_LOCATION=east.
const envPrefix = "FARMGATE_"

// AppConfig is the immutable configuration profile consulted by the rule
// stages. It is built once per run and never mutated.
type AppConfig struct {
	SpecialPermission bool           `koanf:"special_permission" toml:"special_permission" yaml:"special_permission"`
	UserType          types.UserType `koanf:"user_type" toml:"user_type" yaml:"user_type"`
	Weekend           bool           `koanf:"weekend" toml:"weekend" yaml:"weekend"`
	ActiveUser        bool           `koanf:"active_user" toml:"active_user" yaml:"active_user"`
	HighPriority      bool           `koanf:"high_priority" toml:"high_priority" yaml:"high_priority"`
	Location          types.Location `koanf:"location" toml:"location" yaml:"location"`
}

// Pipeline holds the ordered stage names the intake pipeline runs.
type Pipeline struct {
	Stages []string `koanf:"stages" toml:"stages" yaml:"stages"`
}

// Config is the full farmgate configuration.
type Config struct {
	Profile  AppConfig     `koanf:"profile" toml:"profile" yaml:"profile"`
	Pipeline Pipeline      `koanf:"pipeline" toml:"pipeline" yaml:"pipeline"`
	Request  types.Request `koanf:"request" toml:"request" yaml:"request"`
}

// Load builds the configuration. An explicit path wins; with an empty path
// the standard search order from pkg/paths applies, and a missing file is not
// an error (defaults plus environment still apply).
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, ktoml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}

	if path == "" {
		path = paths.FindConfigFile()
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	return decode(k)
}

// LoadKoanf decodes an already-populated koanf instance. Tests use this with
// the confmap provider.
func LoadKoanf(k *koanf.Koanf) (*Config, error) {
	return decode(k)
}

// Default returns the built-in configuration with no file or environment
// layers applied.
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, ktoml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}
	return decode(k)
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	userType, err := types.ParseUserType(string(cfg.Profile.UserType))
	if err != nil {
		return nil, err
	}
	cfg.Profile.UserType = userType

	location, err := types.ParseLocation(string(cfg.Profile.Location))
	if err != nil {
		return nil, err
	}
	cfg.Profile.Location = location

	if len(cfg.Pipeline.Stages) == 0 {
		return nil, errors.New(errors.ErrConfigValid, "pipeline must list at least one stage")
	}

	return &cfg, nil
}

// envKey maps FARMGATE_PROFILE_SPECIAL_PERMISSION to
// profile.special_permission: the first underscore separates the section,
// the remainder is the key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	parts := strings.SplitN(s, "_", 2)
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + "." + parts[1]
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return ktoml.Parser(), nil
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format %q", ext)
	}
}
