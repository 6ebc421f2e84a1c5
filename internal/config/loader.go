package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Sentinel error kinds for this package, usable with errors.Is from callers.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

const (
	envPrefix  = "AFL_"
	envFileVar = "AFL_CONFIG"
)

// Load builds a Config by layering defaults, an optional YAML file, and env
// vars. Order of precedence (low -> high):
//  1. Defaults(now)
//  2. YAML file named by AFL_CONFIG
//  3. env vars with prefix AFL_; a double underscore separates nesting,
//     e.g. AFL_ODDS__API_KEY -> odds.api_key, AFL_SEASON -> season.
func Load() (Config, error) {
	cfg := Defaults(time.Now())

	k := koanf.New(".")

	if path := os.Getenv(envFileVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, errors.Join(ErrLoadConfig, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, errors.Join(ErrLoadConfig, err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, errors.Join(ErrLoadConfig, err)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Port == "" {
		return errors.Join(ErrInvalidConfig, errors.New("port must not be empty"))
	}
	if cfg.Season < 1897 { // first VFL season; anything earlier is a typo
		return errors.Join(ErrInvalidConfig, errors.New("season out of range"))
	}
	if cfg.Squiggle.BaseURL == "" {
		return errors.Join(ErrInvalidConfig, errors.New("squiggle.base_url must not be empty"))
	}
	if cfg.Odds.Enabled && cfg.Odds.APIKey == "" {
		return errors.Join(ErrInvalidConfig, errors.New("odds.api_key required when odds.enabled"))
	}
	return nil
}
