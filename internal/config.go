package internal

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the plain values the core consumes: link defaults and the
// assumed end-of-work time for trailing orphans.
type Config struct {
	DefaultOrg       string `yaml:"default_org"`
	DefaultRepo      string `yaml:"default_repo"`
	AssumedEndOfWork string `yaml:"assumed_end_of_work"` // "HH:MM", empty to disable

	eow *TimeOfDay // parsed once by LoadConfig
}

// LoadConfig reads the yaml config file at path. A missing file is not an
// error; it yields zero-value defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, &ConfigError{Path: path, Err: err}
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ConfigError{Path: path, Err: err}
	}
	if cfg.AssumedEndOfWork != "" {
		tod, err := ParseTimeOfDay(cfg.AssumedEndOfWork)
		if err != nil {
			return cfg, &ConfigError{Path: path, Err: err}
		}
		cfg.eow = &tod
	}
	return cfg, nil
}

// LinkConfig extracts the link resolver defaults.
func (c Config) LinkConfig() LinkConfig {
	return LinkConfig{DefaultOrg: c.DefaultOrg, DefaultRepo: c.DefaultRepo}
}

// EOW returns the assumed end-of-work time parsed by LoadConfig, or nil
// when unset.
func (c Config) EOW() *TimeOfDay {
	return c.eow
}
