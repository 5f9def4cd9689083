// Package config loads and validates the scenario configuration. The loaded
// Config is the explicit immutable input of a run: appliance table, grid
// outage schedule, generator calibration and financial constants all live
// here, never in package-level state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultPath is where the CLI looks for a configuration file before falling
// back to the built-in scenario.
const DefaultPath = "config.yaml"

// Config is the full scenario description.
type Config struct {
	Scenario    string            `json:"scenario"`
	Household   HouseholdConfig   `json:"household"`
	Grid        GridConfig        `json:"grid"`
	Generator   GeneratorConfig   `json:"generator"`
	Economics   EconomicsConfig   `json:"economics"`
	Sensitivity SensitivityConfig `json:"sensitivity"`
	Sinks       SinksConfig       `json:"sinks"`
}

// Load reads the configuration file at path. Yaml and json are selected by
// extension, and GC_-prefixed environment variables override file values
// (GC_GENERATOR__FUEL_PRICE_NGN=1200 overrides generator.fuel_price_ngn).
// When path is DefaultPath and no such file exists, the built-in scenario is
// returned instead.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && path == DefaultPath {
		cfg := Default()
		return &cfg, nil
	}
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("GC_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "gc_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills unset sections with the built-in scenario values.
func (c *Config) SetDefaults() {
	if c.Scenario == "" {
		c.Scenario = "urban-household"
	}
	c.Household.SetDefaults()
	c.Grid.SetDefaults()
	c.Generator.SetDefaults()
	c.Economics.SetDefaults()
	c.Sensitivity.SetDefaults()
	c.Sinks.SetDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Household.Validate(); err != nil {
		return err
	}
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if err := c.Generator.Validate(); err != nil {
		return err
	}
	if err := c.Economics.Model().Validate(); err != nil {
		return err
	}
	if err := c.Sensitivity.Model().Validate(); err != nil {
		return err
	}
	return c.Sinks.Validate()
}
