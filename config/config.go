package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mgirardot/partpilot/api"
	"github.com/mgirardot/partpilot/core/diagnosis"
	"github.com/mgirardot/partpilot/core/inventory"
	"github.com/mgirardot/partpilot/core/metrics"
	"github.com/mgirardot/partpilot/core/prediction"
	"github.com/mgirardot/partpilot/core/supplier"
	"github.com/mgirardot/partpilot/infra/mqtt"
	"github.com/mgirardot/partpilot/simulator"
)

// Config aggregates all component settings.
type Config struct {
	Server     api.Config             `json:"server"`
	Prediction prediction.Config      `json:"prediction"`
	Rules      []diagnosis.RuleConfig `json:"rules"`
	Inventory  inventory.Config       `json:"inventory"`
	Supplier   supplier.Config        `json:"supplier"`
	Metrics    metrics.Config         `json:"metrics"`
	MQTT       mqtt.Config            `json:"mqtt"`
	Simulator  simulator.Config       `json:"simulator"`
}

// Load reads the configuration file, applies PP_-prefixed environment
// overrides, fills defaults and validates the result.
func Load(path string) (*Config, error) {
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
	// Optional environment overrides
	if err := k.Load(env.Provider("PP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "pp_")
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

// SetDefaults fills every sub-config.
func (c *Config) SetDefaults() {
	c.Server.SetDefaults()
	c.Prediction.SetDefaults()
	c.Inventory.SetDefaults()
	c.Supplier.SetDefaults()
	c.MQTT.SetDefaults()
	c.Simulator.SetDefaults()
}

// Validate checks each sub-config and the cross-component invariant that
// every part a diagnostic rule can require is seeded in the ledger.
func (c Config) Validate() error {
	if err := c.Prediction.Validate(); err != nil {
		return err
	}
	if err := c.Inventory.Validate(); err != nil {
		return err
	}
	if err := c.MQTT.Validate(); err != nil {
		return err
	}
	table, err := diagnosis.TableFromConfig(c.Rules)
	if err != nil {
		return err
	}
	seed := c.Inventory.SeedMap()
	for _, part := range table.Parts() {
		if _, ok := seed[part]; !ok {
			return fmt.Errorf("rule part %s is not seeded in the inventory", part)
		}
	}
	return nil
}

// RuleTable builds the diagnostic rule table. Load has already validated
// the rules, so errors only occur on hand-built configs.
func (c Config) RuleTable() (*diagnosis.RuleTable, error) {
	return diagnosis.TableFromConfig(c.Rules)
}
