package inventory

import (
	"fmt"

	"github.com/mgirardot/partpilot/core/model"
)

// Config holds the stock counts the ledger is seeded with at process start.
type Config struct {
	Seed map[string]int `json:"seed"`
}

// SetDefaults seeds the three stock parts when no seed is configured.
func (c *Config) SetDefaults() {
	if len(c.Seed) == 0 {
		c.Seed = map[string]int{
			model.PartBrakePad.String():   5,
			model.PartEngineBelt.String(): 10,
			model.PartFilter.String():     20,
		}
	}
}

// Validate rejects negative seed counts.
func (c Config) Validate() error {
	for part, qty := range c.Seed {
		if qty < 0 {
			return fmt.Errorf("inventory seed %s: %w", part, ErrInvalidQuantity)
		}
	}
	return nil
}

// SeedMap converts the configured seed to ledger keys.
func (c Config) SeedMap() map[model.PartID]int {
	seed := make(map[model.PartID]int, len(c.Seed))
	for part, qty := range c.Seed {
		seed[model.PartID(part)] = qty
	}
	return seed
}
