package simulator

// Config holds parameters for the fleet load generator.
type Config struct {
	// Target is the base URL of a running prediction service.
	Target string `json:"target"`
	// Vehicles is the synthetic fleet size when no dataset is replayed.
	Vehicles int `json:"vehicles"`
	// IntervalMS is the cadence between readings.
	IntervalMS int `json:"interval_ms"`
	// DatasetPath replays a NASA C-MAPSS file instead of synthetic data.
	DatasetPath string `json:"dataset_path"`
	// EngineID selects the engine unit to replay from the dataset.
	EngineID int `json:"engine_id"`
	// Seed fixes synthetic fleet generation; 0 seeds from the clock.
	Seed int64 `json:"seed"`
}

// SetDefaults applies the reference cadence and target.
func (c *Config) SetDefaults() {
	if c.Target == "" {
		c.Target = "http://localhost:8000"
	}
	if c.Vehicles == 0 {
		c.Vehicles = 3
	}
	if c.IntervalMS == 0 {
		c.IntervalMS = 1000
	}
	if c.EngineID == 0 {
		c.EngineID = 1
	}
}
