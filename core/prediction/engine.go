package prediction

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mgirardot/partpilot/core/model"
)

// Engine maps a sensor reading to a maintenance diagnosis.
type Engine interface {
	Predict(r model.SensorReading) model.Diagnosis
}

// Config holds the model thresholds and RUL draw ranges.
type Config struct {
	// TempThreshold flags a reading as overheating when exceeded.
	TempThreshold float64 `json:"temp_threshold"`
	// VibThreshold flags a reading as vibrating when exceeded. Informal
	// deployments have used anything between 0.2 and 0.5; the default
	// matches the reference behaviour.
	VibThreshold float64 `json:"vib_threshold"`
	// RULCutoff is the RUL in days below which maintenance is required.
	RULCutoff int `json:"rul_cutoff"`
	// Critical and healthy draw ranges, inclusive, in days.
	CriticalMin int `json:"critical_min"`
	CriticalMax int `json:"critical_max"`
	HealthyMin  int `json:"healthy_min"`
	HealthyMax  int `json:"healthy_max"`
	// Seed fixes the randomness source; 0 seeds from the clock.
	Seed uint64 `json:"seed"`
}

// SetDefaults applies the reference thresholds.
func (c *Config) SetDefaults() {
	if c.TempThreshold == 0 {
		c.TempThreshold = 400.0
	}
	if c.VibThreshold == 0 {
		c.VibThreshold = 0.2
	}
	if c.RULCutoff == 0 {
		c.RULCutoff = 30
	}
	if c.CriticalMin == 0 && c.CriticalMax == 0 {
		c.CriticalMin, c.CriticalMax = 5, 20
	}
	if c.HealthyMin == 0 && c.HealthyMax == 0 {
		c.HealthyMin, c.HealthyMax = 100, 200
	}
}

// Validate checks that the draw ranges are ordered.
func (c Config) Validate() error {
	if c.CriticalMin > c.CriticalMax {
		return fmt.Errorf("critical range [%d,%d] is inverted", c.CriticalMin, c.CriticalMax)
	}
	if c.HealthyMin > c.HealthyMax {
		return fmt.Errorf("healthy range [%d,%d] is inverted", c.HealthyMin, c.HealthyMax)
	}
	if c.RULCutoff <= 0 {
		return fmt.Errorf("rul_cutoff must be positive, got %d", c.RULCutoff)
	}
	return nil
}

// RandomEngine is the placeholder model: deterministic flag derivation,
// uniform RUL draw within the range selected by the flags. The randomness
// source is owned by the engine and guarded by a mutex, so Predict is safe
// to call from concurrent request handlers.
type RandomEngine struct {
	cfg Config

	mu       sync.Mutex
	critical distuv.Uniform
	healthy  distuv.Uniform
}

// NewRandomEngine creates an engine with its own seeded randomness source.
func NewRandomEngine(cfg Config) *RandomEngine {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewSource(seed)
	return &RandomEngine{
		cfg: cfg,
		// Max is exclusive in distuv; +1 keeps the integer range inclusive.
		critical: distuv.Uniform{Min: float64(cfg.CriticalMin), Max: float64(cfg.CriticalMax + 1), Src: src},
		healthy:  distuv.Uniform{Min: float64(cfg.HealthyMin), Max: float64(cfg.HealthyMax + 1), Src: src},
	}
}

// Predict never fails; it always returns a diagnosis.
func (e *RandomEngine) Predict(r model.SensorReading) model.Diagnosis {
	overheating := r.Temperature > e.cfg.TempThreshold
	vibrating := r.Vibration > e.cfg.VibThreshold

	e.mu.Lock()
	var rul int
	if overheating || vibrating {
		rul = int(e.critical.Rand())
	} else {
		rul = int(e.healthy.Rand())
	}
	e.mu.Unlock()

	return model.Diagnosis{
		PredictedRUL:        rul,
		MaintenanceRequired: rul < e.cfg.RULCutoff,
		IsOverheating:       overheating,
		IsVibrating:         vibrating,
	}
}
