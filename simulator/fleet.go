package simulator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mgirardot/partpilot/core/model"
)

// SimulatedVehicle produces a degrading stream of sensor readings: each
// cycle drifts temperature and vibration upward from the vehicle's
// baseline, with per-reading jitter.
type SimulatedVehicle struct {
	ID        string
	BaseTemp  float64
	BaseVib   float64
	TempDrift float64 // temperature added per cycle
	VibDrift  float64 // vibration added per cycle

	rng *rand.Rand
}

// GenerateFleet creates size vehicles with IDs TRUCK-001..TRUCK-NNN.
// Baselines are drawn once per vehicle, so two fleets from the same seed
// are identical.
func GenerateFleet(cfg Config) []*SimulatedVehicle {
	if cfg.Vehicles <= 0 {
		return nil
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	vs := make([]*SimulatedVehicle, cfg.Vehicles)
	for i := range vs {
		vs[i] = &SimulatedVehicle{
			ID:        fmt.Sprintf("TRUCK-%03d", i+1),
			BaseTemp:  320 + rng.Float64()*40,
			BaseVib:   0.02 + rng.Float64()*0.05,
			TempDrift: 0.5 + rng.Float64()*1.5,
			VibDrift:  0.001 + rng.Float64()*0.004,
			rng:       rand.New(rand.NewSource(rng.Int63())),
		}
	}
	return vs
}

// Reading returns the vehicle's sample for the given cycle.
func (v *SimulatedVehicle) Reading(cycle int) model.SensorReading {
	temp := v.BaseTemp + float64(cycle)*v.TempDrift + v.rng.Float64()*5
	vib := v.BaseVib + float64(cycle)*v.VibDrift + v.rng.Float64()*0.01
	if vib < 0 {
		vib = 0
	}
	return model.SensorReading{
		VehicleID:   v.ID,
		RPM:         5500 + v.rng.Float64()*1000,
		Vibration:   vib,
		Temperature: temp,
		Timestamp:   time.Now().Format("15:04:05"),
	}
}
