package model

import "fmt"

// SensorReading is one telemetry sample reported by a vehicle.
type SensorReading struct {
	VehicleID   string  `json:"vehicle_id"`
	RPM         float64 `json:"rpm"`
	Vibration   float64 `json:"vibration"`   // unitless, expected 0 to 1
	Temperature float64 `json:"temperature"` // expected 300 to 600
	Timestamp   string  `json:"timestamp"`
}

// Validate rejects readings that cannot enter the decision pipeline.
// Readings are immutable once accepted.
func (r SensorReading) Validate() error {
	if r.VehicleID == "" {
		return fmt.Errorf("vehicle_id is required")
	}
	if r.Vibration < 0 {
		return fmt.Errorf("vibration must not be negative, got %g", r.Vibration)
	}
	if r.Temperature <= 0 {
		return fmt.Errorf("temperature must be positive, got %g", r.Temperature)
	}
	return nil
}

// Diagnosis is the outcome of the prediction stage for one reading.
// It is derived per request and never stored.
type Diagnosis struct {
	PredictedRUL        int  `json:"predicted_rul"` // remaining useful life in days
	MaintenanceRequired bool `json:"maintenance_required"`
	IsOverheating       bool `json:"is_overheating"`
	IsVibrating         bool `json:"is_vibrating"`
}
