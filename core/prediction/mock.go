package prediction

import "github.com/mgirardot/partpilot/core/model"

// FixedEngine is a deterministic Engine for tests. Flag derivation uses
// the same thresholds as RandomEngine; the RUL draw is replaced by fixed
// values per range.
type FixedEngine struct {
	Config      Config
	CriticalRUL int
	HealthyRUL  int
}

// Predict mirrors RandomEngine without randomness.
func (e FixedEngine) Predict(r model.SensorReading) model.Diagnosis {
	overheating := r.Temperature > e.Config.TempThreshold
	vibrating := r.Vibration > e.Config.VibThreshold
	rul := e.HealthyRUL
	if overheating || vibrating {
		rul = e.CriticalRUL
	}
	return model.Diagnosis{
		PredictedRUL:        rul,
		MaintenanceRequired: rul < e.Config.RULCutoff,
		IsOverheating:       overheating,
		IsVibrating:         vibrating,
	}
}
