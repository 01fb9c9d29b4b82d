package prediction

import (
	"testing"

	"github.com/mgirardot/partpilot/core/model"
)

func TestFixedEngine(t *testing.T) {
	e := FixedEngine{Config: testConfig(), CriticalRUL: 10, HealthyRUL: 150}
	d := e.Predict(model.SensorReading{VehicleID: "v1", Temperature: 450, Vibration: 0.05})
	if d.PredictedRUL != 10 || !d.MaintenanceRequired || !d.IsOverheating || d.IsVibrating {
		t.Fatalf("unexpected critical diagnosis: %+v", d)
	}
	d = e.Predict(model.SensorReading{VehicleID: "v1", Temperature: 350, Vibration: 0.05})
	if d.PredictedRUL != 150 || d.MaintenanceRequired {
		t.Fatalf("unexpected healthy diagnosis: %+v", d)
	}
}
