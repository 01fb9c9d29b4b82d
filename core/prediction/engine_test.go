package prediction

import (
	"sync"
	"testing"

	"github.com/mgirardot/partpilot/core/model"
)

func testConfig() Config {
	cfg := Config{Seed: 42}
	cfg.SetDefaults()
	return cfg
}

func TestFlagDerivation(t *testing.T) {
	e := NewRandomEngine(testConfig())
	cases := []struct {
		name        string
		temp, vib   float64
		overheating bool
		vibrating   bool
	}{
		{"healthy", 350, 0.05, false, false},
		{"overheating", 450, 0.05, true, false},
		{"vibrating", 350, 0.6, false, true},
		{"both", 450, 0.6, true, true},
		{"at thresholds", 400, 0.2, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := e.Predict(model.SensorReading{VehicleID: "v1", Temperature: tc.temp, Vibration: tc.vib})
			if d.IsOverheating != tc.overheating || d.IsVibrating != tc.vibrating {
				t.Fatalf("flags = (%v,%v), want (%v,%v)", d.IsOverheating, d.IsVibrating, tc.overheating, tc.vibrating)
			}
		})
	}
}

func TestRULRanges(t *testing.T) {
	e := NewRandomEngine(testConfig())
	for i := 0; i < 200; i++ {
		d := e.Predict(model.SensorReading{VehicleID: "v1", Temperature: 450, Vibration: 0.05})
		if d.PredictedRUL < 5 || d.PredictedRUL > 20 {
			t.Fatalf("critical RUL %d outside [5,20]", d.PredictedRUL)
		}
		if !d.MaintenanceRequired {
			t.Fatalf("critical RUL %d did not require maintenance", d.PredictedRUL)
		}
	}
	for i := 0; i < 200; i++ {
		d := e.Predict(model.SensorReading{VehicleID: "v1", Temperature: 350, Vibration: 0.05})
		if d.PredictedRUL < 100 || d.PredictedRUL > 200 {
			t.Fatalf("healthy RUL %d outside [100,200]", d.PredictedRUL)
		}
		if d.MaintenanceRequired {
			t.Fatalf("healthy RUL %d required maintenance", d.PredictedRUL)
		}
	}
}

func TestPredictConcurrent(t *testing.T) {
	e := NewRandomEngine(testConfig())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := e.Predict(model.SensorReading{VehicleID: "v1", Temperature: 450, Vibration: 0.6})
			if d.PredictedRUL < 5 || d.PredictedRUL > 20 {
				t.Errorf("RUL %d outside critical range", d.PredictedRUL)
			}
		}()
	}
	wg.Wait()
}

func TestConfigValidate(t *testing.T) {
	cfg := testConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate defaults: %v", err)
	}
	bad := cfg
	bad.CriticalMin, bad.CriticalMax = 20, 5
	if err := bad.Validate(); err == nil {
		t.Fatalf("inverted critical range accepted")
	}
}
