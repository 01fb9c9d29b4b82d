// Package simulator generates prediction load against a running service,
// either from a synthetic degrading fleet or by replaying a NASA C-MAPSS
// telemetry file.
package simulator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mgirardot/partpilot/core/decision"
	"github.com/mgirardot/partpilot/core/logger"
	"github.com/mgirardot/partpilot/core/model"
)

// Runner streams readings to the prediction endpoint at a fixed cadence.
type Runner struct {
	cfg    Config
	client *http.Client
	log    logger.Logger
}

// NewRunner creates a runner with a dedicated HTTP client.
func NewRunner(cfg Config, log logger.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

// Run streams readings until the context is cancelled or, when replaying a
// dataset, until the recording ends.
func (r *Runner) Run(ctx context.Context) error {
	var next func(cycle int) (model.SensorReading, bool)
	if r.cfg.DatasetPath != "" {
		readings, err := LoadDataset(r.cfg.DatasetPath, r.cfg.EngineID)
		if err != nil {
			return err
		}
		r.log.Infof("replaying %d cycles for engine %d", len(readings), r.cfg.EngineID)
		next = func(cycle int) (model.SensorReading, bool) {
			if cycle >= len(readings) {
				return model.SensorReading{}, false
			}
			return readings[cycle], true
		}
	} else {
		fleet := GenerateFleet(r.cfg)
		r.log.Infof("streaming synthetic fleet of %d vehicles", len(fleet))
		next = func(cycle int) (model.SensorReading, bool) {
			v := fleet[cycle%len(fleet)]
			return v.Reading(cycle / len(fleet)), true
		}
	}

	ticker := time.NewTicker(time.Duration(r.cfg.IntervalMS) * time.Millisecond)
	defer ticker.Stop()
	for cycle := 0; ; cycle++ {
		reading, ok := next(cycle)
		if !ok {
			r.log.Infof("dataset exhausted after %d cycles", cycle)
			return nil
		}
		if err := r.send(ctx, reading); err != nil {
			r.log.Errorf("send %s: %v", reading.VehicleID, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (r *Runner) send(ctx context.Context, reading model.SensorReading) error {
	body, err := json.Marshal(reading)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.Target+"/predict", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("predict returned %s", resp.Status)
	}
	var dec decision.Response
	if err := json.NewDecoder(resp.Body).Decode(&dec); err != nil {
		return err
	}
	r.log.Infof("%s: temp=%.1f vib=%.2f rul=%d action=%q",
		reading.VehicleID, reading.Temperature, reading.Vibration, dec.PredictedRUL, dec.ActionTaken)
	return nil
}
