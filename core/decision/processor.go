// Package decision wires the prediction pipeline: validate, predict,
// diagnose, fulfill, publish. One Processor serves all transports (HTTP,
// MQTT ingest, CLI).
package decision

import (
	"fmt"
	"time"

	"github.com/mgirardot/partpilot/core/diagnosis"
	"github.com/mgirardot/partpilot/core/fulfillment"
	"github.com/mgirardot/partpilot/core/inventory"
	"github.com/mgirardot/partpilot/core/livestate"
	"github.com/mgirardot/partpilot/core/logger"
	"github.com/mgirardot/partpilot/core/metrics"
	"github.com/mgirardot/partpilot/core/model"
	"github.com/mgirardot/partpilot/core/prediction"
)

// NoActionMessage is returned when a reading does not require maintenance.
const NoActionMessage = "No action needed"

// Response is the payload returned to the prediction caller.
type Response struct {
	VehicleID           string               `json:"vehicle_id"`
	PredictedRUL        int                  `json:"predicted_rul"`
	MaintenanceRequired bool                 `json:"maintenance_required"`
	ActionTaken         string               `json:"action_taken"`
	InventorySnapshot   map[model.PartID]int `json:"inventory_snapshot"`
}

// Processor runs the decision pipeline for one sensor reading at a time.
// It is safe for concurrent use: the ledger and the live store are the
// only shared state, and both guard their own mutation.
type Processor struct {
	engine prediction.Engine
	rules  *diagnosis.RuleTable
	orch   *fulfillment.Orchestrator
	ledger inventory.Ledger
	live   *livestate.Store
	sink   metrics.Sink
	log    logger.Logger
}

// NewProcessor creates a processor.
func NewProcessor(
	engine prediction.Engine,
	rules *diagnosis.RuleTable,
	orch *fulfillment.Orchestrator,
	ledger inventory.Ledger,
	live *livestate.Store,
	sink metrics.Sink,
	log logger.Logger,
) *Processor {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Processor{engine: engine, rules: rules, orch: orch, ledger: ledger, live: live, sink: sink, log: log}
}

// Process runs the full pipeline synchronously except for supplier orders,
// which the orchestrator schedules off the request path. A validation
// failure rejects the reading before any state is touched; every accepted
// reading produces a complete response, with unavailability reported as
// data rather than an error.
func (p *Processor) Process(r model.SensorReading) (Response, error) {
	if err := r.Validate(); err != nil {
		return Response{}, fmt.Errorf("invalid reading: %w", err)
	}

	d := p.engine.Predict(r)
	action := NoActionMessage
	var outcome *model.FulfillmentOutcome
	if d.MaintenanceRequired {
		rule, err := p.rules.Diagnose(d.IsOverheating, d.IsVibrating)
		if err != nil {
			// Defensive: reachable only with a non-default rule table.
			p.log.Warnf("vehicle %s: %v", r.VehicleID, err)
			action = "maintenance required (no matching rule)"
		} else {
			out := p.orch.Fulfill(rule.Part, rule.Reason)
			outcome = &out
			action = out.Message
		}
	}

	trace := model.DecisionTrace{
		VehicleID:   r.VehicleID,
		Timestamp:   r.Timestamp,
		Sensors:     r,
		Diagnosis:   d,
		Fulfillment: outcome,
		ActionTaken: action,
	}
	p.live.Publish(trace)
	p.record(trace)

	return Response{
		VehicleID:           r.VehicleID,
		PredictedRUL:        d.PredictedRUL,
		MaintenanceRequired: d.MaintenanceRequired,
		ActionTaken:         action,
		InventorySnapshot:   p.ledger.Snapshot(),
	}, nil
}

func (p *Processor) record(trace model.DecisionTrace) {
	ev := metrics.DecisionEvent{
		VehicleID:           trace.VehicleID,
		PredictedRUL:        trace.Diagnosis.PredictedRUL,
		MaintenanceRequired: trace.Diagnosis.MaintenanceRequired,
		Time:                time.Now().UTC(),
	}
	if trace.Fulfillment != nil {
		ev.Part = trace.Fulfillment.Part
		ev.Action = trace.Fulfillment.Action
	}
	if err := p.sink.RecordDecision(ev); err != nil {
		p.log.Warnf("record decision: %v", err)
	}
	for part, stock := range p.ledger.Snapshot() {
		if err := p.sink.RecordInventoryLevel(part, stock); err != nil {
			p.log.Warnf("record inventory level: %v", err)
			break
		}
	}
}
