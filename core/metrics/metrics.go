package metrics

import (
	"time"

	"github.com/mgirardot/partpilot/core/model"
)

// DecisionEvent is one processed prediction request.
type DecisionEvent struct {
	VehicleID           string
	PredictedRUL        int
	MaintenanceRequired bool
	Part                model.PartID // empty when no maintenance was required
	Action              model.Action // empty when no maintenance was required
	Time                time.Time
}

// SupplierOrderEvent records the outcome of one background supplier order.
type SupplierOrderEvent struct {
	OrderID  string
	Part     model.PartID
	Quantity int
	Placed   bool
	Time     time.Time
}

// Sink records decision-service events for observability purposes.
type Sink interface {
	RecordDecision(ev DecisionEvent) error
	RecordSupplierOrder(ev SupplierOrderEvent) error
	RecordInventoryLevel(part model.PartID, stock int) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordDecision(DecisionEvent) error           { return nil }
func (NopSink) RecordSupplierOrder(SupplierOrderEvent) error { return nil }
func (NopSink) RecordInventoryLevel(model.PartID, int) error { return nil }
