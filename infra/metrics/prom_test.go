package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/mgirardot/partpilot/core/metrics"
	"github.com/mgirardot/partpilot/core/model"
)

func TestPromSinkRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}

	ev := coremetrics.DecisionEvent{
		VehicleID:           "TRUCK-100",
		PredictedRUL:        12,
		MaintenanceRequired: true,
		Part:                model.PartEngineBelt,
		Action:              model.ActionReserved,
		Time:                time.Now(),
	}
	if err := sink.RecordDecision(ev); err != nil {
		t.Fatalf("record decision: %v", err)
	}
	if got := testutil.ToFloat64(sink.decisions.WithLabelValues("true", "RESERVED")); got != 1 {
		t.Fatalf("decision counter = %v, want 1", got)
	}

	if err := sink.RecordSupplierOrder(coremetrics.SupplierOrderEvent{Part: model.PartBrakePad, Quantity: 1, Placed: true}); err != nil {
		t.Fatalf("record order: %v", err)
	}
	if got := testutil.ToFloat64(sink.orders.WithLabelValues("BRAKE_PAD", "true")); got != 1 {
		t.Fatalf("order counter = %v, want 1", got)
	}

	if err := sink.RecordInventoryLevel(model.PartFilter, 20); err != nil {
		t.Fatalf("record level: %v", err)
	}
	if got := testutil.ToFloat64(sink.stock.WithLabelValues("FILTER")); got != 20 {
		t.Fatalf("stock gauge = %v, want 20", got)
	}
}

func TestPromSinkDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("second registration: %v", err)
	}
}
