package metrics

import (
	"errors"

	coremetrics "github.com/mgirardot/partpilot/core/metrics"
	"github.com/mgirardot/partpilot/core/model"
)

// MultiSink fans events out to several sinks, collecting all errors.
type MultiSink struct {
	sinks []coremetrics.Sink
}

// NewMultiSink creates a sink writing to all given sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordDecision(ev coremetrics.DecisionEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordDecision(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordSupplierOrder(ev coremetrics.SupplierOrderEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordSupplierOrder(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordInventoryLevel(part model.PartID, stock int) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordInventoryLevel(part, stock); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
