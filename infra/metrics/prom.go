package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/mgirardot/partpilot/core/metrics"
	"github.com/mgirardot/partpilot/core/model"
)

// PromSink records decision-service events in Prometheus metrics.
type PromSink struct {
	decisions *prometheus.CounterVec
	rul       *prometheus.HistogramVec
	orders    *prometheus.CounterVec
	stock     *prometheus.GaugeVec
}

// NewPromSink registers decision metrics on the default Prometheus
// registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "prediction_decisions_total",
		Help: "Total number of processed prediction requests",
	}, []string{"maintenance_required", "action"})
	rul := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "predicted_rul_days",
		Help:    "Distribution of predicted remaining useful life in days",
		Buckets: []float64{5, 10, 20, 30, 50, 100, 150, 200},
	}, []string{"maintenance_required"})
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "supplier_orders_total",
		Help: "Total number of background supplier orders",
	}, []string{"part", "placed"})
	stock := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "inventory_stock",
		Help: "Current stock count per spare part",
	}, []string{"part"})

	if err := reg.Register(decisions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			decisions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(rul); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			rul = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(orders); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			orders = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(stock); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			stock = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{decisions: decisions, rul: rul, orders: orders, stock: stock}, nil
}

// RecordDecision increments the decision counter and observes the RUL.
func (s *PromSink) RecordDecision(ev coremetrics.DecisionEvent) error {
	maint := strconv.FormatBool(ev.MaintenanceRequired)
	action := string(ev.Action)
	if action == "" {
		action = "NONE"
	}
	s.decisions.WithLabelValues(maint, action).Inc()
	s.rul.WithLabelValues(maint).Observe(float64(ev.PredictedRUL))
	return nil
}

// RecordSupplierOrder counts one background order attempt.
func (s *PromSink) RecordSupplierOrder(ev coremetrics.SupplierOrderEvent) error {
	s.orders.WithLabelValues(ev.Part.String(), strconv.FormatBool(ev.Placed)).Inc()
	return nil
}

// RecordInventoryLevel sets the per-part stock gauge.
func (s *PromSink) RecordInventoryLevel(part model.PartID, stock int) error {
	s.stock.WithLabelValues(part.String()).Set(float64(stock))
	return nil
}
