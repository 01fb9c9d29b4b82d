// Package app assembles the decision service from its configuration:
// ledger, prediction engine, rule table, supplier pipeline, metrics
// sinks, HTTP server and the optional MQTT ingestor.
package app

import (
	"context"
	"fmt"

	"github.com/mgirardot/partpilot/api"
	"github.com/mgirardot/partpilot/config"
	"github.com/mgirardot/partpilot/core/decision"
	"github.com/mgirardot/partpilot/core/fulfillment"
	"github.com/mgirardot/partpilot/core/inventory"
	"github.com/mgirardot/partpilot/core/livestate"
	coremetrics "github.com/mgirardot/partpilot/core/metrics"
	"github.com/mgirardot/partpilot/core/model"
	"github.com/mgirardot/partpilot/core/prediction"
	"github.com/mgirardot/partpilot/core/supplier"
	"github.com/mgirardot/partpilot/infra/logger"
	"github.com/mgirardot/partpilot/infra/metrics"
	"github.com/mgirardot/partpilot/infra/mqtt"
	"github.com/mgirardot/partpilot/internal/eventbus"
)

// Service owns the assembled decision pipeline and its transports.
type Service struct {
	Processor *decision.Processor
	Live      *livestate.Store

	server   *api.Server
	ingestor *mqtt.Ingestor
	orders   *supplier.AsyncDispatcher
	log      logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	rules, err := cfg.RuleTable()
	if err != nil {
		return nil, fmt.Errorf("rule table: %w", err)
	}

	ledger := inventoryFromConfig(cfg)
	engine := prediction.NewRandomEngine(cfg.Prediction)
	bus := eventbus.New()
	sup := supplier.NewSimulated(cfg.Supplier, logger.New("supplier"))
	orders := supplier.NewAsyncDispatcher(sup, bus, sink, logger.New("orders"))
	orch := fulfillment.New(ledger, orders, logger.New("fulfillment"))
	live := livestate.NewStore()
	proc := decision.NewProcessor(engine, rules, orch, ledger, live, sink, logger.New("decision"))

	svc := &Service{
		Processor: proc,
		Live:      live,
		server:    api.NewServer(cfg.Server, proc, ledger, live, logger.New("api")),
		orders:    orders,
		log:       logg,
	}

	if cfg.MQTT.Enabled {
		ing, err := mqtt.NewIngestor(cfg.MQTT, svc.ingest, logger.New("mqtt"))
		if err != nil {
			return nil, fmt.Errorf("mqtt ingestor: %w", err)
		}
		svc.ingestor = ing
	}
	return svc, nil
}

// Run serves HTTP until the context is cancelled, then waits for
// in-flight supplier orders to settle.
func (s *Service) Run(ctx context.Context) error {
	err := s.server.Run(ctx)
	s.orders.Wait()
	return err
}

// Close releases the MQTT connection if one was opened.
func (s *Service) Close() error {
	if s.ingestor != nil {
		s.ingestor.Close()
	}
	return nil
}

func (s *Service) ingest(r model.SensorReading) {
	if _, err := s.Processor.Process(r); err != nil {
		s.log.Warnf("mqtt reading rejected: %v", err)
	}
}

func inventoryFromConfig(cfg *config.Config) *inventory.MemoryLedger {
	return inventory.NewMemoryLedger(cfg.Inventory.SeedMap())
}
