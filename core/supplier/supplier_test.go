package supplier

import (
	"context"
	"testing"
	"time"

	"github.com/mgirardot/partpilot/core/model"
	"github.com/mgirardot/partpilot/infra/logger"
)

func TestSimulatedPlaceOrder(t *testing.T) {
	s := NewSimulated(Config{LatencyMS: 10, ETAHours: 24}, logger.NopLogger{})
	o := NewOrder(model.PartBrakePad, 1)
	if o.ID == "" {
		t.Fatalf("order has no ID")
	}
	conf, err := s.PlaceOrder(context.Background(), o)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if conf.OrderID != o.ID || conf.Part != model.PartBrakePad || conf.Quantity != 1 {
		t.Fatalf("unexpected confirmation: %+v", conf)
	}
	if conf.ETA != 24*time.Hour {
		t.Fatalf("unexpected ETA: %s", conf.ETA)
	}
}

func TestSimulatedPlaceOrderCancelled(t *testing.T) {
	s := NewSimulated(Config{LatencyMS: 5000, ETAHours: 24}, logger.NopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.PlaceOrder(ctx, NewOrder(model.PartFilter, 1)); err == nil {
		t.Fatalf("expected cancellation error")
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()
	if cfg.LatencyMS != 1500 || cfg.ETAHours != 24 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}
