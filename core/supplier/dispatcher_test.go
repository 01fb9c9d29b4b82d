package supplier

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mgirardot/partpilot/core/metrics"
	"github.com/mgirardot/partpilot/core/model"
	"github.com/mgirardot/partpilot/infra/logger"
	"github.com/mgirardot/partpilot/internal/eventbus"
)

type recordingSink struct {
	metrics.NopSink
	mu     sync.Mutex
	orders []metrics.SupplierOrderEvent
}

func (s *recordingSink) RecordSupplierOrder(ev metrics.SupplierOrderEvent) error {
	s.mu.Lock()
	s.orders = append(s.orders, ev)
	s.mu.Unlock()
	return nil
}

type failingSupplier struct{}

func (failingSupplier) PlaceOrder(context.Context, Order) (Confirmation, error) {
	return Confirmation{}, errors.New("supplier unreachable")
}

func TestEnqueueDoesNotBlock(t *testing.T) {
	sup := NewSimulated(Config{LatencyMS: 200, ETAHours: 1}, logger.NopLogger{})
	d := NewAsyncDispatcher(sup, eventbus.New(), nil, logger.NopLogger{})
	start := time.Now()
	d.Enqueue(model.PartBrakePad, 1)
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Fatalf("enqueue blocked for %s", elapsed)
	}
	d.Wait()
}

func TestOrderPlacedPublished(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	sub := bus.Subscribe()
	sink := &recordingSink{}
	sup := NewSimulated(Config{LatencyMS: 5, ETAHours: 1}, logger.NopLogger{})
	d := NewAsyncDispatcher(sup, bus, sink, logger.NopLogger{})

	d.Enqueue(model.PartBrakePad, 1)
	d.Wait()

	select {
	case e := <-sub:
		placed, ok := e.(OrderPlaced)
		if !ok {
			t.Fatalf("unexpected event %T", e)
		}
		if placed.Confirmation.Part != model.PartBrakePad || placed.Confirmation.Quantity != 1 {
			t.Fatalf("unexpected confirmation: %+v", placed.Confirmation)
		}
	case <-time.After(time.Second):
		t.Fatalf("no OrderPlaced event")
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.orders) != 1 || !sink.orders[0].Placed {
		t.Fatalf("unexpected recorded orders: %+v", sink.orders)
	}
}

func TestSupplierFailureIsContained(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	sub := bus.Subscribe()
	sink := &recordingSink{}
	d := NewAsyncDispatcher(failingSupplier{}, bus, sink, logger.NopLogger{})

	d.Enqueue(model.PartFilter, 1)
	d.Wait()

	select {
	case e := <-sub:
		t.Fatalf("failed order published %T", e)
	default:
	}
	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.orders) != 1 || sink.orders[0].Placed {
		t.Fatalf("failure not recorded: %+v", sink.orders)
	}
}
