package supplier

import (
	"context"
	"sync"
	"time"

	"github.com/mgirardot/partpilot/core/logger"
	"github.com/mgirardot/partpilot/core/metrics"
	"github.com/mgirardot/partpilot/core/model"
	"github.com/mgirardot/partpilot/internal/eventbus"
)

// OrderPlaced is published on the event bus once a supplier confirms an
// order. It is append-only observability output; nothing on the request
// path consumes it.
type OrderPlaced struct {
	Confirmation Confirmation
}

// AsyncDispatcher runs supplier orders off the request path. Enqueue never
// blocks the caller; each order runs on its own goroutine, and a failed
// order is logged and recorded but never surfaces to any request. Once
// scheduled an order is never cancelled.
type AsyncDispatcher struct {
	sup  Supplier
	bus  eventbus.EventBus
	sink metrics.Sink
	log  logger.Logger
	wg   sync.WaitGroup
}

// NewAsyncDispatcher creates a dispatcher publishing confirmations on bus.
func NewAsyncDispatcher(sup Supplier, bus eventbus.EventBus, sink metrics.Sink, log logger.Logger) *AsyncDispatcher {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &AsyncDispatcher{sup: sup, bus: bus, sink: sink, log: log}
}

// Enqueue schedules an order and returns immediately.
func (d *AsyncDispatcher) Enqueue(part model.PartID, quantity int) {
	o := NewOrder(part, quantity)
	d.log.Infof("auto-order scheduled: %d x %s (order %s)", quantity, part, o.ID)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.place(o)
	}()
}

func (d *AsyncDispatcher) place(o Order) {
	conf, err := d.sup.PlaceOrder(context.Background(), o)
	ev := metrics.SupplierOrderEvent{
		OrderID:  o.ID,
		Part:     o.Part,
		Quantity: o.Quantity,
		Placed:   err == nil,
		Time:     time.Now().UTC(),
	}
	if rerr := d.sink.RecordSupplierOrder(ev); rerr != nil {
		d.log.Warnf("record supplier order %s: %v", o.ID, rerr)
	}
	if err != nil {
		// Terminal but isolated: the physical reorder may be missed,
		// the ledger and request path stay untouched.
		d.log.Errorf("supplier order %s failed: %v", o.ID, err)
		return
	}
	if d.bus != nil {
		d.bus.Publish(OrderPlaced{Confirmation: conf})
	}
}

// Wait blocks until every in-flight order has settled. Used on shutdown
// and by tests; the request path never calls it.
func (d *AsyncDispatcher) Wait() {
	d.wg.Wait()
}
