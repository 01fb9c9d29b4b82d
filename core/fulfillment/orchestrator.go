package fulfillment

import (
	"fmt"

	"github.com/mgirardot/partpilot/core/inventory"
	"github.com/mgirardot/partpilot/core/logger"
	"github.com/mgirardot/partpilot/core/model"
)

// OrderScheduler schedules asynchronous supplier orders. Implemented by
// supplier.AsyncDispatcher.
type OrderScheduler interface {
	Enqueue(part model.PartID, quantity int)
}

// Orchestrator resolves a diagnosed part need against the inventory
// ledger: reserve when stock is available, back-order otherwise.
type Orchestrator struct {
	ledger inventory.Ledger
	orders OrderScheduler
	log    logger.Logger
}

// New creates an orchestrator.
func New(ledger inventory.Ledger, orders OrderScheduler, log logger.Logger) *Orchestrator {
	return &Orchestrator{ledger: ledger, orders: orders, log: log}
}

// Fulfill reserves one unit of the part or schedules a supplier order.
// The reservation check is atomic and cannot partially fail, so there is
// nothing to retry; back-orders are fire-and-forget and never block the
// caller.
func (o *Orchestrator) Fulfill(part model.PartID, reason string) model.FulfillmentOutcome {
	if remaining, ok := o.ledger.TryReserve(part); ok {
		msg := fmt.Sprintf("%s: reserved %s (remaining %d)", reason, part, remaining)
		o.log.Infof("%s", msg)
		return model.FulfillmentOutcome{
			Part:           part,
			Action:         model.ActionReserved,
			Reason:         reason,
			Message:        msg,
			RemainingStock: remaining,
		}
	}

	o.orders.Enqueue(part, 1)
	msg := fmt.Sprintf("%s: %s out of stock — auto-order triggered", reason, part)
	o.log.Warnf("%s", msg)
	return model.FulfillmentOutcome{
		Part:    part,
		Action:  model.ActionBackOrdered,
		Reason:  reason,
		Message: msg,
	}
}
