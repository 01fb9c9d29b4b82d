package supplier

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mgirardot/partpilot/core/logger"
	"github.com/mgirardot/partpilot/core/model"
)

// Order is a purchase order for a spare part.
type Order struct {
	ID       string
	Part     model.PartID
	Quantity int
}

// Confirmation reports an order accepted by the supplier.
type Confirmation struct {
	OrderID  string
	Part     model.PartID
	Quantity int
	ETA      time.Duration
	PlacedAt time.Time
}

// Supplier places purchase orders with an external parts supplier.
type Supplier interface {
	PlaceOrder(ctx context.Context, o Order) (Confirmation, error)
}

// Config holds parameters of the simulated supplier call.
type Config struct {
	// LatencyMS is the simulated network round trip per order.
	LatencyMS int `json:"latency_ms"`
	// ETAHours is the delivery estimate returned with each confirmation.
	ETAHours int `json:"eta_hours"`
}

// SetDefaults applies the reference latency and ETA.
func (c *Config) SetDefaults() {
	if c.LatencyMS == 0 {
		c.LatencyMS = 1500
	}
	if c.ETAHours == 0 {
		c.ETAHours = 24
	}
}

// Simulated mimics a slow external supplier API. Orders always succeed
// after the configured latency unless the context is cancelled first.
type Simulated struct {
	latency time.Duration
	eta     time.Duration
	log     logger.Logger
}

// NewSimulated creates a simulated supplier.
func NewSimulated(cfg Config, log logger.Logger) *Simulated {
	return &Simulated{
		latency: time.Duration(cfg.LatencyMS) * time.Millisecond,
		eta:     time.Duration(cfg.ETAHours) * time.Hour,
		log:     log,
	}
}

// PlaceOrder blocks for the simulated latency and confirms the order.
func (s *Simulated) PlaceOrder(ctx context.Context, o Order) (Confirmation, error) {
	select {
	case <-time.After(s.latency):
	case <-ctx.Done():
		return Confirmation{}, fmt.Errorf("order %s: %w", o.ID, ctx.Err())
	}
	conf := Confirmation{
		OrderID:  o.ID,
		Part:     o.Part,
		Quantity: o.Quantity,
		ETA:      s.eta,
		PlacedAt: time.Now().UTC(),
	}
	s.log.Infof("order placed: %d x %s (order %s, eta %s)", o.Quantity, o.Part, o.ID, s.eta)
	return conf, nil
}

// NewOrder assigns a fresh order ID.
func NewOrder(part model.PartID, quantity int) Order {
	return Order{ID: uuid.NewString(), Part: part, Quantity: quantity}
}
