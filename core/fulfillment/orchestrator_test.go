package fulfillment

import (
	"sync"
	"testing"

	"github.com/mgirardot/partpilot/core/inventory"
	"github.com/mgirardot/partpilot/core/model"
	"github.com/mgirardot/partpilot/infra/logger"
)

type recordingScheduler struct {
	mu     sync.Mutex
	orders []model.PartID
}

func (s *recordingScheduler) Enqueue(part model.PartID, quantity int) {
	s.mu.Lock()
	for i := 0; i < quantity; i++ {
		s.orders = append(s.orders, part)
	}
	s.mu.Unlock()
}

func newFixture() (*Orchestrator, *inventory.MemoryLedger, *recordingScheduler) {
	ledger := inventory.NewMemoryLedger(map[model.PartID]int{
		model.PartBrakePad:   0,
		model.PartEngineBelt: 10,
		model.PartFilter:     20,
	})
	sched := &recordingScheduler{}
	return New(ledger, sched, logger.NopLogger{}), ledger, sched
}

func TestFulfillReserved(t *testing.T) {
	orch, ledger, sched := newFixture()
	out := orch.Fulfill(model.PartEngineBelt, "overheating")
	if out.Action != model.ActionReserved {
		t.Fatalf("action = %s, want RESERVED", out.Action)
	}
	want := "overheating: reserved ENGINE_BELT (remaining 9)"
	if out.Message != want {
		t.Fatalf("message = %q, want %q", out.Message, want)
	}
	if out.RemainingStock != 9 {
		t.Fatalf("remaining = %d, want 9", out.RemainingStock)
	}
	if qty, _ := ledger.Get(model.PartEngineBelt); qty != 9 {
		t.Fatalf("ledger = %d, want 9", qty)
	}
	if len(sched.orders) != 0 {
		t.Fatalf("unexpected supplier orders: %v", sched.orders)
	}
}

func TestFulfillBackOrdered(t *testing.T) {
	orch, ledger, sched := newFixture()
	out := orch.Fulfill(model.PartBrakePad, "high vibration")
	if out.Action != model.ActionBackOrdered {
		t.Fatalf("action = %s, want BACK_ORDERED", out.Action)
	}
	want := "high vibration: BRAKE_PAD out of stock — auto-order triggered"
	if out.Message != want {
		t.Fatalf("message = %q, want %q", out.Message, want)
	}
	if qty, _ := ledger.Get(model.PartBrakePad); qty != 0 {
		t.Fatalf("ledger changed on back-order: %d", qty)
	}
	if len(sched.orders) != 1 || sched.orders[0] != model.PartBrakePad {
		t.Fatalf("expected one BRAKE_PAD order, got %v", sched.orders)
	}
}

func TestFulfillConcurrentRace(t *testing.T) {
	orch, ledger, sched := newFixture()
	const callers = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	reserved, backOrdered := 0, 0
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := orch.Fulfill(model.PartFilter, "major failure (heat + vibration)")
			mu.Lock()
			switch out.Action {
			case model.ActionReserved:
				reserved++
			case model.ActionBackOrdered:
				backOrdered++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	if reserved != 20 || backOrdered != 30 {
		t.Fatalf("got %d reserved / %d back-ordered, want 20/30", reserved, backOrdered)
	}
	if qty, _ := ledger.Get(model.PartFilter); qty != 0 {
		t.Fatalf("final FILTER stock = %d, want 0", qty)
	}
	if len(sched.orders) != 30 {
		t.Fatalf("expected 30 supplier orders, got %d", len(sched.orders))
	}
}
