package model

// PartID identifies a spare part tracked by the inventory ledger.
//
// The service ships with a fixed set of parts; additional parts may be
// introduced through the inventory seed and diagnostic rule configuration,
// as long as every part referenced by a rule is seeded in the ledger.
type PartID string

const (
	PartBrakePad   PartID = "BRAKE_PAD"
	PartEngineBelt PartID = "ENGINE_BELT"
	PartFilter     PartID = "FILTER"
)

func (p PartID) String() string { return string(p) }
