package model

// Action describes how a diagnosed part need was resolved.
type Action string

const (
	ActionReserved    Action = "RESERVED"
	ActionBackOrdered Action = "BACK_ORDERED"
)

// FulfillmentOutcome records how the orchestrator resolved a part need.
type FulfillmentOutcome struct {
	Part           PartID `json:"part"`
	Action         Action `json:"action"`
	Reason         string `json:"reason"`
	Message        string `json:"message"`
	RemainingStock int    `json:"remaining_stock"`
}

// DecisionTrace is the full record of one prediction request: the reading
// that entered the pipeline, the diagnosis it produced and the fulfillment
// outcome, if any. The live state store keeps exactly one trace and
// overwrites it on every request.
type DecisionTrace struct {
	VehicleID   string              `json:"vehicle_id"`
	Timestamp   string              `json:"timestamp"`
	Sensors     SensorReading       `json:"sensors"`
	Diagnosis   Diagnosis           `json:"diagnosis"`
	Fulfillment *FulfillmentOutcome `json:"fulfillment,omitempty"`
	ActionTaken string              `json:"action_taken"`
}
