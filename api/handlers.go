package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mgirardot/partpilot/core/decision"
	"github.com/mgirardot/partpilot/core/inventory"
	"github.com/mgirardot/partpilot/core/livestate"
	"github.com/mgirardot/partpilot/core/logger"
	"github.com/mgirardot/partpilot/core/model"
)

// Handler serves the decision-service endpoints.
type Handler struct {
	proc   *decision.Processor
	ledger inventory.Ledger
	live   *livestate.Store
	log    logger.Logger
}

// InventoryUpdateRequest is the body of POST /inventory/update.
type InventoryUpdateRequest struct {
	Quantity int `json:"quantity"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

// Status returns system status and the current inventory snapshot.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "active",
		"inventory": h.ledger.Snapshot(),
	})
}

// Health is a plain liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// UpdateInventory overwrites the stock count of one part (manual restock).
func (h *Handler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	part := r.URL.Query().Get("part_name")
	if part == "" {
		writeError(w, http.StatusBadRequest, "part_name query parameter is required")
		return
	}
	var req InventoryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.ledger.Set(model.PartID(part), req.Quantity); err != nil {
		switch {
		case errors.Is(err, inventory.ErrNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, inventory.ErrInvalidQuantity):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	h.log.Infof("inventory update: %s set to %d", part, req.Quantity)
	writeJSON(w, http.StatusOK, map[string]any{
		"message":       fmt.Sprintf("updated %s to %d", part, req.Quantity),
		"current_stock": h.ledger.Snapshot(),
	})
}

// Predict runs the full decision pipeline for one sensor reading.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	var reading model.SensorReading
	if err := json.NewDecoder(r.Body).Decode(&reading); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	resp, err := h.proc.Process(reading)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// LiveStream returns the most recently processed decision trace, or a
// sentinel trace before the first prediction.
func (h *Handler) LiveStream(w http.ResponseWriter, r *http.Request) {
	trace, ok := h.live.Read()
	if !ok {
		trace = model.DecisionTrace{ActionTaken: "no data yet"}
	}
	writeJSON(w, http.StatusOK, trace)
}
