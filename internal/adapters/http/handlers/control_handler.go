package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-autonomy/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-autonomy/internal/ports"
)

// ControlHandler serves the operator control surface: plan progress, lane
// snapshots, driver input and the emergency stop.
type ControlHandler struct {
	svc ports.ControlService
}

// NewControlHandler creates a new ControlHandler with the given service port.
func NewControlHandler(svc ports.ControlService) *ControlHandler {
	return &ControlHandler{svc: svc}
}

// GetPlan handles GET /api/v1/plan.
func (h *ControlHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToPlanResponse(h.svc.PlanStatus(r.Context())))
}

// ListLanes handles GET /api/v1/lanes.
func (h *ControlHandler) ListLanes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToLaneListResponse(h.svc.LaneStatuses(r.Context())))
}

// Abort handles POST /api/v1/abort. Lanes are aborted even when stopping an
// actuator fails; the failure is reported to the caller.
func (h *ControlHandler) Abort(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.EmergencyStop(r.Context()); err != nil {
		requestLogger(r).WarnContext(r.Context(), "abort reported errors", slog.Any("error", err))
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, dto.AbortResponse{Status: "aborted"})
}

// SubmitInput handles PUT /api/v1/input. It replaces the teleop gamepad
// snapshot and answers 204; autonomous runs refuse with 503.
func (h *ControlHandler) SubmitInput(w http.ResponseWriter, r *http.Request) {
	var req dto.InputRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if err := h.svc.SubmitInput(r.Context(), req.ToDomain()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
