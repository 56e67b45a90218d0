package ports

import (
	"context"

	"github.com/jsamuelsen11/go-autonomy/internal/domain"
)

// ControlService defines the operator-facing service port.
// Implemented by the application layer; called by inbound adapters (handlers).
type ControlService interface {
	// PlanStatus returns the progress of the running plan.
	PlanStatus(ctx context.Context) domain.PlanStatus

	// LaneStatuses returns a snapshot of every lane worker.
	LaneStatuses(ctx context.Context) []domain.LaneStatus

	// EmergencyStop aborts every lane and stops all actuators.
	EmergencyStop(ctx context.Context) error

	// SubmitInput replaces the live gamepad snapshot used by teleop.
	SubmitInput(ctx context.Context, in domain.InputSnapshot) error
}
