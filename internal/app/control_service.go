// Package app provides application services that sit between the inbound
// adapters and the robot runtime.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-autonomy/internal/domain"
	"github.com/jsamuelsen11/go-autonomy/internal/ports"
)

// Compile-time check that ControlService implements ports.ControlService.
var _ ports.ControlService = (*ControlService)(nil)

// LaneReporter is anything that can describe its state. *lane.Lane
// satisfies it.
type LaneReporter interface {
	Status() domain.LaneStatus
}

// Robot is the slice of the robot facade the control service needs.
type Robot interface {
	AbortAll(ctx context.Context) error
}

// PlanReporter describes plan progress. *plan.Sequencer satisfies it.
type PlanReporter interface {
	Status() domain.PlanStatus
}

// InputSink receives gamepad snapshots. *sim.Gamepads satisfies it.
type InputSink interface {
	Set(s domain.InputSnapshot)
}

// ControlService implements ports.ControlService over a running robot. The
// plan may be nil when the robot is driven by hand, and the input sink is
// nil when it is not.
type ControlService struct {
	robot  Robot
	lanes  []LaneReporter
	plan   PlanReporter
	input  InputSink
	logger *slog.Logger
}

// ControlOption configures a ControlService.
type ControlOption func(*ControlService)

// WithInputSink routes submitted gamepad snapshots to sink.
func WithInputSink(sink InputSink) ControlOption {
	return func(s *ControlService) { s.input = sink }
}

// NewControlService creates a ControlService.
func NewControlService(robot Robot, lanes []LaneReporter, plan PlanReporter, logger *slog.Logger, opts ...ControlOption) *ControlService {
	s := &ControlService{
		robot:  robot,
		lanes:  lanes,
		plan:   plan,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlanStatus returns the plan snapshot, or an empty complete plan when no
// routine is loaded.
func (s *ControlService) PlanStatus(_ context.Context) domain.PlanStatus {
	if s.plan == nil {
		return domain.PlanStatus{Complete: true, Stages: []domain.StageStatus{}}
	}
	return s.plan.Status()
}

// LaneStatuses returns one snapshot per lane in lane order.
func (s *ControlService) LaneStatuses(_ context.Context) []domain.LaneStatus {
	out := make([]domain.LaneStatus, 0, len(s.lanes))
	for _, l := range s.lanes {
		out = append(out, l.Status())
	}
	return out
}

// EmergencyStop aborts all lanes and stops every actuator.
func (s *ControlService) EmergencyStop(ctx context.Context) error {
	s.logger.WarnContext(ctx, "emergency stop requested")

	if err := s.robot.AbortAll(ctx); err != nil {
		s.logger.ErrorContext(ctx, "emergency stop incomplete",
			slog.String("operation", "EmergencyStop"),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// SubmitInput hands the snapshot to the teleop input sink. Without one the
// robot is running a routine and driver input is refused.
func (s *ControlService) SubmitInput(ctx context.Context, in domain.InputSnapshot) error {
	if s.input == nil {
		return fmt.Errorf("driver input: %w", domain.ErrUnavailable)
	}
	s.input.Set(in)
	s.logger.DebugContext(ctx, "driver input accepted")
	return nil
}
