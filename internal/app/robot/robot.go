// Package robot assembles subsystems, sensors and lanes into the single
// handle the sequencer, the teleop loop and the control API work through.
package robot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/go-autonomy/internal/app/command"
	"github.com/jsamuelsen11/go-autonomy/internal/app/lane"
	"github.com/jsamuelsen11/go-autonomy/internal/app/plan"
	"github.com/jsamuelsen11/go-autonomy/internal/domain"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/logging"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/pacer"
	"github.com/jsamuelsen11/go-autonomy/internal/ports"
	"github.com/jsamuelsen11/go-autonomy/internal/subsystem"
)

// Lane names.
const (
	LaneDrive = "drive"
	LaneArm   = "arm"
	LaneAux   = "aux"
)

// Arm preset names the operator buttons map to.
const (
	PresetIntake       = "intake"
	PresetLowerBasket  = "lower_basket"
	PresetHigherBasket = "higher_basket"
)

// Deps lists everything a Robot is built from. Input may be nil when no
// driver station is attached.
type Deps struct {
	Drivetrain *subsystem.Drivetrain
	Arm        *subsystem.Arm
	Intake     *subsystem.Intake

	Pose     ports.PoseSource
	Detector ports.LandmarkDetector
	Input    ports.DriverInput
	Clock    ports.Clock
	Logger   *slog.Logger

	Tuning      command.Tuning
	Presets     map[string]subsystem.ArmPosition
	ClawClosed  float64
	ClawOpen    float64
	ArmTimeout  time.Duration
	LaneOptions []lane.Option
}

func (d Deps) validate() error {
	var errs []error
	if d.Drivetrain == nil {
		errs = append(errs, errors.New("drivetrain is required"))
	}
	if d.Arm == nil {
		errs = append(errs, errors.New("arm is required"))
	}
	if d.Intake == nil {
		errs = append(errs, errors.New("intake is required"))
	}
	if d.Pose == nil {
		errs = append(errs, errors.New("pose source is required"))
	}
	if d.Clock == nil {
		errs = append(errs, errors.New("clock is required"))
	}
	return errors.Join(errs...)
}

// Robot owns the actuators and the three lanes that drive them.
type Robot struct {
	drivetrain *subsystem.Drivetrain
	arm        *subsystem.Arm
	intake     *subsystem.Intake
	input      ports.DriverInput

	drive *lane.Lane
	armL  *lane.Lane
	aux   *lane.Lane

	env        command.Env
	presets    map[string]subsystem.ArmPosition
	clawClosed float64
	clawOpen   float64
	armTimeout time.Duration
	logger     *slog.Logger

	mu         sync.Mutex
	lastIntake command.IntakeMode
	plan       *plan.Sequencer
}

// New builds a Robot from deps.
func New(deps Deps) (*Robot, error) {
	if err := deps.validate(); err != nil {
		return nil, fmt.Errorf("robot: %w", err)
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	r := &Robot{
		drivetrain: deps.Drivetrain,
		arm:        deps.Arm,
		intake:     deps.Intake,
		input:      deps.Input,
		env: command.Env{
			Clock:    deps.Clock,
			Pose:     deps.Pose,
			Detector: deps.Detector,
			Logger:   logger,
			Tuning:   deps.Tuning,
		},
		presets:    deps.Presets,
		clawClosed: deps.ClawClosed,
		clawOpen:   deps.ClawOpen,
		armTimeout: deps.ArmTimeout,
		logger:     logging.Component(logger, "robot"),
	}

	opts := []lane.Option{lane.WithClock(deps.Clock), lane.WithLogger(logger)}
	opts = append(opts, deps.LaneOptions...)
	opts = append(opts, lane.OnFailure(r.laneFailed))
	r.drive = lane.New(LaneDrive, opts...)
	r.armL = lane.New(LaneArm, opts...)
	r.aux = lane.New(LaneAux, opts...)
	return r, nil
}

// Env returns the shared command environment.
func (r *Robot) Env() command.Env { return r.env }

func (r *Robot) Drivetrain() *subsystem.Drivetrain { return r.drivetrain }
func (r *Robot) Arm() *subsystem.Arm               { return r.arm }
func (r *Robot) Intake() *subsystem.Intake         { return r.intake }

// DriveLane is the primary lane.
func (r *Robot) DriveLane() *lane.Lane { return r.drive }

// ArmLane is the secondary lane.
func (r *Robot) ArmLane() *lane.Lane { return r.armL }

// AuxLane is the tertiary general-purpose lane.
func (r *Robot) AuxLane() *lane.Lane { return r.aux }

// Lanes returns every lane in a fixed order.
func (r *Robot) Lanes() []*lane.Lane {
	return []*lane.Lane{r.drive, r.armL, r.aux}
}

// Preset looks up a named arm position.
func (r *Robot) Preset(name string) (subsystem.ArmPosition, bool) {
	p, ok := r.presets[name]
	return p, ok
}

// AllIdle reports whether no lane has work.
func (r *Robot) AllIdle() bool {
	for _, l := range r.Lanes() {
		if l.HasPending() {
			return false
		}
	}
	return true
}

// AbortAll is the emergency stop: halt the plan, abort every lane, then cut
// power to every actuator. Device errors are joined and returned after every
// stop has been attempted.
func (r *Robot) AbortAll(ctx context.Context) error {
	r.logger.WarnContext(ctx, "abort all lanes")
	if seq := r.attachedPlan(); seq != nil {
		seq.Halt(ctx)
	}
	for _, l := range r.Lanes() {
		l.Abort(ctx)
	}
	r.setLastIntake("")

	err := errors.Join(
		r.drivetrain.Stop(),
		r.arm.Stop(),
		r.intake.Stop(),
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to stop actuators", slog.Any("error", err))
	}
	return err
}

// laneFailed receives every lane failure. A device fault leaves the hardware
// in an unknown state, so it stops the whole robot; timeouts and other
// command errors are left to the lane that reported them.
func (r *Robot) laneFailed(ctx context.Context, f lane.Failure) {
	if !errors.Is(f.Err, domain.ErrDeviceFault) {
		return
	}
	r.logger.ErrorContext(ctx, "device fault, stopping robot",
		slog.String("lane", f.Lane),
		slog.String("command", f.Command),
		slog.Any("error", f.Err),
	)
	_ = r.AbortAll(ctx)
}

// Run drives every lane, the optional sequencer and the optional input loop
// at interval until ctx is done. A nil seq runs the lanes alone; a non-nil
// seq is halted by AbortAll.
func (r *Robot) Run(ctx context.Context, seq *plan.Sequencer, interval time.Duration) error {
	if seq != nil {
		r.attachPlan(seq)
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, l := range r.Lanes() {
		g.Go(func() error { return l.Run(ctx, interval) })
	}
	if seq != nil {
		g.Go(func() error { return seq.Run(ctx, interval) })
	}
	if r.input != nil {
		g.Go(func() error {
			return pacer.Loop(ctx, interval, func(ctx context.Context) bool {
				if err := r.HandleInput(ctx, r.input.Snapshot()); err != nil {
					r.logger.ErrorContext(ctx, "driver input failed", slog.Any("error", err))
				}
				return true
			})
		})
	}
	return g.Wait()
}

// NewPlan builds a sequencer over the drive, arm and aux lanes. AbortAll
// halts the most recently built plan.
func (r *Robot) NewPlan(stages []*plan.Stage, opts ...plan.Option) *plan.Sequencer {
	seq := plan.NewSequencer(r.drive, r.armL, r.aux, stages, opts...)
	r.attachPlan(seq)
	return seq
}

func (r *Robot) attachPlan(seq *plan.Sequencer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plan = seq
}

func (r *Robot) attachedPlan() *plan.Sequencer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.plan
}

// setLastIntake records the intake mode last queued from the operator pad
// and reports whether it changed.
func (r *Robot) setLastIntake(mode command.IntakeMode) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastIntake == mode {
		return false
	}
	r.lastIntake = mode
	return true
}
