package robot

import (
	"context"
	"log/slog"
	"math"

	"github.com/jsamuelsen11/go-autonomy/internal/app/command"
	"github.com/jsamuelsen11/go-autonomy/internal/domain"
	"github.com/jsamuelsen11/go-autonomy/internal/motion"
)

const (
	triggerPressed = 0.2
	speedTrigger   = 0.1

	speedSlow  = 0.3
	speedFast  = 0.6
	speedTurbo = 1.0
)

// HandleInput applies one driver station snapshot. The driver X button
// aborts everything; otherwise the driver sticks steer the robot while the
// drive lane is idle and the operator queues arm work while the arm lane is
// idle.
func (r *Robot) HandleInput(ctx context.Context, in domain.InputSnapshot) error {
	if in.Driver.X {
		return r.AbortAll(ctx)
	}

	if !r.drive.HasPending() {
		if err := r.drivetrain.SetPowers(ManualDrive(in.Driver)); err != nil {
			return err
		}
	}

	r.handleIntake(in.Operator)
	if !r.armL.HasPending() {
		r.handleArm(in.Operator)
	}
	return nil
}

// ManualDrive shapes the driver sticks into wheel powers. The odd exponents
// keep small deflections gentle; the triggers select the speed multiplier.
func ManualDrive(pad domain.Gamepad) motion.WheelPowers {
	multiplier := speedSlow
	switch {
	case pad.RightTrigger > speedTrigger:
		multiplier = speedFast
	case pad.LeftTrigger > speedTrigger:
		multiplier = speedTurbo
	}

	x := math.Pow(pad.LeftStickX, 7) * multiplier
	y := -math.Pow(pad.LeftStickY, 7) * multiplier
	// Stick right turns clockwise.
	rotation := -math.Pow(pad.RightStickX, 5) * multiplier

	return motion.MixPolar(math.Atan2(x, y), math.Hypot(x, y), rotation)
}

func (r *Robot) handleIntake(op domain.Gamepad) {
	var mode command.IntakeMode
	switch left, right := op.LeftTrigger > triggerPressed, op.RightTrigger > triggerPressed; {
	case left && right:
		mode = command.IntakeHold
	case right:
		mode = command.IntakeRun
	case left:
		mode = command.IntakeReverse
	default:
		return
	}
	if !r.setLastIntake(mode) {
		return
	}
	r.aux.Enqueue(command.NewIntake(r.env, r.intake, "", mode, 0))
}

func (r *Robot) handleArm(op domain.Gamepad) {
	switch {
	case op.A:
		r.queuePreset(PresetIntake, "Assume intake")
		if r.setLastIntake(command.IntakeRun) {
			r.aux.Enqueue(command.NewIntake(r.env, r.intake, "Start intake", command.IntakeRun, 0))
		}
	case op.B:
		r.queuePreset(PresetLowerBasket, "Lower basket position")
	case op.Y:
		r.queuePreset(PresetHigherBasket, "Higher basket position")
	}

	switch {
	case op.DpadLeft:
		r.armL.Enqueue(command.NewClaw(r.env, r.arm, "Close claw", r.clawClosed, 0))
	case op.DpadRight:
		r.armL.Enqueue(command.NewClaw(r.env, r.arm, "Open claw", r.clawOpen, 0))
	}
}

func (r *Robot) queuePreset(name, title string) {
	preset, ok := r.presets[name]
	if !ok {
		r.logger.Warn("arm preset not configured", slog.String("preset", name))
		return
	}
	r.armL.Enqueue(command.NewMoveArm(r.env, r.arm, title, preset, r.armTimeout))
}
