package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/go-autonomy/internal/subsystem"
)

// Claw moves the claw servo and waits for it to settle. Servos give no
// position feedback, so completion is time based.
type Claw struct {
	Base
	arm      *subsystem.Arm
	position float64
	settle   time.Duration
}

// NewClaw creates a Claw command that moves the servo to position.
func NewClaw(env Env, arm *subsystem.Arm, title string, position float64, timeout time.Duration) *Claw {
	if title == "" {
		title = fmt.Sprintf("claw %.2f", position)
	}
	return &Claw{
		Base:     newBase(env, title, timeout),
		arm:      arm,
		position: position,
		settle:   env.Tuning.ServoSettle,
	}
}

func (c *Claw) Start(_ context.Context) error {
	c.begin()
	return c.arm.SetClaw(c.position)
}

func (c *Claw) Poll(_ context.Context) (bool, error) {
	return c.Elapsed() >= c.settle, nil
}

// Abort leaves the servo where it is.
func (c *Claw) Abort(_ context.Context) error {
	return nil
}

// MoveArm drives the arm to a preset in two phases: the shoulder first, and
// once it is within tolerance the slide. The claw is set at start.
type MoveArm struct {
	Base
	arm          *subsystem.Arm
	preset       subsystem.ArmPosition
	shoulderDone bool
}

// NewMoveArm creates a MoveArm.
func NewMoveArm(env Env, arm *subsystem.Arm, title string, preset subsystem.ArmPosition, timeout time.Duration) *MoveArm {
	if title == "" {
		title = fmt.Sprintf("arm to shoulder=%d slide=%d", preset.Shoulder, preset.Slide)
	}
	return &MoveArm{
		Base:   newBase(env, title, timeout),
		arm:    arm,
		preset: preset,
	}
}

func (c *MoveArm) Start(_ context.Context) error {
	c.begin()
	if err := c.arm.SetClaw(c.preset.Claw); err != nil {
		return err
	}
	return c.arm.SetShoulderTarget(c.preset.Shoulder)
}

func (c *MoveArm) Poll(_ context.Context) (bool, error) {
	if !c.shoulderDone {
		within, err := c.arm.ShoulderWithinTolerance()
		if err != nil || !within {
			return false, err
		}
		c.shoulderDone = true
		return false, c.arm.SetSlideTarget(c.preset.Slide)
	}
	return c.arm.SlideWithinTolerance()
}

func (c *MoveArm) Abort(_ context.Context) error {
	return c.arm.Stop()
}
