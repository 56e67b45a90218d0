package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/go-autonomy/internal/subsystem"
)

// IntakeMode selects what an Intake command does with the roller.
type IntakeMode string

const (
	IntakeRun     IntakeMode = "run"
	IntakeReverse IntakeMode = "reverse"
	IntakeHold    IntakeMode = "hold"
)

// ParseIntakeMode validates a mode name.
func ParseIntakeMode(s string) (IntakeMode, error) {
	switch m := IntakeMode(s); m {
	case IntakeRun, IntakeReverse, IntakeHold:
		return m, nil
	default:
		return "", fmt.Errorf("unknown intake mode %q", s)
	}
}

// Intake sets the roller running, reversing or holding. Run and reverse
// complete as soon as the roller is commanded and leave it spinning; hold
// completes once the roller has settled at its locked position.
type Intake struct {
	Base
	intake *subsystem.Intake
	mode   IntakeMode
}

// NewIntake creates an Intake command.
func NewIntake(env Env, intake *subsystem.Intake, title string, mode IntakeMode, timeout time.Duration) *Intake {
	if title == "" {
		title = "intake " + string(mode)
	}
	return &Intake{
		Base:   newBase(env, title, timeout),
		intake: intake,
		mode:   mode,
	}
}

func (c *Intake) Start(_ context.Context) error {
	c.begin()
	switch c.mode {
	case IntakeRun:
		return c.intake.Run()
	case IntakeReverse:
		return c.intake.Reverse()
	default:
		return c.intake.Hold()
	}
}

func (c *Intake) Poll(_ context.Context) (bool, error) {
	if c.mode != IntakeHold {
		return true, nil
	}
	return c.intake.HoldWithinTolerance()
}

func (c *Intake) Abort(_ context.Context) error {
	return c.intake.Stop()
}
