package command

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jsamuelsen11/go-autonomy/internal/motion"
	"github.com/jsamuelsen11/go-autonomy/internal/subsystem"
)

// TurnParams configures an in-place turn. When Relative is set HeadingDeg is
// added to the heading at start.
type TurnParams struct {
	Title      string
	HeadingDeg float64
	Relative   bool
	Speed      float64
	Timeout    time.Duration
}

// TurnToHeading rotates in place until the heading is within tolerance. The
// turn speed is proportional to the remaining error with a floor so the
// robot does not stall just short of the target.
type TurnToHeading struct {
	Base
	env        Env
	drivetrain *subsystem.Drivetrain
	heading    float64
	relative   bool
	speed      float64
	target     float64
}

// NewTurnToHeading creates a TurnToHeading.
func NewTurnToHeading(env Env, dt *subsystem.Drivetrain, p TurnParams) *TurnToHeading {
	title := p.Title
	if title == "" {
		title = fmt.Sprintf("turn to %.0f°", p.HeadingDeg)
	}
	return &TurnToHeading{
		Base:       newBase(env, title, p.Timeout),
		env:        env,
		drivetrain: dt,
		heading:    p.HeadingDeg,
		relative:   p.Relative,
		speed:      p.Speed,
	}
}

// Target returns the resolved absolute target heading in degrees.
func (c *TurnToHeading) Target() float64 { return c.target }

func (c *TurnToHeading) Start(_ context.Context) error {
	c.begin()
	c.target = c.heading
	if c.relative && c.env.Pose != nil {
		c.target = motion.NormalizeDegrees(c.env.Pose.CurrentPose().HeadingDegrees() + c.heading)
	}
	return c.drivetrain.Stop()
}

func (c *TurnToHeading) Poll(_ context.Context) (bool, error) {
	pose := c.env.Pose.CurrentPose()
	if !pose.Valid() {
		c.logger.Warn("skipping turn correction, invalid pose sample",
			slog.Float64("heading", pose.Heading),
		)
		return false, nil
	}

	errDeg := motion.HeadingError(c.target, pose.HeadingDegrees())
	if math.Abs(errDeg) < c.env.Tuning.TurnToleranceDeg {
		if err := c.drivetrain.Stop(); err != nil {
			return false, err
		}
		return true, nil
	}

	speed := motion.TurnSpeed(errDeg, c.env.Tuning.TurnGain, c.speed, c.env.Tuning.TurnMinSpeed)
	if errDeg > 0 {
		return false, c.drivetrain.SetSidePowers(-speed, speed)
	}
	return false, c.drivetrain.SetSidePowers(speed, -speed)
}

func (c *TurnToHeading) Abort(_ context.Context) error {
	return c.drivetrain.Stop()
}

// TurnForTimeParams configures a timed sloping turn.
type TurnForTimeParams struct {
	Title    string
	Left     float64
	Right    float64
	Duration time.Duration
	Timeout  time.Duration
}

// TurnForTime runs fixed left and right side powers for a duration. Unequal
// powers give a sloping arc; opposite powers spin in place.
type TurnForTime struct {
	Base
	drivetrain *subsystem.Drivetrain
	left       float64
	right      float64
	duration   time.Duration
}

// NewTurnForTime creates a TurnForTime.
func NewTurnForTime(env Env, dt *subsystem.Drivetrain, p TurnForTimeParams) *TurnForTime {
	title := p.Title
	if title == "" {
		title = fmt.Sprintf("sloping turn %s", p.Duration)
	}
	return &TurnForTime{
		Base:       newBase(env, title, p.Timeout),
		drivetrain: dt,
		left:       p.Left,
		right:      p.Right,
		duration:   p.Duration,
	}
}

func (c *TurnForTime) Start(_ context.Context) error {
	c.begin()
	if err := c.drivetrain.Stop(); err != nil {
		return err
	}
	return c.drivetrain.SetSidePowers(c.left, c.right)
}

func (c *TurnForTime) Poll(_ context.Context) (bool, error) {
	if c.Elapsed() < c.duration {
		return false, nil
	}
	if err := c.drivetrain.Stop(); err != nil {
		return false, err
	}
	return true, nil
}

func (c *TurnForTime) Abort(_ context.Context) error {
	return c.drivetrain.Stop()
}
