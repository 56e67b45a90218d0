package command

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/go-autonomy/internal/motion"
	"github.com/jsamuelsen11/go-autonomy/internal/subsystem"
)

// DriveParams configures a straight drive.
type DriveParams struct {
	Title      string
	DistanceMM float64
	Speed      float64
	Heading    Heading
	Timeout    time.Duration
}

// DriveForDistance drives straight by encoder distance, optionally holding a
// heading while it travels. Negative distances drive backwards.
type DriveForDistance struct {
	Base
	env        Env
	drivetrain *subsystem.Drivetrain
	distance   float64
	speed      float64
	heading    Heading
	target     float64
}

// NewDriveForDistance creates a DriveForDistance.
func NewDriveForDistance(env Env, dt *subsystem.Drivetrain, p DriveParams) *DriveForDistance {
	title := p.Title
	if title == "" {
		title = fmt.Sprintf("drive %.0fmm", p.DistanceMM)
	}
	return &DriveForDistance{
		Base:       newBase(env, title, p.Timeout),
		env:        env,
		drivetrain: dt,
		distance:   p.DistanceMM,
		speed:      p.Speed,
		heading:    p.Heading,
	}
}

func (c *DriveForDistance) Start(_ context.Context) error {
	c.begin()
	c.target = c.heading.resolve(c.env.Pose)

	if err := c.drivetrain.Stop(); err != nil {
		return err
	}
	ticks := c.env.Tuning.Encoder.TicksForDistance(c.distance)
	return c.drivetrain.DriveToTicks(subsystem.Uniform(ticks), c.speed)
}

func (c *DriveForDistance) Poll(_ context.Context) (bool, error) {
	within, err := c.drivetrain.WithinTolerance(subsystem.FrontWheels...)
	if err != nil {
		return false, err
	}
	if within {
		if err := c.drivetrain.Stop(); err != nil {
			return false, err
		}
		return true, nil
	}

	if c.heading.Mode == HeadingFree {
		return false, nil
	}
	return false, holdHeading(c.env, &c.Base, c.drivetrain, c.speed, c.target, c.distance < 0)
}

func (c *DriveForDistance) Abort(_ context.Context) error {
	return c.drivetrain.Stop()
}

// holdHeading applies one heading-hold correction as side powers. A pose
// sample that is not a finite number is logged and skipped.
func holdHeading(env Env, b *Base, dt *subsystem.Drivetrain, speed, targetDeg float64, reverse bool) error {
	if env.Pose == nil {
		return nil
	}
	pose := env.Pose.CurrentPose()
	if !pose.Valid() {
		b.logger.Warn("skipping heading correction, invalid pose sample",
			slog.Float64("heading", pose.Heading),
		)
		return nil
	}
	left, right := motion.HeadingHold(speed, targetDeg, pose.HeadingDegrees(), env.Tuning.SteerGain, reverse)
	return dt.SetSidePowers(left, right)
}

// StrafeParams configures a sideways move. Positive distances strafe left.
type StrafeParams struct {
	Title      string
	DistanceMM float64
	Speed      float64
	Heading    Heading
	Timeout    time.Duration
}

// Strafe moves sideways by encoder distance. Mecanum rollers slip when
// strafing, so the requested distance is scaled by the tuned slip factor.
// With a heading set, the command starts slowly for the ramp duration and
// applies heading-hold corrections while it travels.
type Strafe struct {
	Base
	env        Env
	drivetrain *subsystem.Drivetrain
	distance   float64
	speed      float64
	heading    Heading
	target     float64
}

// NewStrafe creates a Strafe.
func NewStrafe(env Env, dt *subsystem.Drivetrain, p StrafeParams) *Strafe {
	title := p.Title
	if title == "" {
		title = fmt.Sprintf("strafe %.0fmm", p.DistanceMM)
	}
	return &Strafe{
		Base:       newBase(env, title, p.Timeout),
		env:        env,
		drivetrain: dt,
		distance:   p.DistanceMM,
		speed:      p.Speed,
		heading:    p.Heading,
	}
}

func (c *Strafe) Start(_ context.Context) error {
	c.begin()
	c.target = c.heading.resolve(c.env.Pose)

	if err := c.drivetrain.Stop(); err != nil {
		return err
	}
	slip := c.env.Tuning.StrafeSlip
	if slip <= 0 {
		slip = 1
	}
	ticks := c.env.Tuning.Encoder.TicksForDistance(c.distance * slip)
	return c.drivetrain.StrafeTicks(ticks, c.currentSpeed())
}

func (c *Strafe) currentSpeed() float64 {
	if c.heading.Mode != HeadingFree && c.Elapsed() < c.env.Tuning.RampDuration {
		return c.env.Tuning.RampSpeed
	}
	return c.speed
}

func (c *Strafe) Poll(_ context.Context) (bool, error) {
	within, err := c.drivetrain.WithinTolerance(subsystem.FrontWheels...)
	if err != nil {
		return false, err
	}
	if within {
		if err := c.drivetrain.Stop(); err != nil {
			return false, err
		}
		return true, nil
	}

	if c.heading.Mode == HeadingFree {
		return false, nil
	}
	return false, holdHeading(c.env, &c.Base, c.drivetrain, c.currentSpeed(), c.target, c.distance < 0)
}

func (c *Strafe) Abort(_ context.Context) error {
	return c.drivetrain.Stop()
}
