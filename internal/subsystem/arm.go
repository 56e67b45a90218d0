package subsystem

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/go-autonomy/internal/ports"
)

// ArmPosition is a named arm pose: slide and shoulder encoder targets plus
// the claw servo position.
type ArmPosition struct {
	Slide    int
	Shoulder int
	Claw     float64
}

// ArmConfig tunes the arm's run-to-position behaviour.
type ArmConfig struct {
	ShoulderTolerance int
	SlideTolerance    int
	ShoulderPower     float64
	SlidePower        float64
}

// Arm is the shoulder joint, the extending slide and the claw at its end.
type Arm struct {
	shoulder ports.Motor
	slide    ports.Motor
	claw     ports.Servo
	cfg      ArmConfig
}

// NewArm creates an Arm.
func NewArm(shoulder, slide ports.Motor, claw ports.Servo, cfg ArmConfig) *Arm {
	return &Arm{shoulder: shoulder, slide: slide, claw: claw, cfg: cfg}
}

// SetShoulderTarget starts the shoulder towards ticks.
func (a *Arm) SetShoulderTarget(ticks int) error {
	if err := runTo(a.shoulder, ticks, a.cfg.ShoulderPower); err != nil {
		return fmt.Errorf("shoulder: %w", err)
	}
	return nil
}

// SetSlideTarget starts the slide towards ticks.
func (a *Arm) SetSlideTarget(ticks int) error {
	if err := runTo(a.slide, ticks, a.cfg.SlidePower); err != nil {
		return fmt.Errorf("slide: %w", err)
	}
	return nil
}

func (a *Arm) ShoulderWithinTolerance() (bool, error) {
	return withinTolerance(a.shoulder, a.cfg.ShoulderTolerance)
}

func (a *Arm) SlideWithinTolerance() (bool, error) {
	return withinTolerance(a.slide, a.cfg.SlideTolerance)
}

// SetClaw moves the claw servo.
func (a *Arm) SetClaw(position float64) error {
	if err := a.claw.SetPosition(position); err != nil {
		return fmt.Errorf("claw: %w", err)
	}
	return nil
}

// Position reads the current arm pose.
func (a *Arm) Position() (ArmPosition, error) {
	slide, errSlide := a.slide.CurrentPosition()
	shoulder, errShoulder := a.shoulder.CurrentPosition()
	claw, errClaw := a.claw.Position()
	if err := errors.Join(errSlide, errShoulder, errClaw); err != nil {
		return ArmPosition{}, err
	}
	return ArmPosition{Slide: slide, Shoulder: shoulder, Claw: claw}, nil
}

// Stop removes power from both arm motors. The claw keeps its position.
func (a *Arm) Stop() error {
	var errs []error
	if err := a.shoulder.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("shoulder: %w", err))
	}
	if err := a.slide.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("slide: %w", err))
	}
	return errors.Join(errs...)
}

func runTo(m ports.Motor, ticks int, power float64) error {
	if err := m.SetTargetPosition(ticks); err != nil {
		return err
	}
	return m.SetPower(power)
}
