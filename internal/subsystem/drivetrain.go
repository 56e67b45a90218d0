package subsystem

import (
	"errors"
	"fmt"
	"math"

	"github.com/jsamuelsen11/go-autonomy/internal/motion"
	"github.com/jsamuelsen11/go-autonomy/internal/ports"
)

// Wheel identifies one mecanum wheel.
type Wheel int

const (
	LeftFront Wheel = iota
	RightFront
	LeftBack
	RightBack
)

var wheelNames = [...]string{"left_front", "right_front", "left_back", "right_back"}

func (w Wheel) String() string {
	if w < LeftFront || w > RightBack {
		return fmt.Sprintf("wheel(%d)", int(w))
	}
	return wheelNames[w]
}

// AllWheels lists every wheel in motor order.
var AllWheels = []Wheel{LeftFront, RightFront, LeftBack, RightBack}

// FrontWheels is the pair drive commands gate their tolerance on.
var FrontWheels = []Wheel{LeftFront, RightFront}

// WheelTicks holds one encoder value per wheel.
type WheelTicks struct {
	LeftFront  int `json:"left_front"`
	RightFront int `json:"right_front"`
	LeftBack   int `json:"left_back"`
	RightBack  int `json:"right_back"`
}

func (t WheelTicks) get(w Wheel) int {
	switch w {
	case LeftFront:
		return t.LeftFront
	case RightFront:
		return t.RightFront
	case LeftBack:
		return t.LeftBack
	default:
		return t.RightBack
	}
}

func (t *WheelTicks) set(w Wheel, v int) {
	switch w {
	case LeftFront:
		t.LeftFront = v
	case RightFront:
		t.RightFront = v
	case LeftBack:
		t.LeftBack = v
	default:
		t.RightBack = v
	}
}

// Uniform returns ticks with the same value on every wheel.
func Uniform(ticks int) WheelTicks {
	return WheelTicks{ticks, ticks, ticks, ticks}
}

// StrafeOffsets returns the per-wheel offsets for a sideways move; positive
// ticks strafe left.
func StrafeOffsets(ticks int) WheelTicks {
	return WheelTicks{LeftFront: -ticks, RightFront: ticks, LeftBack: ticks, RightBack: -ticks}
}

func powerFor(p motion.WheelPowers, w Wheel) float64 {
	switch w {
	case LeftFront:
		return p.LeftFront
	case RightFront:
		return p.RightFront
	case LeftBack:
		return p.LeftBack
	default:
		return p.RightBack
	}
}

// Drivetrain is a four-motor mecanum base.
type Drivetrain struct {
	motors    [4]ports.Motor
	tolerance int
}

// NewDrivetrain creates a Drivetrain. toleranceTicks is the encoder band
// within which a wheel counts as arrived at its target.
func NewDrivetrain(lf, rf, lb, rb ports.Motor, toleranceTicks int) *Drivetrain {
	return &Drivetrain{
		motors:    [4]ports.Motor{lf, rf, lb, rb},
		tolerance: toleranceTicks,
	}
}

// Tolerance returns the arrival band in ticks.
func (d *Drivetrain) Tolerance() int { return d.tolerance }

func (d *Drivetrain) each(wheels []Wheel, fn func(Wheel, ports.Motor) error) error {
	var errs []error
	for _, w := range wheels {
		if err := fn(w, d.motors[w]); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", w, err))
		}
	}
	return errors.Join(errs...)
}

// SetPowers applies one power per wheel.
func (d *Drivetrain) SetPowers(p motion.WheelPowers) error {
	return d.each(AllWheels, func(w Wheel, m ports.Motor) error {
		return m.SetPower(powerFor(p, w))
	})
}

// SetSidePowers applies left to both left wheels and right to both right
// wheels.
func (d *Drivetrain) SetSidePowers(left, right float64) error {
	return d.SetPowers(motion.WheelPowers{LeftFront: left, RightFront: right, LeftBack: left, RightBack: right})
}

// DriveToTicks sets each wheel's target to its current position plus the
// given offset and runs every wheel towards it at speed.
func (d *Drivetrain) DriveToTicks(offsets WheelTicks, speed float64) error {
	return d.each(AllWheels, func(w Wheel, m ports.Motor) error {
		current, err := m.CurrentPosition()
		if err != nil {
			return err
		}
		if err := m.SetTargetPosition(current + offsets.get(w)); err != nil {
			return err
		}
		return m.SetPower(math.Abs(speed))
	})
}

// StrafeTicks runs a sideways move of ticks per wheel; positive is left.
func (d *Drivetrain) StrafeTicks(ticks int, speed float64) error {
	return d.DriveToTicks(StrafeOffsets(ticks), speed)
}

// WithinTolerance reports whether every listed wheel is within the
// tolerance band of its target.
func (d *Drivetrain) WithinTolerance(wheels ...Wheel) (bool, error) {
	within := true
	err := d.each(wheels, func(_ Wheel, m ports.Motor) error {
		ok, err := withinTolerance(m, d.tolerance)
		if err != nil {
			return err
		}
		within = within && ok
		return nil
	})
	if err != nil {
		return false, err
	}
	return within, nil
}

// Positions reads every wheel encoder.
func (d *Drivetrain) Positions() (WheelTicks, error) {
	var ticks WheelTicks
	err := d.each(AllWheels, func(w Wheel, m ports.Motor) error {
		pos, err := m.CurrentPosition()
		if err != nil {
			return err
		}
		ticks.set(w, pos)
		return nil
	})
	return ticks, err
}

// Stop removes power from every wheel and leaves run-to-position mode.
func (d *Drivetrain) Stop() error {
	return d.each(AllWheels, func(_ Wheel, m ports.Motor) error {
		return m.Stop()
	})
}

func withinTolerance(m ports.Motor, tolerance int) (bool, error) {
	target, err := m.TargetPosition()
	if err != nil {
		return false, err
	}
	current, err := m.CurrentPosition()
	if err != nil {
		return false, err
	}
	diff := target - current
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance, nil
}
