package subsystem

import (
	"fmt"

	"github.com/jsamuelsen11/go-autonomy/internal/ports"
)

// Intake is the single-motor roller that pulls game pieces in.
type Intake struct {
	motor     ports.Motor
	power     float64
	tolerance int
}

// NewIntake creates an Intake that runs at power and holds position within
// toleranceTicks.
func NewIntake(motor ports.Motor, power float64, toleranceTicks int) *Intake {
	return &Intake{motor: motor, power: power, tolerance: toleranceTicks}
}

// Run spins the roller inwards.
func (i *Intake) Run() error {
	return i.spin(i.power)
}

// Reverse spins the roller outwards to release a piece.
func (i *Intake) Reverse() error {
	return i.spin(-i.power)
}

func (i *Intake) spin(power float64) error {
	if err := i.motor.Stop(); err != nil {
		return fmt.Errorf("intake: %w", err)
	}
	if err := i.motor.SetPower(power); err != nil {
		return fmt.Errorf("intake: %w", err)
	}
	return nil
}

// Hold locks the roller at its current position.
func (i *Intake) Hold() error {
	current, err := i.motor.CurrentPosition()
	if err != nil {
		return fmt.Errorf("intake: %w", err)
	}
	if err := runTo(i.motor, current, i.power); err != nil {
		return fmt.Errorf("intake: %w", err)
	}
	return nil
}

func (i *Intake) HoldWithinTolerance() (bool, error) {
	return withinTolerance(i.motor, i.tolerance)
}

// Stop removes power from the roller.
func (i *Intake) Stop() error {
	if err := i.motor.Stop(); err != nil {
		return fmt.Errorf("intake: %w", err)
	}
	return nil
}
