package ports

// Motor is a single encoder-equipped drive or arm motor.
//
// SetTargetPosition switches the motor into run-to-position mode: subsequent
// SetPower calls set the speed at which it seeks the target. Stop leaves
// run-to-position mode and removes power.
type Motor interface {
	SetPower(power float64) error
	SetTargetPosition(ticks int) error
	TargetPosition() (int, error)
	CurrentPosition() (int, error)
	Stop() error
}

// Servo is a positional servo with positions in [0, 1].
type Servo interface {
	SetPosition(position float64) error
	Position() (float64, error)
}
