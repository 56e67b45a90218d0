package domain

// Gamepad is a single controller's state at one instant. Stick axes are in
// [-1, 1] with Y positive pointing down, triggers in [0, 1].
type Gamepad struct {
	LeftStickX   float64
	LeftStickY   float64
	RightStickX  float64
	LeftTrigger  float64
	RightTrigger float64

	A, B, X, Y          bool
	DpadLeft, DpadRight bool
}

// InputSnapshot pairs the driver and operator controllers.
type InputSnapshot struct {
	Driver   Gamepad
	Operator Gamepad
}
