package motion

import "math"

// AlignGains are the proportional gains and output limits of the landmark
// alignment law. Range errors are in millimetres, angles in degrees.
type AlignGains struct {
	Speed     float64
	Strafe    float64
	Turn      float64
	MaxSpeed  float64
	MaxStrafe float64
	MaxTurn   float64
}

// AlignTolerance sets the arrival band per axis. A zero or negative value
// leaves that axis untracked.
type AlignTolerance struct {
	Range   float64
	Bearing float64
	Yaw     float64
}

// AlignError is the current deviation from the desired standoff pose.
type AlignError struct {
	Range   float64
	Bearing float64
	Yaw     float64
}

// AlignOutput is one control sample: robot-relative demands ready for Mix.
type AlignOutput struct {
	Drive   float64
	Strafe  float64
	Turn    float64
	Arrived bool
}

// Align runs one sample of the alignment law. Range drives forward, bearing
// turns and yaw strafes (against the yaw); each output is clipped to its own
// limit. There is no integral or rate term.
func Align(e AlignError, g AlignGains, tol AlignTolerance) AlignOutput {
	return AlignOutput{
		Drive:   Clip(e.Range*g.Speed, -g.MaxSpeed, g.MaxSpeed),
		Turn:    Clip(e.Bearing*g.Turn, -g.MaxTurn, g.MaxTurn),
		Strafe:  Clip(-e.Yaw*g.Strafe, -g.MaxStrafe, g.MaxStrafe),
		Arrived: within(e.Range, tol.Range) && within(e.Bearing, tol.Bearing) && within(e.Yaw, tol.Yaw),
	}
}

func within(err, tol float64) bool {
	if tol <= 0 {
		return true
	}
	return math.Abs(err) <= tol
}
