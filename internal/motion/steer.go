package motion

import "math"

// Clip limits v to [lo, hi].
func Clip(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// NormalizeDegrees wraps an angle into [-180, 180].
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	switch {
	case a > 180:
		a -= 360
	case a < -180:
		a += 360
	}
	return a
}

// HeadingError returns target minus current wrapped to [-180, 180], both in
// degrees.
func HeadingError(targetDeg, currentDeg float64) float64 {
	return NormalizeDegrees(targetDeg - currentDeg)
}

// Steer is the proportional steering correction for a heading error.
func Steer(errDeg, gain float64) float64 {
	return Clip(errDeg*gain, -1, 1)
}

// HeadingHold returns left and right side powers that keep the robot on
// targetDeg while driving at speed. When reverse is set the correction is
// mirrored because the robot is travelling backwards.
func HeadingHold(speed, targetDeg, currentDeg, gain float64, reverse bool) (left, right float64) {
	steer := Steer(HeadingError(targetDeg, currentDeg), gain)
	if reverse {
		steer = -steer
	}

	left = speed - steer
	right = speed + steer

	if peak := math.Max(math.Abs(left), math.Abs(right)); peak > 1 {
		left /= peak
		right /= peak
	}
	return left, right
}

// TurnSpeed is the in-place turning speed for a heading error: proportional
// to the error, capped at maxSpeed and never below minSpeed so the robot
// does not stall short of the target.
func TurnSpeed(errDeg, gain, maxSpeed, minSpeed float64) float64 {
	return math.Max(math.Min(math.Abs(errDeg)*gain, maxSpeed), minSpeed)
}
