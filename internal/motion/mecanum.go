package motion

import "math"

// WheelPowers holds one power per mecanum wheel, each in [-1, 1] after mixing.
type WheelPowers struct {
	LeftFront  float64
	RightFront float64
	LeftBack   float64
	RightBack  float64
}

// Max returns the largest absolute wheel power.
func (w WheelPowers) Max() float64 {
	return math.Max(
		math.Max(math.Abs(w.LeftFront), math.Abs(w.RightFront)),
		math.Max(math.Abs(w.LeftBack), math.Abs(w.RightBack)),
	)
}

// normalize scales every power down by the largest magnitude when that
// magnitude exceeds 1, preserving the ratios between wheels.
func (w WheelPowers) normalize() WheelPowers {
	scale := math.Max(1, w.Max())
	return WheelPowers{
		LeftFront:  w.LeftFront / scale,
		RightFront: w.RightFront / scale,
		LeftBack:   w.LeftBack / scale,
		RightBack:  w.RightBack / scale,
	}
}

// Mix converts robot-relative forward, strafe (left positive) and rotate
// (counter-clockwise positive) demands into normalized wheel powers.
func Mix(forward, strafe, rotate float64) WheelPowers {
	return WheelPowers{
		LeftFront:  forward - strafe - rotate,
		RightFront: forward + strafe + rotate,
		LeftBack:   forward + strafe - rotate,
		RightBack:  forward - strafe + rotate,
	}.normalize()
}

// MixPolar is the joystick form of Mix. direction is in radians measured
// clockwise from straight ahead, speed is the translation magnitude and
// rotation is counter-clockwise positive.
func MixPolar(direction, speed, rotation float64) WheelPowers {
	sin := math.Sin(direction + math.Pi/4)
	cos := math.Cos(direction + math.Pi/4)
	peak := math.Max(math.Abs(sin), math.Abs(cos))
	if peak > 0 {
		sin /= peak
		cos /= peak
	}

	return WheelPowers{
		LeftFront:  speed*sin - rotation,
		RightFront: speed*cos + rotation,
		LeftBack:   speed*cos - rotation,
		RightBack:  speed*sin + rotation,
	}.normalize()
}
