package domain

import "math"

// Pose is the robot's field position. X and Y are in millimetres; Heading is
// in radians, counter-clockwise positive.
type Pose struct {
	X       float64 `json:"x_mm"`
	Y       float64 `json:"y_mm"`
	Heading float64 `json:"heading_rad"`
}

// HeadingDegrees returns the heading converted to degrees.
func (p Pose) HeadingDegrees() float64 {
	return p.Heading * 180 / math.Pi
}

// Valid reports whether every component is a finite number.
func (p Pose) Valid() bool {
	return finite(p.X) && finite(p.Y) && finite(p.Heading)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
