package command

import (
	"github.com/jsamuelsen11/go-autonomy/internal/ports"
)

// HeadingMode selects how a drive command steers.
type HeadingMode int

const (
	// HeadingFree applies no steering correction.
	HeadingFree HeadingMode = iota
	// HeadingFixed holds an absolute field heading.
	HeadingFixed
	// HeadingAtStart holds whatever heading the robot has when the command
	// starts.
	HeadingAtStart
)

// Heading is a heading-hold request. Degrees is only read in HeadingFixed
// mode.
type Heading struct {
	Mode    HeadingMode
	Degrees float64
}

// HoldHeading holds an absolute heading in degrees.
func HoldHeading(deg float64) Heading {
	return Heading{Mode: HeadingFixed, Degrees: deg}
}

// HoldStartHeading holds the heading captured at start.
func HoldStartHeading() Heading {
	return Heading{Mode: HeadingAtStart}
}

func (h Heading) resolve(pose ports.PoseSource) float64 {
	if h.Mode == HeadingAtStart && pose != nil {
		return pose.CurrentPose().HeadingDegrees()
	}
	return h.Degrees
}
