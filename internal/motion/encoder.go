package motion

import (
	"errors"
	"math"
)

// Encoder describes a wheel's geometry for tick/distance conversion.
type Encoder struct {
	WheelRadiusMM float64
	GearRatio     float64
	TicksPerRev   float64
}

// MMPerTick returns the distance covered by one encoder tick.
func (e Encoder) MMPerTick() float64 {
	return 2 * math.Pi * e.WheelRadiusMM * e.GearRatio / e.TicksPerRev
}

// TicksForDistance converts millimetres to encoder ticks, rounded to the
// nearest tick. Negative distances give negative ticks.
func (e Encoder) TicksForDistance(mm float64) int {
	return int(math.Round(mm / e.MMPerTick()))
}

// DistanceForTicks converts encoder ticks to millimetres.
func (e Encoder) DistanceForTicks(ticks int) float64 {
	return float64(ticks) * e.MMPerTick()
}

// Validate rejects geometry that would make conversion meaningless.
func (e Encoder) Validate() error {
	var errs []error
	if e.WheelRadiusMM <= 0 {
		errs = append(errs, errors.New("wheel radius must be positive"))
	}
	if e.GearRatio <= 0 {
		errs = append(errs, errors.New("gear ratio must be positive"))
	}
	if e.TicksPerRev <= 0 {
		errs = append(errs, errors.New("ticks per revolution must be positive"))
	}
	return errors.Join(errs...)
}
