package hardware

import (
	"log/slog"

	"github.com/jsamuelsen11/go-autonomy/internal/platform/config"
	"github.com/jsamuelsen11/go-autonomy/internal/ports"
)

var (
	_ ports.Motor         = (*GuardedMotor)(nil)
	_ ports.HealthChecker = (*GuardedMotor)(nil)
	_ ports.Servo         = (*GuardedServo)(nil)
	_ ports.HealthChecker = (*GuardedServo)(nil)
)

// GuardedMotor is a ports.Motor behind a circuit breaker.
type GuardedMotor struct {
	guard
	motor ports.Motor
}

// NewMotor wraps motor.
func NewMotor(name string, motor ports.Motor, cfg *config.CircuitBreakerConfig, logger *slog.Logger) *GuardedMotor {
	return &GuardedMotor{guard: newGuard(name, cfg, logger), motor: motor}
}

// SetPower applies power. Zero power is a stop and bypasses the breaker.
func (m *GuardedMotor) SetPower(power float64) error {
	if power == 0 {
		return m.direct("set power", func() error { return m.motor.SetPower(0) })
	}
	return m.do("set power", func() error { return m.motor.SetPower(power) })
}

func (m *GuardedMotor) SetTargetPosition(ticks int) error {
	return m.do("set target", func() error { return m.motor.SetTargetPosition(ticks) })
}

func (m *GuardedMotor) TargetPosition() (int, error) {
	var ticks int
	err := m.do("read target", func() error {
		var err error
		ticks, err = m.motor.TargetPosition()
		return err
	})
	return ticks, err
}

func (m *GuardedMotor) CurrentPosition() (int, error) {
	var ticks int
	err := m.do("read position", func() error {
		var err error
		ticks, err = m.motor.CurrentPosition()
		return err
	})
	return ticks, err
}

// Stop always reaches the device, whatever the breaker state.
func (m *GuardedMotor) Stop() error {
	return m.direct("stop", m.motor.Stop)
}

// GuardedServo is a ports.Servo behind a circuit breaker.
type GuardedServo struct {
	guard
	servo ports.Servo
}

// NewServo wraps servo.
func NewServo(name string, servo ports.Servo, cfg *config.CircuitBreakerConfig, logger *slog.Logger) *GuardedServo {
	return &GuardedServo{guard: newGuard(name, cfg, logger), servo: servo}
}

func (s *GuardedServo) SetPosition(position float64) error {
	return s.do("set position", func() error { return s.servo.SetPosition(position) })
}

func (s *GuardedServo) Position() (float64, error) {
	var pos float64
	err := s.do("read position", func() error {
		var err error
		pos, err = s.servo.Position()
		return err
	})
	return pos, err
}
