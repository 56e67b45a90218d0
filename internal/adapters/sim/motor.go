package sim

import (
	"math"
	"sync"

	"github.com/jsamuelsen11/go-autonomy/internal/motion"
)

// Motor simulates an encoder motor. At full power it moves maxTicksPerStep
// encoder ticks per Step. In run-to-position mode the magnitude of the power
// sets the speed and the motor stops exactly on its target.
type Motor struct {
	name            string
	maxTicksPerStep float64

	mu       sync.Mutex
	power    float64
	target   int
	holding  bool
	position float64
	fault    error
}

// NewMotor creates a stopped motor at position zero.
func NewMotor(name string, maxTicksPerStep float64) *Motor {
	return &Motor{name: name, maxTicksPerStep: maxTicksPerStep}
}

// Name returns the motor's name.
func (m *Motor) Name() string { return m.name }

func (m *Motor) SetPower(power float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fault != nil {
		return m.fault
	}
	m.power = motion.Clip(power, -1, 1)
	return nil
}

func (m *Motor) SetTargetPosition(ticks int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fault != nil {
		return m.fault
	}
	m.target = ticks
	m.holding = true
	return nil
}

func (m *Motor) TargetPosition() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fault != nil {
		return 0, m.fault
	}
	return m.target, nil
}

func (m *Motor) CurrentPosition() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fault != nil {
		return 0, m.fault
	}
	return int(math.Round(m.position)), nil
}

func (m *Motor) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fault != nil {
		return m.fault
	}
	m.power = 0
	m.holding = false
	return nil
}

// Power returns the last commanded power.
func (m *Motor) Power() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.power
}

// Holding reports whether the motor is in run-to-position mode.
func (m *Motor) Holding() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.holding
}

// SetPosition places the encoder at ticks without moving anything else.
func (m *Motor) SetPosition(ticks int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = float64(ticks)
}

// InjectFault makes every subsequent call return err until cleared with nil.
func (m *Motor) InjectFault(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fault = err
}

// Step advances the motor by one physics step and returns the encoder
// delta.
func (m *Motor) Step() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	var delta float64
	if m.holding {
		remaining := float64(m.target) - m.position
		move := math.Abs(m.power) * m.maxTicksPerStep
		if math.Abs(remaining) <= move {
			delta = remaining
		} else {
			delta = math.Copysign(move, remaining)
		}
	} else {
		delta = m.power * m.maxTicksPerStep
	}
	m.position += delta
	return delta
}

// Servo simulates a positional servo that jumps straight to its setpoint.
type Servo struct {
	mu       sync.Mutex
	position float64
	fault    error
}

// NewServo creates a servo at position.
func NewServo(position float64) *Servo {
	return &Servo{position: position}
}

func (s *Servo) SetPosition(position float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fault != nil {
		return s.fault
	}
	s.position = motion.Clip(position, 0, 1)
	return nil
}

func (s *Servo) Position() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fault != nil {
		return 0, s.fault
	}
	return s.position, nil
}

// InjectFault makes every subsequent call return err until cleared with nil.
func (s *Servo) InjectFault(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fault = err
}
