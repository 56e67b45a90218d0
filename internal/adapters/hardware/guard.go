// Package hardware wraps physical devices with circuit breakers so a failing
// motor or servo degrades into a reported device fault instead of stalling
// every control tick.
package hardware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/go-autonomy/internal/domain"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/config"
)

// guard is the breaker shared by GuardedMotor and GuardedServo.
type guard struct {
	name    string
	breaker *gobreaker.CircuitBreaker[struct{}]
}

func newGuard(name string, cfg *config.CircuitBreakerConfig, logger *slog.Logger) guard {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("device breaker state change",
				slog.String("device", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return guard{name: name, breaker: cb}
}

// do runs fn through the breaker. Every failure, whether from the device or
// from a tripped breaker, is reported as domain.ErrDeviceFault.
func (g guard) do(op string, fn func() error) error {
	_, err := g.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrDeviceFault) {
		return fmt.Errorf("%s %s: %w", g.name, op, err)
	}
	return fmt.Errorf("%s %s: %w: %w", g.name, op, domain.ErrDeviceFault, err)
}

// direct runs fn without consulting the breaker. Stop requests take this
// path so an open breaker can never leave a device powered. Failures are
// still reported as domain.ErrDeviceFault but do not count against the
// breaker.
func (g guard) direct(op string, fn func() error) error {
	if err := fn(); err != nil {
		return fmt.Errorf("%s %s: %w: %w", g.name, op, domain.ErrDeviceFault, err)
	}
	return nil
}

// Name returns the device name.
func (g guard) Name() string { return g.name }

// HealthCheck reports the device state from its breaker.
func (g guard) HealthCheck(_ context.Context) error {
	state := g.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", g.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", g.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", g.name, state)
	}
}

func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
