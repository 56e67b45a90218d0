package sim

import (
	"sync"
	"time"

	"github.com/jsamuelsen11/go-autonomy/internal/domain"
	"github.com/jsamuelsen11/go-autonomy/internal/ports"
)

// Detector is a landmark detector whose detections are set directly.
type Detector struct {
	mu         sync.RWMutex
	detections []domain.Detection
}

// Set replaces the visible detections. Call with no arguments to clear.
func (d *Detector) Set(detections ...domain.Detection) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.detections = append([]domain.Detection(nil), detections...)
}

// Detections implements ports.LandmarkDetector.
func (d *Detector) Detections() []domain.Detection {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]domain.Detection(nil), d.detections...)
}

// Gamepads holds a settable controller snapshot. When built with a max age,
// a snapshot that has not been refreshed in time reads as released
// controllers so a dropped driver station cannot leave a stick held.
type Gamepads struct {
	clock  ports.Clock
	maxAge time.Duration

	mu       sync.RWMutex
	snapshot domain.InputSnapshot
	setAt    time.Time
}

// NewGamepads creates Gamepads whose snapshot expires maxAge after the last
// Set. A zero maxAge never expires.
func NewGamepads(clock ports.Clock, maxAge time.Duration) *Gamepads {
	return &Gamepads{clock: clock, maxAge: maxAge}
}

// Set replaces the current snapshot.
func (g *Gamepads) Set(s domain.InputSnapshot) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.snapshot = s
	if g.clock != nil {
		g.setAt = g.clock.Now()
	}
}

// Snapshot implements ports.DriverInput.
func (g *Gamepads) Snapshot() domain.InputSnapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.maxAge > 0 && g.clock != nil && g.clock.Now().Sub(g.setAt) > g.maxAge {
		return domain.InputSnapshot{}
	}
	return g.snapshot
}
