// Package command defines the unit of work lanes execute and the concrete
// maneuvers the robot knows how to perform.
//
// A Command is started exactly once, immediately before its first Poll, and
// polled once per control tick until it reports completion. Abort is called at
// most once and only while the command is running. The lane that owns a
// command enforces these rules; commands only implement the behaviour.
package command

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/go-autonomy/internal/motion"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/clock"
	"github.com/jsamuelsen11/go-autonomy/internal/ports"
)

// Command is one unit of robot work.
type Command interface {
	// Title names the command in logs, traces and status views.
	Title() string

	// Start issues the initial actuator commands.
	Start(ctx context.Context) error

	// Poll evaluates the completion condition and applies any per-tick
	// correction. It must not block.
	Poll(ctx context.Context) (bool, error)

	// Abort stops whatever the command set in motion.
	Abort(ctx context.Context) error

	// Timeout is the longest the command may run. Zero defers to the lane's
	// default.
	Timeout() time.Duration
}

// Tuning carries the control-law constants commands read at run time.
type Tuning struct {
	Encoder motion.Encoder

	SteerGain    float64
	StrafeSlip   float64
	RampDuration time.Duration
	RampSpeed    float64

	TurnGain         float64
	TurnMinSpeed     float64
	TurnToleranceDeg float64

	ServoSettle time.Duration

	AlignGains      motion.AlignGains
	AlignTolerance  motion.AlignTolerance
	MissingLandmark MissingLandmarkPolicy
}

// Env holds the read-only handles commands share. Actuator subsystems are
// passed to each constructor separately so a command only reaches the
// hardware its lane owns.
type Env struct {
	Clock    ports.Clock
	Pose     ports.PoseSource
	Detector ports.LandmarkDetector
	Logger   *slog.Logger
	Tuning   Tuning
}

func (e Env) clock() ports.Clock {
	if e.Clock == nil {
		return clock.Real()
	}
	return e.Clock
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// Base implements the bookkeeping shared by every command. Concrete commands
// embed it and call begin from Start.
type Base struct {
	title   string
	timeout time.Duration
	clock   ports.Clock
	logger  *slog.Logger
	started time.Time
}

func newBase(env Env, title string, timeout time.Duration) Base {
	return Base{
		title:   title,
		timeout: timeout,
		clock:   env.clock(),
		logger:  env.logger().With(slog.String("command", title)),
	}
}

func (b *Base) Title() string { return b.title }

func (b *Base) Timeout() time.Duration { return b.timeout }

// StartedAt returns when the command started, or the zero time.
func (b *Base) StartedAt() time.Time { return b.started }

// Elapsed returns the time since Start, or zero before it.
func (b *Base) Elapsed() time.Duration {
	if b.started.IsZero() {
		return 0
	}
	return b.clock.Now().Sub(b.started)
}

func (b *Base) begin() {
	if b.started.IsZero() {
		b.started = b.clock.Now()
	}
}

func (b *Base) String() string { return b.title }
