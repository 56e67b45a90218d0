// Package lane implements the per-actuator worker that runs commands one at
// a time in FIFO order.
//
// A lane is ticked once per control cycle, either by its own Run loop or by
// a caller invoking Tick directly. Enqueue and Abort may be called from any
// goroutine; they serialize with Tick, which never blocks on hardware.
package lane

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-autonomy/internal/app/command"
	"github.com/jsamuelsen11/go-autonomy/internal/domain"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/clock"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/logging"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/pacer"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-autonomy/internal/ports"
)

const tracerName = "github.com/jsamuelsen11/go-autonomy/internal/app/lane"

// errPanic marks a command that panicked inside Start, Poll or Abort.
var errPanic = errors.New("command panicked")

// Failure describes a command that left the lane because of an error or a
// timeout. Discarded counts the queued commands dropped with it.
type Failure struct {
	Lane      string
	Command   string
	Outcome   Outcome
	Err       error
	Discarded int
}

// FailureFunc receives every failure a lane observes. It is called after the
// lane has released its lock, so it may call back into the lane.
type FailureFunc func(ctx context.Context, f Failure)

// Option configures a Lane.
type Option func(*Lane)

// WithClock sets the time source for start times and timeouts.
func WithClock(c ports.Clock) Option {
	return func(l *Lane) { l.clock = c }
}

// WithDefaultTimeout sets the timeout for commands that do not carry one.
func WithDefaultTimeout(d time.Duration) Option {
	return func(l *Lane) { l.defaultTimeout = d }
}

// WithLogger sets the lane's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lane) { l.logger = logger }
}

// WithMetrics enables metric recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(l *Lane) { l.metrics = m }
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(l *Lane) { l.tracer = t }
}

// OnFailure registers the failure reporter.
func OnFailure(fn FailureFunc) Option {
	return func(l *Lane) { l.onFailure = fn }
}

type entry struct {
	cmd     command.Command
	ticket  *Ticket
	started time.Time
	span    trace.Span
}

// Lane runs commands for one actuator group.
type Lane struct {
	name           string
	clock          ports.Clock
	defaultTimeout time.Duration
	logger         *slog.Logger
	metrics        *telemetry.Metrics
	tracer         trace.Tracer
	onFailure      FailureFunc

	mu       sync.Mutex
	queue    []*entry
	current  *entry
	outcomes map[Outcome]int
	lastErr  error
}

// New creates an idle lane.
func New(name string, opts ...Option) *Lane {
	l := &Lane{
		name:     name,
		clock:    clock.Real(),
		outcomes: make(map[Outcome]int),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.tracer == nil {
		l.tracer = otel.GetTracerProvider().Tracer(tracerName)
	}
	l.logger = logging.Component(l.logger, "lane."+name)
	return l
}

// Name returns the lane name.
func (l *Lane) Name() string { return l.name }

// Enqueue appends cmd to the queue and returns its ticket.
func (l *Lane) Enqueue(cmd command.Command) *Ticket {
	e := &entry{cmd: cmd, ticket: newTicket(cmd.Title())}

	l.mu.Lock()
	l.queue = append(l.queue, e)
	depth := len(l.queue)
	l.mu.Unlock()

	l.logger.Debug("command queued",
		slog.String("command", cmd.Title()),
		slog.Int("queue_depth", depth),
	)
	return e.ticket
}

// HasPending reports whether a command is running or queued.
func (l *Lane) HasPending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current != nil || len(l.queue) > 0
}

// Tick advances the lane by one control cycle: start the next command if
// idle, enforce the timeout, then poll the current command once.
func (l *Lane) Tick(ctx context.Context) {
	began := time.Now()

	failure := l.tick(ctx)

	l.metrics.LaneTicked(ctx, l.name, time.Since(began))
	if failure != nil && l.onFailure != nil {
		l.onFailure(ctx, *failure)
	}
}

func (l *Lane) tick(ctx context.Context) *Failure {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		if len(l.queue) == 0 {
			return nil
		}
		e := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.current = e

		if err := l.start(ctx, e); err != nil {
			return l.fail(ctx, e, OutcomeFailed, fmt.Errorf("start %s: %w", e.cmd.Title(), err))
		}
	}

	e := l.current
	if timeout := l.timeoutFor(e.cmd); timeout > 0 {
		if elapsed := l.clock.Now().Sub(e.started); elapsed > timeout {
			return l.fail(ctx, e, OutcomeTimedOut,
				fmt.Errorf("%s ran %s, limit %s: %w", e.cmd.Title(), elapsed, timeout, domain.ErrCommandTimeout))
		}
	}

	done, err := l.poll(ctx, e)
	switch {
	case err != nil:
		return l.fail(ctx, e, OutcomeFailed, err)
	case done:
		l.finish(ctx, e, OutcomeComplete, nil)
	}
	return nil
}

func (l *Lane) timeoutFor(cmd command.Command) time.Duration {
	if d := cmd.Timeout(); d > 0 {
		return d
	}
	return l.defaultTimeout
}

func (l *Lane) start(ctx context.Context, e *entry) error {
	title := e.cmd.Title()
	e.started = l.clock.Now()
	_, e.span = l.tracer.Start(ctx, "command "+title, trace.WithAttributes(
		telemetry.AttrLane.String(l.name),
		telemetry.AttrCommand.String(title),
	))
	e.ticket.running()

	l.logger.InfoContext(ctx, "command started", slog.String("command", title))
	return guard(func() error {
		return e.cmd.Start(trace.ContextWithSpan(ctx, e.span))
	})
}

func (l *Lane) poll(ctx context.Context, e *entry) (bool, error) {
	var done bool
	err := guard(func() error {
		var err error
		done, err = e.cmd.Poll(trace.ContextWithSpan(ctx, e.span))
		return err
	})
	return done, err
}

// abortCurrent calls Abort on the running command. Callers resolve the
// ticket afterwards.
func (l *Lane) abortCurrent(ctx context.Context, e *entry) {
	err := guard(func() error {
		return e.cmd.Abort(trace.ContextWithSpan(ctx, e.span))
	})
	if err != nil {
		l.logger.WarnContext(ctx, "abort reported an error",
			slog.String("command", e.cmd.Title()),
			slog.Any("error", err),
		)
	}
}

// fail aborts and resolves the current command. A device fault also drops
// everything queued behind it: the hardware the lane owns is no longer
// trusted.
func (l *Lane) fail(ctx context.Context, e *entry, outcome Outcome, err error) *Failure {
	l.abortCurrent(ctx, e)
	l.lastErr = err
	l.finish(ctx, e, outcome, err)

	f := &Failure{Lane: l.name, Command: e.cmd.Title(), Outcome: outcome, Err: err}
	if errors.Is(err, domain.ErrDeviceFault) {
		f.Discarded = l.discardQueue(ctx, fmt.Errorf("%s failed: %w", e.cmd.Title(), err))
	}
	return f
}

// discardQueue resolves every queued ticket as discarded and empties the
// queue. The caller holds l.mu.
func (l *Lane) discardQueue(ctx context.Context, reason error) int {
	n := len(l.queue)
	for _, e := range l.queue {
		e.ticket.resolve(OutcomeDiscarded, reason)
		l.outcomes[OutcomeDiscarded]++
	}
	if n > 0 {
		l.logger.WarnContext(ctx, "queued commands discarded",
			slog.Int("count", n),
			slog.Any("reason", reason),
		)
	}
	l.queue = nil
	return n
}

func (l *Lane) finish(ctx context.Context, e *entry, outcome Outcome, err error) {
	elapsed := l.clock.Now().Sub(e.started)
	title := e.cmd.Title()

	e.ticket.resolve(outcome, err)
	l.outcomes[outcome]++
	l.current = nil
	if outcome == OutcomeComplete {
		l.lastErr = nil
	}

	e.span.SetAttributes(telemetry.AttrOutcome.String(string(outcome)))
	if err != nil {
		e.span.RecordError(err)
		e.span.SetStatus(codes.Error, err.Error())
	}
	e.span.End()
	l.metrics.CommandFinished(ctx, l.name, string(outcome), elapsed)

	attrs := []any{
		slog.String("command", title),
		slog.String("outcome", string(outcome)),
		slog.Duration("elapsed", elapsed),
	}
	switch outcome {
	case OutcomeComplete:
		l.logger.InfoContext(ctx, "command finished", attrs...)
	case OutcomeAborted:
		l.logger.WarnContext(ctx, "command aborted", attrs...)
	default:
		l.logger.ErrorContext(ctx, "command failed", append(attrs, slog.Any("error", err))...)
	}
}

// Abort stops the running command, discards everything queued and leaves
// the lane idle.
func (l *Lane) Abort(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e := l.current; e != nil {
		l.abortCurrent(ctx, e)
		l.finish(ctx, e, OutcomeAborted, domain.ErrAborted)
	}

	l.discardQueue(ctx, domain.ErrAborted)
}

// Run ticks the lane every interval until ctx is done, then aborts whatever
// is still running.
func (l *Lane) Run(ctx context.Context, interval time.Duration) error {
	l.logger.InfoContext(ctx, "lane running", slog.Duration("interval", interval))
	err := pacer.Loop(ctx, interval, func(ctx context.Context) bool {
		l.Tick(ctx)
		return true
	})
	l.Abort(context.WithoutCancel(ctx))
	l.logger.InfoContext(ctx, "lane stopped")
	return err
}

// Status returns a snapshot for the control API.
func (l *Lane) Status() domain.LaneStatus {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := domain.LaneStatus{
		Name:     l.name,
		Queued:   len(l.queue),
		Outcomes: make(map[string]int, len(l.outcomes)),
	}
	if l.current != nil {
		s.Current = l.current.cmd.Title()
	}
	for o, n := range l.outcomes {
		s.Outcomes[string(o)] = n
	}
	return s
}

// HealthCheck reports a lane whose last command failed on a device fault as
// unhealthy until a later command completes.
func (l *Lane) HealthCheck(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lastErr != nil && errors.Is(l.lastErr, domain.ErrDeviceFault) {
		return fmt.Errorf("lane %s: %w", l.name, l.lastErr)
	}
	return nil
}

// guard runs fn and converts a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v\n%s", errPanic, r, debug.Stack())
		}
	}()
	return fn()
}
