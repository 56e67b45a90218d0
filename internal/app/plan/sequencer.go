package plan

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-autonomy/internal/domain"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/logging"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/pacer"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/telemetry"
)

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithLogger sets the sequencer's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sequencer) { s.logger = logger }
}

// WithMetrics enables the stage-reached counter.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Sequencer) { s.metrics = m }
}

// Sequencer walks an ordered list of stages, dispatching the first stage
// that has not been reached and never looking past it. Its methods are safe
// for concurrent use.
type Sequencer struct {
	primary   Dispatcher
	secondary Dispatcher
	aux       Dispatcher
	logger    *slog.Logger
	metrics   *telemetry.Metrics

	mu      sync.Mutex
	stages  []*Stage
	reached []bool
	halted  bool
}

// NewSequencer returns a sequencer over stages. Each stage list goes to the
// dispatcher of the same name.
func NewSequencer(primary, secondary, aux Dispatcher, stages []*Stage, opts ...Option) *Sequencer {
	s := &Sequencer{
		primary:   primary,
		secondary: secondary,
		aux:       aux,
		stages:    stages,
		reached:   make([]bool, len(stages)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.Component(s.logger, "sequencer")
	return s
}

// Tick advances the plan by at most one stage dispatch. A halted plan
// dispatches nothing.
func (s *Sequencer) Tick(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.halted {
		return
	}
	for i, st := range s.stages {
		if st.IsReached() {
			s.markReached(ctx, i)
			continue
		}
		if !st.Queued() {
			st.Queue(s.primary, s.secondary, s.aux)
			s.logger.InfoContext(ctx, "stage dispatched",
				slog.String("stage", st.Title()),
				slog.Int("index", i),
				slog.Int("primary", len(st.Primary())),
				slog.Int("secondary", len(st.Secondary())),
				slog.Int("aux", len(st.Aux())),
			)
		}
		return
	}
}

// Halt stops the plan for good. Once Halt returns no further stage is
// dispatched, so a caller that aborts the lanes afterwards leaves them idle.
func (s *Sequencer) Halt(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.halted {
		return
	}
	s.halted = true
	active := ""
	for _, st := range s.stages {
		if !st.IsReached() {
			active = st.Title()
			break
		}
	}
	s.logger.WarnContext(ctx, "plan halted", slog.String("active", active))
}

// Halted reports whether Halt has been called.
func (s *Sequencer) Halted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.halted
}

func (s *Sequencer) markReached(ctx context.Context, i int) {
	if s.reached[i] {
		return
	}
	s.reached[i] = true
	title := s.stages[i].Title()
	s.metrics.StageWasReached(ctx, title)
	s.logger.InfoContext(ctx, "stage reached", slog.String("stage", title), slog.Int("index", i))
}

// AllStagesReached reports whether the plan is complete.
func (s *Sequencer) AllStagesReached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allReached()
}

func (s *Sequencer) allReached() bool {
	for _, st := range s.stages {
		if !st.IsReached() {
			return false
		}
	}
	return true
}

// Active returns the title of the stage currently gating the plan, or "" when
// the plan is complete.
func (s *Sequencer) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.stages {
		if !st.IsReached() {
			return st.Title()
		}
	}
	return ""
}

// Status returns a snapshot of every stage.
func (s *Sequencer) Status() domain.PlanStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := domain.PlanStatus{
		Halted:   s.halted,
		Complete: s.allReached(),
		Stages:   make([]domain.StageStatus, 0, len(s.stages)),
	}
	for _, st := range s.stages {
		ss := st.Status()
		if out.Active == "" && !ss.Reached {
			out.Active = ss.Title
		}
		out.Stages = append(out.Stages, ss)
	}
	return out
}

// Run ticks the plan every interval until every stage is reached, the plan
// is halted or ctx is done.
func (s *Sequencer) Run(ctx context.Context, interval time.Duration) error {
	began := time.Now()
	s.logger.InfoContext(ctx, "plan started", slog.Int("stages", len(s.stages)))

	err := pacer.Loop(ctx, interval, func(ctx context.Context) bool {
		s.Tick(ctx)
		return !s.AllStagesReached() && !s.Halted()
	})

	switch {
	case s.Halted():
		s.logger.WarnContext(ctx, "plan stopped after halt", slog.Duration("elapsed", time.Since(began)))
	case s.AllStagesReached():
		s.logger.InfoContext(ctx, "plan complete", slog.Duration("elapsed", time.Since(began)))
	default:
		s.logger.WarnContext(ctx, "plan interrupted", slog.String("active", s.Active()))
	}
	return err
}
