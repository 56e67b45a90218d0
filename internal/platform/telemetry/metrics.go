package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds pre-registered OpenTelemetry metric instruments. A nil
// *Metrics records nothing, so components can be built without telemetry.
type Metrics struct {
	CommandTotal          metric.Int64Counter
	CommandDuration       metric.Float64Histogram
	LaneTickDuration      metric.Float64Histogram
	StageReached          metric.Int64Counter
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
}

// NewMetrics creates and registers all metric instruments using the given
// MeterProvider. The meter is scoped to scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)

	commandTotal, err := meter.Int64Counter(
		"robot.command.total",
		metric.WithDescription("Commands that left a lane, by outcome"),
		metric.WithUnit("{command}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating robot.command.total: %w", err)
	}

	commandDuration, err := meter.Float64Histogram(
		"robot.command.duration",
		metric.WithDescription("Run time of commands from start to completion or abort"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating robot.command.duration: %w", err)
	}

	tickDuration, err := meter.Float64Histogram(
		"robot.lane.tick.duration",
		metric.WithDescription("Time spent in a single lane tick"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating robot.lane.tick.duration: %w", err)
	}

	stageReached, err := meter.Int64Counter(
		"robot.stage.reached",
		metric.WithDescription("Plan stages reached"),
		metric.WithUnit("{stage}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating robot.stage.reached: %w", err)
	}

	serverDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.server.request.duration: %w", err)
	}

	serverTotal, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of incoming HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.server.request.total: %w", err)
	}

	return &Metrics{
		CommandTotal:          commandTotal,
		CommandDuration:       commandDuration,
		LaneTickDuration:      tickDuration,
		StageReached:          stageReached,
		ServerRequestDuration: serverDuration,
		ServerRequestTotal:    serverTotal,
	}, nil
}

// CommandFinished records a command leaving lane with outcome.
func (m *Metrics) CommandFinished(ctx context.Context, lane, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(AttrLane.String(lane), AttrOutcome.String(outcome))
	m.CommandTotal.Add(ctx, 1, attrs)
	m.CommandDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// LaneTicked records the duration of one lane tick.
func (m *Metrics) LaneTicked(ctx context.Context, lane string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.LaneTickDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(AttrLane.String(lane)))
}

// StageWasReached records a stage gate opening.
func (m *Metrics) StageWasReached(ctx context.Context, stage string) {
	if m == nil {
		return
	}
	m.StageReached.Add(ctx, 1, metric.WithAttributes(AttrStage.String(stage)))
}

// RequestServed records one HTTP request.
func (m *Metrics) RequestServed(ctx context.Context, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(AttrHTTPMethod.String(method), AttrHTTPStatus.Int(status))
	m.ServerRequestTotal.Add(ctx, 1, attrs)
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
}
