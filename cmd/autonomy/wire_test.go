package main

import (
	"log/slog"
	"math"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/go-autonomy/internal/adapters/http"
	"github.com/jsamuelsen11/go-autonomy/internal/adapters/sim"
	"github.com/jsamuelsen11/go-autonomy/internal/app/command"
	"github.com/jsamuelsen11/go-autonomy/internal/app/plan"
	"github.com/jsamuelsen11/go-autonomy/internal/app/robot"
	"github.com/jsamuelsen11/go-autonomy/internal/domain"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/config"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-autonomy/internal/ports"
)

func loadLocal(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("local", config.WithConfigDir("../../configs"))
	require.NoError(t, err)
	cfg.Control.Routine = "../../configs/routines/basket-left.yaml"
	return cfg
}

func newInjector(cfg *config.Config) *do.RootScope {
	logger := slog.New(slog.DiscardHandler)
	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, (*telemetry.Metrics)(nil))
	registerDependencies(injector, cfg, logger)
	return injector
}

func TestRegisterDependencies_Autonomous(t *testing.T) {
	cfg := loadLocal(t)
	injector := newInjector(cfg)

	_, err := do.Invoke[*adapthttp.Server](injector)
	require.NoError(t, err)

	seq, err := do.Invoke[*plan.Sequencer](injector)
	require.NoError(t, err)

	status := seq.Status()
	require.NotEmpty(t, status.Stages)
	assert.Equal(t, "Initial wait", status.Stages[0].Title)
	assert.False(t, status.Complete)

	// Eight guarded devices plus three lanes.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	results := registry.CheckAll(t.Context())
	assert.Len(t, results, 11)
	for name, err := range results {
		assert.NoError(t, err, name)
	}
}

func TestRegisterDependencies_TeleopHasNoPlan(t *testing.T) {
	cfg := loadLocal(t)
	cfg.Control.Mode = config.ModeTeleop
	cfg.Control.Routine = "does-not-exist.yaml"
	injector := newInjector(cfg)

	svc, err := do.Invoke[ports.ControlService](injector)
	require.NoError(t, err)

	status := svc.PlanStatus(t.Context())
	assert.True(t, status.Complete)
	assert.Empty(t, status.Stages)
	assert.Len(t, svc.LaneStatuses(t.Context()), 3)
}

func TestRegisterDependencies_TeleopInputReachesRobot(t *testing.T) {
	cfg := loadLocal(t)
	cfg.Control.Mode = config.ModeTeleop
	injector := newInjector(cfg)

	svc := do.MustInvoke[ports.ControlService](injector)
	pads := do.MustInvoke[*sim.Gamepads](injector)

	in := domain.InputSnapshot{Driver: domain.Gamepad{LeftStickY: -0.5}}
	require.NoError(t, svc.SubmitInput(t.Context(), in))
	assert.Equal(t, in, pads.Snapshot())
}

func TestRegisterDependencies_AutonomousRefusesInput(t *testing.T) {
	cfg := loadLocal(t)
	injector := newInjector(cfg)

	svc := do.MustInvoke[ports.ControlService](injector)
	err := svc.SubmitInput(t.Context(), domain.InputSnapshot{})
	require.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestRegisterDependencies_BadRoutine(t *testing.T) {
	cfg := loadLocal(t)
	cfg.Control.Routine = "does-not-exist.yaml"
	injector := newInjector(cfg)

	_, err := do.Invoke[*plan.Sequencer](injector)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading routine")
}

func TestTuning_FromConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Drive: config.DriveConfig{
			WheelRadiusMM: 50, GearRatio: 1, TicksPerRev: 537.6,
			SteerGain: 0.04, TurnToleranceDeg: 2,
		},
		Arm:    config.ArmConfig{ServoSettle: 300},
		Vision: config.VisionConfig{SpeedGain: 0.002, RangeTolerance: 25, MissingLandmark: "hold"},
	}

	got := tuning(cfg)
	assert.InDelta(t, 537.6, got.Encoder.TicksPerRev, 1e-9)
	assert.InDelta(t, 0.04, got.SteerGain, 1e-9)
	assert.InDelta(t, 0.002, got.AlignGains.Speed, 1e-9)
	assert.InDelta(t, 25, got.AlignTolerance.Range, 1e-9)
	assert.Equal(t, command.PolicyHold, got.MissingLandmark)
}

func TestSimConfig_ConvertsDegrees(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Sim: config.SimConfig{
		StartHeading: 90,
		Landmarks:    []config.LandmarkConfig{{ID: 13, XMM: 900, YMM: 300, FacingDeg: 180}},
	}}

	got := simConfig(cfg)
	assert.InDelta(t, math.Pi/2, got.Start.Heading, 1e-9)
	require.Len(t, got.Landmarks, 1)
	assert.Equal(t, 13, got.Landmarks[0].ID)
	assert.InDelta(t, math.Pi, got.Landmarks[0].Facing, 1e-9)
}

func TestPresets_FromConfig(t *testing.T) {
	t.Parallel()

	got := presets(map[string]config.PresetConfig{
		robot.PresetLowerBasket: {Slide: 1400, Shoulder: 780, Claw: 0.2},
	})
	p, ok := got[robot.PresetLowerBasket]
	require.True(t, ok)
	assert.Equal(t, 1400, p.Slide)
	assert.Equal(t, 780, p.Shoulder)
	assert.InDelta(t, 0.2, p.Claw, 1e-9)
}
