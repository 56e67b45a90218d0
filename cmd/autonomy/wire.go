package main

import (
	"fmt"
	"log/slog"
	"math"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-autonomy/internal/adapters/http"
	"github.com/jsamuelsen11/go-autonomy/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-autonomy/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-autonomy/internal/adapters/hardware"
	"github.com/jsamuelsen11/go-autonomy/internal/adapters/sim"
	"github.com/jsamuelsen11/go-autonomy/internal/app"
	"github.com/jsamuelsen11/go-autonomy/internal/app/command"
	"github.com/jsamuelsen11/go-autonomy/internal/app/lane"
	"github.com/jsamuelsen11/go-autonomy/internal/app/plan"
	"github.com/jsamuelsen11/go-autonomy/internal/app/robot"
	"github.com/jsamuelsen11/go-autonomy/internal/app/routine"
	"github.com/jsamuelsen11/go-autonomy/internal/domain"
	"github.com/jsamuelsen11/go-autonomy/internal/motion"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/clock"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/config"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/health"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-autonomy/internal/ports"
	"github.com/jsamuelsen11/go-autonomy/internal/subsystem"
)

// devices are the guarded actuators the subsystems are built on.
type devices struct {
	leftFront, rightFront, leftBack, rightBack *hardware.GuardedMotor
	shoulder, slide, intake                    *hardware.GuardedMotor
	claw                                       *hardware.GuardedServo
}

func (d *devices) checkers() []ports.HealthChecker {
	return []ports.HealthChecker{
		d.leftFront, d.rightFront, d.leftBack, d.rightBack,
		d.shoulder, d.slide, d.intake, d.claw,
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*sim.World, error) {
		return sim.NewWorld(simConfig(cfg)), nil
	})

	do.Provide(injector, func(i do.Injector) (*devices, error) {
		w := do.MustInvoke[*sim.World](i)
		cb := &cfg.Device.CircuitBreaker
		return &devices{
			leftFront:  hardware.NewMotor("motor.left_front", w.LeftFront, cb, logger),
			rightFront: hardware.NewMotor("motor.right_front", w.RightFront, cb, logger),
			leftBack:   hardware.NewMotor("motor.left_back", w.LeftBack, cb, logger),
			rightBack:  hardware.NewMotor("motor.right_back", w.RightBack, cb, logger),
			shoulder:   hardware.NewMotor("motor.shoulder", w.Shoulder, cb, logger),
			slide:      hardware.NewMotor("motor.slide", w.Slide, cb, logger),
			intake:     hardware.NewMotor("motor.intake", w.Intake, cb, logger),
			claw:       hardware.NewServo("servo.claw", w.Claw, cb, logger),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (*robot.Robot, error) {
		w := do.MustInvoke[*sim.World](i)
		d := do.MustInvoke[*devices](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		deps := robot.Deps{
			Drivetrain: subsystem.NewDrivetrain(d.leftFront, d.rightFront, d.leftBack, d.rightBack, cfg.Drive.ToleranceTicks),
			Arm: subsystem.NewArm(d.shoulder, d.slide, d.claw, subsystem.ArmConfig{
				ShoulderTolerance: cfg.Arm.ShoulderTolerance,
				SlideTolerance:    cfg.Arm.SlideTolerance,
				ShoulderPower:     cfg.Arm.ShoulderPower,
				SlidePower:        cfg.Arm.SlidePower,
			}),
			Intake:     subsystem.NewIntake(d.intake, cfg.Intake.Power, cfg.Intake.ToleranceTicks),
			Pose:       w,
			Detector:   w,
			Clock:      clock.Real(),
			Logger:     logger,
			Tuning:     tuning(cfg),
			Presets:    presets(cfg.Arm.Presets),
			ClawClosed: cfg.Arm.ClawClosed,
			ClawOpen:   cfg.Arm.ClawOpen,
			ArmTimeout: cfg.Arm.MoveTimeout,
			LaneOptions: []lane.Option{
				lane.WithDefaultTimeout(cfg.Control.LaneTimeout),
				lane.WithMetrics(metrics),
			},
		}
		if cfg.Control.Mode == config.ModeTeleop {
			deps.Input = do.MustInvoke[*sim.Gamepads](i)
		}
		return robot.New(deps)
	})

	do.Provide(injector, func(i do.Injector) (*sim.Gamepads, error) {
		return sim.NewGamepads(clock.Real(), cfg.Control.InputTimeout), nil
	})

	do.Provide(injector, func(i do.Injector) (*plan.Sequencer, error) {
		bot := do.MustInvoke[*robot.Robot](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		def, err := routine.Load(cfg.Control.Routine)
		if err != nil {
			return nil, fmt.Errorf("loading routine: %w", err)
		}
		rt, err := routine.Build(def, bot, routine.Defaults{
			DriveSpeed: cfg.Drive.Speed,
			TurnSpeed:  cfg.Drive.TurnSpeed,
			StartDelay: cfg.Control.StartDelay,
		})
		if err != nil {
			return nil, fmt.Errorf("building routine %q: %w", def.Name, err)
		}
		logger.Info("routine loaded",
			slog.String("routine", rt.Name),
			slog.Int("stages", len(rt.Stages)),
		)
		return bot.NewPlan(rt.Stages, plan.WithLogger(logger), plan.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		d := do.MustInvoke[*devices](i)
		bot := do.MustInvoke[*robot.Robot](i)

		registry := health.New(health.WithCheckTimeout(cfg.Server.ReadTimeout))
		for _, c := range d.checkers() {
			registry.Register(c)
		}
		for _, l := range bot.Lanes() {
			registry.Register(l)
		}
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ControlService, error) {
		bot := do.MustInvoke[*robot.Robot](i)

		lanes := make([]app.LaneReporter, 0, len(bot.Lanes()))
		for _, l := range bot.Lanes() {
			lanes = append(lanes, l)
		}
		var reporter app.PlanReporter
		var opts []app.ControlOption
		switch cfg.Control.Mode {
		case config.ModeAutonomous:
			reporter = do.MustInvoke[*plan.Sequencer](i)
		case config.ModeTeleop:
			opts = append(opts, app.WithInputSink(do.MustInvoke[*sim.Gamepads](i)))
		}
		return app.NewControlService(bot, lanes, reporter, logger, opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ControlHandler, error) {
		return handlers.NewControlHandler(do.MustInvoke[ports.ControlService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		controlH := do.MustInvoke[*handlers.ControlHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(controlH, healthH, cfg.Operator.Token,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

func encoder(cfg *config.Config) motion.Encoder {
	return motion.Encoder{
		WheelRadiusMM: cfg.Drive.WheelRadiusMM,
		GearRatio:     cfg.Drive.GearRatio,
		TicksPerRev:   cfg.Drive.TicksPerRev,
	}
}

func tuning(cfg *config.Config) command.Tuning {
	return command.Tuning{
		Encoder:          encoder(cfg),
		SteerGain:        cfg.Drive.SteerGain,
		StrafeSlip:       cfg.Drive.StrafeSlip,
		RampDuration:     cfg.Drive.RampDuration,
		RampSpeed:        cfg.Drive.RampSpeed,
		TurnGain:         cfg.Drive.TurnGain,
		TurnMinSpeed:     cfg.Drive.TurnMinSpeed,
		TurnToleranceDeg: cfg.Drive.TurnToleranceDeg,
		ServoSettle:      cfg.Arm.ServoSettle,
		AlignGains: motion.AlignGains{
			Speed:     cfg.Vision.SpeedGain,
			Strafe:    cfg.Vision.StrafeGain,
			Turn:      cfg.Vision.TurnGain,
			MaxSpeed:  cfg.Vision.MaxSpeed,
			MaxStrafe: cfg.Vision.MaxStrafe,
			MaxTurn:   cfg.Vision.MaxTurn,
		},
		AlignTolerance: motion.AlignTolerance{
			Range:   cfg.Vision.RangeTolerance,
			Bearing: cfg.Vision.BearingTolerance,
			Yaw:     cfg.Vision.YawTolerance,
		},
		MissingLandmark: command.MissingLandmarkPolicy(cfg.Vision.MissingLandmark),
	}
}

func presets(in map[string]config.PresetConfig) map[string]subsystem.ArmPosition {
	out := make(map[string]subsystem.ArmPosition, len(in))
	for name, p := range in {
		out[name] = subsystem.ArmPosition{Slide: p.Slide, Shoulder: p.Shoulder, Claw: p.Claw}
	}
	return out
}

func simConfig(cfg *config.Config) sim.Config {
	landmarks := make([]sim.Landmark, len(cfg.Sim.Landmarks))
	for i, lm := range cfg.Sim.Landmarks {
		landmarks[i] = sim.Landmark{ID: lm.ID, X: lm.XMM, Y: lm.YMM, Facing: radians(lm.FacingDeg)}
	}
	return sim.Config{
		Encoder:      encoder(cfg),
		TicksPerStep: cfg.Sim.TicksPerStep,
		TrackWidthMM: cfg.Sim.TrackWidthMM,
		WheelBaseMM:  cfg.Sim.WheelBaseMM,
		Start: domain.Pose{
			X:       cfg.Sim.StartXMM,
			Y:       cfg.Sim.StartYMM,
			Heading: radians(cfg.Sim.StartHeading),
		},
		Landmarks:     landmarks,
		CameraFOVDeg:  cfg.Sim.CameraFOVDeg,
		CameraRangeMM: cfg.Sim.CameraRangeMM,
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
