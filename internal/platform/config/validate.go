package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Control.validate(),
		c.Drive.validate(),
		c.Arm.validate(),
		c.Intake.validate(),
		c.Vision.validate(),
		c.Device.validate(),
		c.Sim.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (c *ControlConfig) validate() error {
	var errs []error

	switch c.Mode {
	case ModeAutonomous:
		if c.Routine == "" {
			errs = append(errs, errors.New("control.routine must not be empty in autonomous mode"))
		}
	case ModeTeleop:
	default:
		errs = append(errs, fmt.Errorf("control.mode must be one of: %s, %s; got %q", ModeAutonomous, ModeTeleop, c.Mode))
	}
	if c.Interval <= 0 {
		errs = append(errs, errors.New("control.interval must be positive"))
	}
	if c.LaneTimeout <= 0 {
		errs = append(errs, errors.New("control.lane_timeout must be positive"))
	}
	if c.StartDelay < 0 {
		errs = append(errs, errors.New("control.start_delay must not be negative"))
	}
	if c.InputTimeout < 0 {
		errs = append(errs, errors.New("control.input_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (d *DriveConfig) validate() error {
	var errs []error

	if d.WheelRadiusMM <= 0 {
		errs = append(errs, errors.New("drive.wheel_radius_mm must be positive"))
	}
	if d.GearRatio <= 0 {
		errs = append(errs, errors.New("drive.gear_ratio must be positive"))
	}
	if d.TicksPerRev <= 0 {
		errs = append(errs, errors.New("drive.ticks_per_rev must be positive"))
	}
	if d.ToleranceTicks < 0 {
		errs = append(errs, fmt.Errorf("drive.tolerance_ticks must be >= 0, got %d", d.ToleranceTicks))
	}
	errs = append(errs,
		unitInterval("drive.speed", d.Speed),
		unitInterval("drive.turn_speed", d.TurnSpeed),
	)
	if d.StrafeSlip < 1 {
		errs = append(errs, fmt.Errorf("drive.strafe_slip must be >= 1, got %g", d.StrafeSlip))
	}
	if d.TurnToleranceDeg <= 0 {
		errs = append(errs, errors.New("drive.turn_tolerance_deg must be positive"))
	}

	return errors.Join(errs...)
}

func (a *ArmConfig) validate() error {
	var errs []error

	if a.ShoulderTolerance < 0 || a.SlideTolerance < 0 {
		errs = append(errs, errors.New("arm tolerances must be >= 0"))
	}
	errs = append(errs,
		unitInterval("arm.shoulder_power", a.ShoulderPower),
		unitInterval("arm.slide_power", a.SlidePower),
		servoRange("arm.claw_closed", a.ClawClosed),
		servoRange("arm.claw_open", a.ClawOpen),
	)
	for name, p := range a.Presets {
		errs = append(errs, servoRange("arm.presets."+name+".claw", p.Claw))
	}

	return errors.Join(errs...)
}

func (i *IntakeConfig) validate() error {
	return unitInterval("intake.power", i.Power)
}

func (v *VisionConfig) validate() error {
	switch v.MissingLandmark {
	case "arrive", "hold", "fail":
		return nil
	default:
		return fmt.Errorf("vision.missing_landmark must be one of: arrive, hold, fail; got %q", v.MissingLandmark)
	}
}

func (d *DeviceConfig) validate() error {
	if d.CircuitBreaker.MaxFailures < 1 {
		return fmt.Errorf("device.circuit_breaker.max_failures must be >= 1, got %d",
			d.CircuitBreaker.MaxFailures)
	}
	return nil
}

func (s *SimConfig) validate() error {
	var errs []error

	if s.TicksPerStep <= 0 {
		errs = append(errs, errors.New("sim.ticks_per_step must be positive"))
	}
	if s.TrackWidthMM <= 0 || s.WheelBaseMM <= 0 {
		errs = append(errs, errors.New("sim.track_width_mm and sim.wheel_base_mm must be positive"))
	}

	return errors.Join(errs...)
}

func unitInterval(key string, v float64) error {
	if v <= 0 || v > 1 {
		return fmt.Errorf("%s must be in (0, 1], got %g", key, v)
	}
	return nil
}

func servoRange(key string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s must be in [0, 1], got %g", key, v)
	}
	return nil
}
