package config

const (
	defaultServerPort = 8080

	defaultCircuitBreakerMaxFailures = 3
	defaultCircuitBreakerHalfOpen    = 1

	defaultTicksPerRev    = 537.6
	defaultWheelRadiusMM  = 50.0
	defaultToleranceTicks = 30
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "go-autonomy",

		"operator.token": "",

		"control.mode":          ModeAutonomous,
		"control.interval":      "20ms",
		"control.lane_timeout":  "10s",
		"control.start_delay":   "0s",
		"control.routine":       "configs/routines/basket-left.yaml",
		"control.input_timeout": "500ms",

		"drive.wheel_radius_mm":    defaultWheelRadiusMM,
		"drive.gear_ratio":         1.0,
		"drive.ticks_per_rev":      defaultTicksPerRev,
		"drive.tolerance_ticks":    defaultToleranceTicks,
		"drive.speed":              0.6,
		"drive.turn_speed":         0.5,
		"drive.steer_gain":         0.04,
		"drive.strafe_slip":        1.05,
		"drive.ramp_duration":      "500ms",
		"drive.ramp_speed":         0.1,
		"drive.turn_gain":          0.02,
		"drive.turn_min_speed":     0.15,
		"drive.turn_tolerance_deg": 2.0,

		"arm.shoulder_tolerance": 10,
		"arm.slide_tolerance":    10,
		"arm.shoulder_power":     1.0,
		"arm.slide_power":        1.0,
		"arm.servo_settle":       "500ms",
		"arm.move_timeout":       "5s",
		"arm.claw_closed":        0.2,
		"arm.claw_open":          0.8,

		"intake.power":           1.0,
		"intake.tolerance_ticks": 5,

		"vision.speed_gain":            0.002,
		"vision.strafe_gain":           0.015,
		"vision.turn_gain":             0.01,
		"vision.max_speed":             0.5,
		"vision.max_strafe":            0.5,
		"vision.max_turn":              0.3,
		"vision.range_tolerance_mm":    25.0,
		"vision.bearing_tolerance_deg": 2.0,
		"vision.yaw_tolerance_deg":     4.0,
		"vision.missing_landmark":      "arrive",

		"device.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"device.circuit_breaker.timeout":         "2s",
		"device.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"sim.ticks_per_step":    40.0,
		"sim.track_width_mm":    380.0,
		"sim.wheel_base_mm":     340.0,
		"sim.camera_fov_deg":    70.0,
		"sim.camera_range_mm":   2000.0,
		"sim.start_heading_deg": 0.0,
	}
}
