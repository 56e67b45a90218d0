// Package config provides configuration loading and validation for the
// autonomy runtime. Configuration is layered: defaults -> base.yaml ->
// {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the runtime.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Operator  OperatorConfig  `koanf:"operator"`
	Control   ControlConfig   `koanf:"control"`
	Drive     DriveConfig     `koanf:"drive"`
	Arm       ArmConfig       `koanf:"arm"`
	Intake    IntakeConfig    `koanf:"intake"`
	Vision    VisionConfig    `koanf:"vision"`
	Device    DeviceConfig    `koanf:"device"`
	Sim       SimConfig       `koanf:"sim"`
}

// ServerConfig holds operator HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// OperatorConfig guards the mutating control endpoints.
type OperatorConfig struct {
	Token string `koanf:"token"`
}

// ControlConfig holds the runtime loop settings. InputTimeout is how long a
// submitted gamepad snapshot stays live in teleop mode; zero keeps the last
// snapshot forever.
type ControlConfig struct {
	Mode         string        `koanf:"mode"`
	Interval     time.Duration `koanf:"interval"`
	LaneTimeout  time.Duration `koanf:"lane_timeout"`
	StartDelay   time.Duration `koanf:"start_delay"`
	Routine      string        `koanf:"routine"`
	InputTimeout time.Duration `koanf:"input_timeout"`
}

// Control modes.
const (
	ModeAutonomous = "autonomous"
	ModeTeleop     = "teleop"
)

// DriveConfig holds drivetrain geometry and motion tuning.
type DriveConfig struct {
	WheelRadiusMM    float64       `koanf:"wheel_radius_mm"`
	GearRatio        float64       `koanf:"gear_ratio"`
	TicksPerRev      float64       `koanf:"ticks_per_rev"`
	ToleranceTicks   int           `koanf:"tolerance_ticks"`
	Speed            float64       `koanf:"speed"`
	TurnSpeed        float64       `koanf:"turn_speed"`
	SteerGain        float64       `koanf:"steer_gain"`
	StrafeSlip       float64       `koanf:"strafe_slip"`
	RampDuration     time.Duration `koanf:"ramp_duration"`
	RampSpeed        float64       `koanf:"ramp_speed"`
	TurnGain         float64       `koanf:"turn_gain"`
	TurnMinSpeed     float64       `koanf:"turn_min_speed"`
	TurnToleranceDeg float64       `koanf:"turn_tolerance_deg"`
}

// ArmConfig holds arm tuning and named presets.
type ArmConfig struct {
	ShoulderTolerance int                     `koanf:"shoulder_tolerance"`
	SlideTolerance    int                     `koanf:"slide_tolerance"`
	ShoulderPower     float64                 `koanf:"shoulder_power"`
	SlidePower        float64                 `koanf:"slide_power"`
	ServoSettle       time.Duration           `koanf:"servo_settle"`
	MoveTimeout       time.Duration           `koanf:"move_timeout"`
	ClawClosed        float64                 `koanf:"claw_closed"`
	ClawOpen          float64                 `koanf:"claw_open"`
	Presets           map[string]PresetConfig `koanf:"presets"`
}

// PresetConfig is one named arm position.
type PresetConfig struct {
	Slide    int     `koanf:"slide"`
	Shoulder int     `koanf:"shoulder"`
	Claw     float64 `koanf:"claw"`
}

// IntakeConfig holds roller settings.
type IntakeConfig struct {
	Power          float64 `koanf:"power"`
	ToleranceTicks int     `koanf:"tolerance_ticks"`
}

// VisionConfig holds landmark alignment tuning.
type VisionConfig struct {
	SpeedGain        float64 `koanf:"speed_gain"`
	StrafeGain       float64 `koanf:"strafe_gain"`
	TurnGain         float64 `koanf:"turn_gain"`
	MaxSpeed         float64 `koanf:"max_speed"`
	MaxStrafe        float64 `koanf:"max_strafe"`
	MaxTurn          float64 `koanf:"max_turn"`
	RangeTolerance   float64 `koanf:"range_tolerance_mm"`
	BearingTolerance float64 `koanf:"bearing_tolerance_deg"`
	YawTolerance     float64 `koanf:"yaw_tolerance_deg"`
	MissingLandmark  string  `koanf:"missing_landmark"`
}

// DeviceConfig holds settings for guarded hardware devices.
type DeviceConfig struct {
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// SimConfig describes the simulated robot and field.
type SimConfig struct {
	TicksPerStep  float64          `koanf:"ticks_per_step"`
	TrackWidthMM  float64          `koanf:"track_width_mm"`
	WheelBaseMM   float64          `koanf:"wheel_base_mm"`
	StartXMM      float64          `koanf:"start_x_mm"`
	StartYMM      float64          `koanf:"start_y_mm"`
	StartHeading  float64          `koanf:"start_heading_deg"`
	CameraFOVDeg  float64          `koanf:"camera_fov_deg"`
	CameraRangeMM float64          `koanf:"camera_range_mm"`
	Landmarks     []LandmarkConfig `koanf:"landmarks"`
}

// LandmarkConfig places one fiducial on the simulated field.
type LandmarkConfig struct {
	ID        int     `koanf:"id"`
	XMM       float64 `koanf:"x_mm"`
	YMM       float64 `koanf:"y_mm"`
	FacingDeg float64 `koanf:"facing_deg"`
}
